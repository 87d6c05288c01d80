package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/gin-gonic/gin"
)

type uploadHandler struct {
	uploadService portssvc.UploadSvc
}

func registerUploadRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, uploadService portssvc.UploadSvc) {
	h := &uploadHandler{uploadService: uploadService}
	rg.POST("/upload", auth, h.upload)
}

// upload godoc
// @Summary Upload a workspace picture
// @Description Stores the image under a generated name and returns that name for imageFileName.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /upload [post]
func (h *uploadHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fh, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "multipart field 'file' is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err, "Failed to read upload")
		return
	}
	defer f.Close()

	name, err := h.uploadService.SaveUpload(c.Request.Context(), fh.Filename, fh.Size, f)
	if err != nil {
		respondError(c, err, "Failed to store upload")
		return
	}
	c.JSON(http.StatusCreated, dto.UploadResponse{SaveAs: name})
}
