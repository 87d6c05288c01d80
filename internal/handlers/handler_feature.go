package handlers

import (
	"net/http"

	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/gin-gonic/gin"
)

func registerFeatureRoutes(rg *gin.RouterGroup, featureService portssvc.FeatureSvcFacade) {
	rg.GET("/feature", func(c *gin.Context) {
		listFeatures(c, featureService)
	})
}

// listFeatures godoc
// @Summary Feature catalog
// @Tags features
// @Produce json
// @Success 200 {array} dto.FeatureResponse
// @Failure 500 {object} ErrorResponse
// @Router /feature [get]
func listFeatures(c *gin.Context, featureService portssvc.FeatureSvcFacade) {
	features, err := featureService.ListFeatures(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list features")
		return
	}
	c.JSON(http.StatusOK, dto.ToFeatureResponses(features))
}
