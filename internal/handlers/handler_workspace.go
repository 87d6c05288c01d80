package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles HTTP requests related to workspaces, their editor and review views.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
	editorService    portssvc.WorkspaceEditorSvc
	searchService    portssvc.SearchSvcFacade
}

func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade, es portssvc.WorkspaceEditorSvc, ss portssvc.SearchSvcFacade) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
		editorService:    es,
		searchService:    ss,
	}
}

// registerWorkspaceRoutes registers routes related to workspaces.
func registerWorkspaceRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, services *portssvc.ServiceContainer) {
	h := newWorkspaceHandler(services.Workspace, services.WorkspaceEditor, services.Search)

	workspaces := rg.Group("/workspace")
	{
		workspaces.GET("", h.listWorkspaces)
		workspaces.POST("", auth, middleware.RequireRole(domain.RoleOwner), h.createWorkspace)
		workspaces.GET("/:id", h.getWorkspace)
		workspaces.PUT("/:id", auth, h.updateWorkspace)
		workspaces.GET("/:id/editor", h.getEditor)
		workspaces.POST("/:id/editor", auth, h.submitEditor)
		workspaces.GET("/:id/review", h.getReview)
	}
}

// listWorkspaces godoc
// @Summary List active workspaces
// @Tags workspaces
// @Produce json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 500 {object} ErrorResponse
// @Router /workspace [get]
func (h *workspaceHandler) listWorkspaces(c *gin.Context) {
	workspaces, err := h.workspaceService.ListActiveWorkspaces(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get a workspace
// @Description Workspace with its location, pictures and feature states.
// @Tags workspaces
// @Produce json
// @Param id path int true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /workspace/{id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	workspaceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	ws, err := h.workspaceService.GetWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		respondError(c, err, "Failed to retrieve workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

// createWorkspace godoc
// @Summary Create a workspace
// @Description Creates a workspace at one of the caller's locations.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspace [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}

	ws, err := h.workspaceService.CreateWorkspace(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to create workspace")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws))
}

// updateWorkspace godoc
// @Summary Update a workspace
// @Description Writes fields, feature states and the optional picture in one transaction. Owner only.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path int true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Flattened submission"
// @Success 200 {object} dto.AcknowledgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspace/{id} [put]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	workspaceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.workspaceService.UpdateWorkspace(c.Request.Context(), userID, req.ToSubmission(workspaceID)); err != nil {
		respondError(c, err, "Failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.AcknowledgeResponse{Acknowledged: true, Message: dto.WorkspaceUpdatedMessage})
}

// getEditor godoc
// @Summary Load the workspace editor
// @Description Workspace fields plus relocation options, feature toggles and booked days. Failed sections are listed in sectionErrors.
// @Tags workspaces
// @Produce json
// @Param id path int true "Workspace ID"
// @Success 200 {object} domain.WorkspaceEditorForm
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /workspace/{id}/editor [get]
func (h *workspaceHandler) getEditor(c *gin.Context) {
	workspaceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	form, err := h.editorService.LoadEditor(c.Request.Context(), workspaceID)
	if err != nil {
		respondError(c, err, "Failed to load workspace editor")
		return
	}
	if len(form.SectionErrors) > 0 {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Editor loaded with failed sections",
			slog.Int("failed_sections", len(form.SectionErrors)))
	}
	c.JSON(http.StatusOK, form)
}

// submitEditor godoc
// @Summary Submit the workspace editor
// @Description Accepts the full editor form; transient UI fields are discarded before the update.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path int true "Workspace ID"
// @Param form body domain.WorkspaceEditorForm true "Editor form"
// @Success 200 {object} dto.AcknowledgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspace/{id}/editor [post]
func (h *workspaceHandler) submitEditor(c *gin.Context) {
	workspaceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var form domain.WorkspaceEditorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	form.WorkspaceID = workspaceID

	if err := h.editorService.SubmitEditor(c.Request.Context(), userID, form); err != nil {
		respondError(c, err, "Failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.AcknowledgeResponse{Acknowledged: true, Message: dto.WorkspaceUpdatedMessage})
}

// getReview godoc
// @Summary Review a workspace for the current search
// @Description Prices the stay from the session's search params and pins the workspace on the map.
// @Tags workspaces
// @Produce json
// @Param id path int true "Workspace ID"
// @Param X-Session-ID header string false "Search session"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /workspace/{id}/review [get]
func (h *workspaceHandler) getReview(c *gin.Context) {
	workspaceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	review, err := h.searchService.Review(c.Request.Context(), middleware.GetSessionIDFromContext(c), workspaceID)
	if err != nil {
		respondError(c, err, "Failed to build review")
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}
