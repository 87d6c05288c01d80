package handlers

import (
	"net/http"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/gin-gonic/gin"
)

type searchHandler struct {
	searchService portssvc.SearchSvcFacade
}

func registerSearchRoutes(rg *gin.RouterGroup, searchService portssvc.SearchSvcFacade) {
	h := &searchHandler{searchService: searchService}

	search := rg.Group("/search")
	{
		search.POST("", h.submitSearch)
		search.GET("/params", h.getParams)
		search.PUT("/params", h.updateParam)
	}
}

// getParams godoc
// @Summary Current search params
// @Description Stored values for the session, defaulting to today's date and zero rooms/people.
// @Tags search
// @Produce json
// @Param X-Session-ID header string false "Search session"
// @Success 200 {object} dto.SearchParamsResponse
// @Failure 500 {object} ErrorResponse
// @Router /search/params [get]
func (h *searchHandler) getParams(c *gin.Context) {
	values, err := h.searchService.GetParams(c.Request.Context(), middleware.GetSessionIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to read search params")
		return
	}
	c.JSON(http.StatusOK, dto.ToSearchParamsResponse(values))
}

// updateParam godoc
// @Summary Set one search param
// @Tags search
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Search session"
// @Param param body dto.UpdateSearchParamRequest true "Key and value"
// @Success 200 {object} dto.SearchParamsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search/params [put]
func (h *searchHandler) updateParam(c *gin.Context) {
	var req dto.UpdateSearchParamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	session := middleware.GetSessionIDFromContext(c)
	if err := h.searchService.UpdateParam(c.Request.Context(), session, req.Key, req.Value); err != nil {
		respondError(c, err, "Failed to store search param")
		return
	}
	h.getParams(c)
}

// submitSearch godoc
// @Summary Submit the search form
// @Description Stores every param, then validates. Valid searches redirect to the results page.
// @Tags search
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Search session"
// @Param search body dto.SubmitSearchRequest true "Search form"
// @Success 200 {object} dto.SubmitSearchResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [post]
func (h *searchHandler) submitSearch(c *gin.Context) {
	var req dto.SubmitSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	session := middleware.GetSessionIDFromContext(c)
	if _, err := h.searchService.SubmitSearch(c.Request.Context(), session, req.Values()); err != nil {
		respondError(c, err, "Failed to submit search")
		return
	}
	c.JSON(http.StatusOK, dto.SubmitSearchResponse{Redirect: domain.SearchResultsPath})
}
