package handlers

import (
	"net/http"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/gin-gonic/gin"
)

// locationHandler handles HTTP requests related to workspace locations.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

func registerLocationRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, locationService portssvc.LocationSvcFacade) {
	h := &locationHandler{locationService: locationService}
	ownerOnly := middleware.RequireRole(domain.RoleOwner)

	locations := rg.Group("/location")
	{
		locations.POST("", auth, ownerOnly, h.saveLocation)
		locations.GET("/:id", h.getLocation)
		locations.PUT("/:id", auth, ownerOnly, h.updateLocation)
		locations.GET("/owner/:id", h.listOwnerLocations)
	}
}

// getLocation godoc
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /location/{id} [get]
func (h *locationHandler) getLocation(c *gin.Context) {
	locationID, ok := idParam(c, "id")
	if !ok {
		return
	}
	loc, err := h.locationService.GetLocation(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, err, "Failed to retrieve location")
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationResponse(loc))
}

// listOwnerLocations godoc
// @Summary List an owner's locations
// @Description One entry per distinct full address.
// @Tags locations
// @Produce json
// @Param id path int true "Owner user ID"
// @Success 200 {object} dto.ListLocationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /location/owner/{id} [get]
func (h *locationHandler) listOwnerLocations(c *gin.Context) {
	ownerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	locs, err := h.locationService.ListOwnerLocations(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Failed to list locations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLocationsResponse(locs))
}

// saveLocation godoc
// @Summary Create or update a location
// @Description Without locationID a new location is created; with one, that row is updated in place.
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.SaveLocationRequest true "Address"
// @Success 200 {object} dto.LocationResponse "Updated"
// @Success 201 {object} dto.LocationResponse "Created"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /location [post]
func (h *locationHandler) saveLocation(c *gin.Context) {
	var req dto.SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	h.save(c, req)
}

// updateLocation godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param location body dto.SaveLocationRequest true "Address"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /location/{id} [put]
func (h *locationHandler) updateLocation(c *gin.Context) {
	locationID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.LocationID = &locationID
	h.save(c, req)
}

func (h *locationHandler) save(c *gin.Context, req dto.SaveLocationRequest) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	loc, created, err := h.locationService.SaveLocation(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to save location")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToLocationResponse(loc))
}
