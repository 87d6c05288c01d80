package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Sachin796/Worktopia/internal/adapters/geocoding"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/gin-gonic/gin"
)

type geocodeHandler struct {
	geocoder portssvc.Geocoder
}

func registerGeocodeRoutes(rg *gin.RouterGroup, geocoder portssvc.Geocoder) {
	h := &geocodeHandler{geocoder: geocoder}
	rg.GET("/geocode", h.geocode)
}

// geocode godoc
// @Summary Geocode an address
// @Tags geocoding
// @Produce json
// @Param address query string true "Free-form address"
// @Success 200 {object} dto.GeocodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No candidates"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Failure 503 {object} ErrorResponse "Geocoding not configured"
// @Router /geocode [get]
func (h *geocodeHandler) geocode(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "address is required"})
		return
	}
	if h.geocoder == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Geocoding is not configured"})
		return
	}

	point, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, geocoding.ErrNoCandidates) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Address not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Geocoding failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Geocoding failed"})
		return
	}
	c.JSON(http.StatusOK, dto.GeocodeResponse{Address: address, Lat: point.Lat, Lng: point.Lng})
}
