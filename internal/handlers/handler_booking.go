package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/Sachin796/Worktopia/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
	posthog        *utils.PosthogClientWrapper
}

func newBookingHandler(bs portssvc.BookingSvcFacade, ph *utils.PosthogClientWrapper) *bookingHandler {
	return &bookingHandler{bookingService: bs, posthog: ph}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, bookingService portssvc.BookingSvcFacade, ph *utils.PosthogClientWrapper) {
	h := newBookingHandler(bookingService, ph)

	bookings := rg.Group("/booking")
	{
		bookings.GET("", h.listBookings)
		bookings.POST("", auth, h.createBooking)
		bookings.GET("/user/:id", h.listUserBookings)
		bookings.GET("/owner/:id", h.listOwnerBookings)
		bookings.GET("/owner/:id/export", auth, h.exportOwnerBookings)
		bookings.GET("/workspace/:id", h.listWorkspaceBookings)
		bookings.GET("/workspace/:id/blocked", h.getBlockedDays)
	}
}

// listFailed keeps the booking list contract: store failures surface as 422 with the error text.
func listFailed(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list bookings", slog.String("error", err.Error()))
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
}

// listBookings godoc
// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 422 {object} ErrorResponse "Store failure"
// @Router /booking [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListAllBookings(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// listUserBookings godoc
// @Summary List a renter's bookings
// @Description Each booking carries its workspace and pictures.
// @Tags bookings
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Store failure"
// @Router /booking/user/{id} [get]
func (h *bookingHandler) listUserBookings(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// listOwnerBookings godoc
// @Summary List bookings of an owner's workspaces
// @Description Bookings whose workspace sits at a location owned by the user. Each carries workspace, pictures and location.
// @Tags bookings
// @Produce json
// @Param id path int true "Owner user ID"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Store failure"
// @Router /booking/owner/{id} [get]
func (h *bookingHandler) listOwnerBookings(c *gin.Context) {
	ownerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	bookings, err := h.bookingService.ListOwnerBookings(c.Request.Context(), ownerID)
	if err != nil {
		listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// listWorkspaceBookings godoc
// @Summary List bookings of a workspace
// @Tags bookings
// @Produce json
// @Param id path int true "Workspace ID"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Store failure"
// @Router /booking/workspace/{id} [get]
func (h *bookingHandler) listWorkspaceBookings(c *gin.Context) {
	workspaceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	bookings, err := h.bookingService.ListWorkspaceBookings(c.Request.Context(), workspaceID)
	if err != nil {
		listFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// getBlockedDays godoc
// @Summary Booked days of a workspace
// @Description Every day covered by a booking, start and end inclusive, as MM/DD/YYYY.
// @Tags bookings
// @Produce json
// @Param id path int true "Workspace ID"
// @Success 200 {object} dto.BlockedDaysResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /booking/workspace/{id}/blocked [get]
func (h *bookingHandler) getBlockedDays(c *gin.Context) {
	workspaceID, ok := idParam(c, "id")
	if !ok {
		return
	}
	days, err := h.bookingService.GetBlockedDays(c.Request.Context(), workspaceID)
	if err != nil {
		respondError(c, err, "Failed to load blocked days")
		return
	}
	c.JSON(http.StatusOK, dto.BlockedDaysResponse{WorkspaceID: workspaceID, Days: days})
}

// createBooking godoc
// @Summary Book a workspace
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking dates"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 409 {object} ErrorResponse "Dates overlap an existing booking"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /booking [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	renterID, ok := requireUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), renterID, req)
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "booking_created", map[string]any{
		"booking_id":   booking.BookingID,
		"workspace_id": booking.WorkspaceID,
		"days":         booking.Days(),
	})
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// exportOwnerBookings godoc
// @Summary Export an owner's bookings
// @Description Spreadsheet of the caller's bookings. Owners may only export their own.
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Owner user ID"
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /booking/owner/{id}/export [get]
func (h *bookingHandler) exportOwnerBookings(c *gin.Context) {
	ownerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if userID != ownerID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Owners may only export their own bookings"})
		return
	}

	data, err := h.bookingService.ExportOwnerBookings(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Failed to export bookings")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="bookings-%d.xlsx"`, ownerID))
	c.Data(http.StatusOK, xlsxContentType, data)
}
