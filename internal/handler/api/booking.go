package api

import (
	"net/http"

	"sportsbook/internal/domain/booking"
	reqdto "sportsbook/internal/handler/dto/request"
	resdto "sportsbook/internal/handler/dto/response"
	"sportsbook/internal/handler/httperr"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/input"
	"sportsbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	rules booking.Rules
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, rules booking.Rules) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, rules: rules}
}

func (h *BookingHandler) collector(form *input.FormPrompter) *input.BookingInputCollector {
	return input.NewBookingInputCollector(form, h.rules)
}

// @Summary Create booking
// @Description Book a room for a member at a future date and time within operating hours
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.OperationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	form := input.NewFormPrompter(req.ToForm())
	out := h.cmds.ExecuteBooking(c.Request.Context(), h.collector(form))
	if abortOnFailure(c, out, form, http.StatusConflict) {
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOutcome(out))
}

// @Summary List bookings
// @Description List all bookings, or only those of one member
// @Tags bookings
// @Produce json
// @Param member_id query string false "Member ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var (
		views []*queries.BookingView
		err   error
	)
	if memberID := c.Query("member_id"); memberID != "" {
		views, err = h.q.ListMemberBookings(c.Request.Context(), memberID)
	} else {
		views, err = h.q.ListBookings(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Description Cancel a booking on behalf of the member who owns it
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Owner of the booking"
// @Success 200 {object} resdto.OperationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	form := input.NewFormPrompter(req.ToForm(c.Param("id")))
	out := h.cmds.ExecuteCancellation(c.Request.Context(), h.collector(form))
	if abortOnFailure(c, out, form, http.StatusConflict) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(out))
}

// @Summary Search available rooms
// @Description Find rooms of a type that are free at a future date and time
// @Tags rooms
// @Produce json
// @Param room_type query string true "Room type name or menu number"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Success 200 {object} resdto.RoomSearchResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rooms/availability [get]
func (h *BookingHandler) SearchRooms(c *gin.Context) {
	var q reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	form := input.NewFormPrompter(q.ToForm())
	out := h.cmds.ExecuteSearch(c.Request.Context(), h.collector(form))
	if abortOnFailure(c, out, form, http.StatusNotFound) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(out.Rooms))
}
