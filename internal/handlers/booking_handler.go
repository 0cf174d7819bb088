package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kvartirnik/house-booking/internal/dto"
	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/httpresp"
	"github.com/kvartirnik/house-booking/internal/middleware"
	ucBooking "github.com/kvartirnik/house-booking/internal/usecase/booking"
	ucUser "github.com/kvartirnik/house-booking/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createBooking *ucBooking.CreateBooking
	updateComment *ucBooking.UpdateBookingComment
	listBookings  *ucBooking.ListUserBookings
	findUser      *ucUser.FindUserByPhone
}

func NewBookingHandler(
	createBooking *ucBooking.CreateBooking,
	updateComment *ucBooking.UpdateBookingComment,
	listBookings *ucBooking.ListUserBookings,
	findUser *ucUser.FindUserByPhone,
) *BookingHandler {
	return &BookingHandler{
		createBooking: createBooking,
		updateComment: updateComment,
		listBookings:  listBookings,
		findUser:      findUser,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Comment is a pointer so a present-but-blank comment reaches the
// workflow validation instead of failing the bind as missing.
type CreateBookingRequest struct {
	Phone   string  `json:"phone" binding:"required"`
	HouseID uint    `json:"house_id" binding:"required"`
	Comment *string `json:"comment" binding:"required"`
}

type UpdateBookingRequest struct {
	Comment *string `json:"comment" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing required fields: phone, house_id, comment")
		return
	}

	user, err := h.findUser.Execute(c.Request.Context(), req.Phone)
	if err != nil {
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}
	if user == nil {
		httperr.NotFound(c, "user_not_found", "User not found. Please create user first.")
		return
	}

	booking, err := h.createBooking.Execute(
		c.Request.Context(),
		user,
		req.HouseID,
		*req.Comment,
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"success": true,
		"booking": dto.NewBookingDTO(booking),
		"message": "Booking created successfully",
	})
}

// ======================================================
// UPDATE COMMENT
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_comment", "Comment field is required")
		return
	}

	ok, err := h.updateComment.Execute(c.Request.Context(), uint(id), *req.Comment)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	if !ok {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"message": "Booking comment updated successfully",
	})
}

// ======================================================
// LIST (CURRENT USER)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listBookings.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Internal server error")
		return
	}

	httpresp.OK(c, gin.H{
		"success":  true,
		"bookings": dto.NewBookingDTOs(bookings),
		"total":    len(bookings),
	})
}
