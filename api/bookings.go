package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookRequest struct {
	FlightID     int64  `json:"flight_id"`
	UserID       int64  `json:"user_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Seats        int    `json:"seats"`
}

type cancelRequest struct {
	BookingID int64 `json:"booking_id"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/book", h.book)
	router.POST("/cancel", h.cancel)
	router.GET("/history/:userId", h.history)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ticket, err := h.service.Reserve(c.Request.Context(), booking.ReserveInput{
		FlightID:     req.FlightID,
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Seats:        req.Seats,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking successful!",
		"ticket":  ticket,
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), req.BookingID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Booking successfully cancelled.",
		"seats_returned": result.SeatsReturned,
		"flight_id":      result.FlightID,
	})
}

func (h *BookingHandler) history(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	entries, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	if len(entries) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No past bookings found.", "history": []domain.HistoryEntry{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
