package api

import (
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type searchRequest struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Date      string `json:"date"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/search", h.search)
}

func (h *FlightHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	results, err := h.service.Search(c.Request.Context(), domain.SearchParams{
		Departure: req.Departure,
		Arrival:   req.Arrival,
		Date:      req.Date,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No flights found matching your criteria.", "flights": []domain.FlightSummary{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": results})
}
