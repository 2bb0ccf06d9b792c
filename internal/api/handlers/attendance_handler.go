package handlers

import (
	"net/http"

	"github.com/chenghui/supervision-go/internal/api/middleware"
	"github.com/chenghui/supervision-go/internal/application"
	"github.com/chenghui/supervision-go/internal/domain/attendance"
	"github.com/chenghui/supervision-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	svc *application.AttendanceService
}

func NewAttendanceHandler(svc *application.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.svc.ListRecent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) Clock(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)

	var input attendance.ClockDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	rec, err := h.svc.Clock(usr, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}
