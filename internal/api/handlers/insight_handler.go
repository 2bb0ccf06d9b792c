package handlers

import (
	"errors"
	"net/http"

	"github.com/chenghui/supervision-go/internal/api/middleware"
	"github.com/chenghui/supervision-go/internal/application"
	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	svc *application.InsightService
}

func NewInsightHandler(svc *application.InsightService) *InsightHandler {
	return &InsightHandler{svc: svc}
}

// Draft returns an AI-assisted body suggestion for a new report.
func (h *InsightHandler) Draft(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)

	var input report.DraftRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	text, err := h.svc.Draft(c.Request.Context(), usr, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, report.ErrUnknownType):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// RiskSummary returns the leadership analysis over major pending events.
func (h *InsightHandler) RiskSummary(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)

	text, err := h.svc.RiskSummary(c.Request.Context(), usr)
	if err != nil {
		if errors.Is(err, application.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
