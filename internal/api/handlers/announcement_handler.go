package handlers

import (
	"errors"
	"net/http"

	"github.com/chenghui/supervision-go/internal/api/middleware"
	"github.com/chenghui/supervision-go/internal/application"
	"github.com/chenghui/supervision-go/internal/domain/announcement"
	"github.com/chenghui/supervision-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	svc *application.AnnouncementService
}

func NewAnnouncementHandler(svc *application.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	anns, err := h.svc.ListAnnouncements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, anns)
}

func (h *AnnouncementHandler) Publish(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)

	var input announcement.PublishAnnouncementDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	ann, err := h.svc.Publish(usr, input)
	if err != nil {
		if errors.Is(err, application.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, ann)
}
