package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chenghui/supervision-go/internal/api/middleware"
	"github.com/chenghui/supervision-go/internal/application"
	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/chenghui/supervision-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// reportError maps domain and gateway sentinels onto HTTP statuses.
func reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrReportNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrMalformedDetails),
		errors.Is(err, report.ErrUnknownType),
		errors.Is(err, report.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, report.ErrNotPending),
		errors.Is(err, repository.ErrStatusConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func (h *ReportHandler) List(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, h.svc.ListVisible(usr))
}

func (h *ReportHandler) Get(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)
	rec, err := h.svc.GetVisible(c.Param("id"), usr)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ReportHandler) Create(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)

	var input report.CreateReportDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	rec, err := h.svc.Create(usr, input)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *ReportHandler) Approve(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)
	rec, err := h.svc.Approve(usr, c.Param("id"))
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ReportHandler) Reject(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)

	var input report.RejectReportDTO
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	rec, err := h.svc.Reject(usr, c.Param("id"), input.Comment)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ReportHandler) ImportantPending(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)
	reports, err := h.svc.ImportantPending(usr)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) Stats(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, h.svc.Stats(usr))
}

// Document returns the rendered print form as structured JSON.
func (h *ReportHandler) Document(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)
	doc, err := h.svc.Document(c.Param("id"), usr)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ExportLedger streams the caller's visible set, xlsx by default or csv via
// the format query.
func (h *ReportHandler) ExportLedger(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)

	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		c.Header("Content-Disposition", `attachment; filename="reports.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := h.svc.ExportLedgerExcel(c.Writer, usr); err != nil {
			reportError(c, err)
		}
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="reports.csv"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		if err := h.svc.ExportLedgerCSV(c.Writer, usr); err != nil {
			reportError(c, err)
		}
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "format must be xlsx or csv"})
	}
}

func (h *ReportHandler) ExportImage(c *gin.Context) {
	usr, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.png"`, id))
	c.Header("Content-Type", "image/png")
	if err := h.svc.ExportDocumentPNG(c.Writer, id, usr); err != nil {
		reportError(c, err)
	}
}
