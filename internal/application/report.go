package application

import (
	"errors"
	"io"
	"time"

	"github.com/chenghui/supervision-go/internal/document"
	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/internal/domain/user"
	"github.com/chenghui/supervision-go/internal/export"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/chenghui/supervision-go/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrReportNotFound   = errors.New("report not found")
	ErrForbidden        = errors.New("operation not allowed for this role")
	ErrMalformedDetails = errors.New("report details do not match the document type")
)

// ReportService owns the report collection: the in-memory store mirrors the
// persistence gateway, so reads never touch the database and failed writes
// leave the visible collection on its last successfully persisted state.
type ReportService struct {
	Repos *repository.Repos
	Store *store.ReportStore
}

func NewReportService(repos *repository.Repos, st *store.ReportStore) *ReportService {
	return &ReportService{
		Repos: repos,
		Store: st,
	}
}

// Refresh reloads the full collection through the gateway. On failure the
// store keeps the previous snapshot.
func (s *ReportService) Refresh() error {
	reports, err := s.Repos.Report.ListReports()
	if err != nil {
		return err
	}
	s.Store.Replace(reports)
	return nil
}

// ListVisible projects the collection through the caller's visibility rules.
func (s *ReportService) ListVisible(u user.User) []report.Report {
	return report.VisibleTo(s.Store.All(), u)
}

func (s *ReportService) GetVisible(id string, u user.User) (report.Report, error) {
	rec, ok := s.Store.Get(id)
	if !ok {
		return report.Report{}, ErrReportNotFound
	}
	if !report.CanView(rec, u) {
		return report.Report{}, ErrForbidden
	}
	return rec, nil
}

// ImportantPending returns the company-wide risk-alert set. Only leadership
// consumes it; field roles never see reports outside their own scope.
func (s *ReportService) ImportantPending(u user.User) ([]report.Report, error) {
	if u.Role != user.RoleLeader {
		return nil, ErrForbidden
	}
	return report.ImportantPending(s.Store.All()), nil
}

// Stats summarises the caller's visible set for the dashboard cards. The
// important-pending count is company wide regardless of role.
func (s *ReportService) Stats(u user.User) report.Stats {
	visible := s.ListVisible(u)
	stats := report.Stats{Total: len(visible)}
	for _, r := range visible {
		if r.Status == report.StatusPending {
			stats.Pending++
		}
	}
	stats.ImportantPending = len(report.ImportantPending(s.Store.All()))
	return stats
}

// Create files a new report as PENDING. Major-event reports are flagged
// important on entry; the date defaults to today when the client omits it.
func (s *ReportService) Create(u user.User, input report.CreateReportDTO) (report.Report, error) {
	if !input.Type.Valid() {
		return report.Report{}, report.ErrUnknownType
	}
	if !report.CanAuthor(u.Role, input.Type) {
		return report.Report{}, ErrForbidden
	}
	if len(input.Details) > 0 {
		if _, err := report.DecodeDetails(input.Type, input.Details); err != nil {
			return report.Report{}, ErrMalformedDetails
		}
	}

	projectID := input.ProjectID
	if projectID == "" {
		projectID = u.ProjectID
	}
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	rec := report.Report{
		ID:          uuid.NewString(),
		Type:        input.Type,
		ProjectID:   projectID,
		AuthorID:    u.ID,
		AuthorName:  u.Name,
		Content:     input.Content,
		Details:     datatypes.JSON(input.Details),
		Date:        date,
		Status:      report.StatusPending,
		IsImportant: input.Type == report.TypeMajorEvent,
	}

	if err := s.Repos.Report.CreateReport(&rec); err != nil {
		return report.Report{}, err
	}
	s.Store.Put(rec)
	return rec, nil
}

func (s *ReportService) Approve(u user.User, id string) (report.Report, error) {
	return s.transition(u, id, report.StatusApproved, "")
}

func (s *ReportService) Reject(u user.User, id, comment string) (report.Report, error) {
	return s.transition(u, id, report.StatusRejected, comment)
}

// transition applies a review decision. The conditional update in the gateway
// decides races; a lost race surfaces as repository.ErrStatusConflict and the
// store stays on the persisted state.
func (s *ReportService) transition(u user.User, id string, next report.Status, comment string) (report.Report, error) {
	rec, ok := s.Store.Get(id)
	if !ok {
		return report.Report{}, ErrReportNotFound
	}
	if !report.CanReview(u, rec) {
		return report.Report{}, ErrForbidden
	}

	updated, err := report.Transition(rec, next, comment)
	if err != nil {
		return report.Report{}, err
	}
	if err := s.Repos.Report.TransitionStatus(&updated); err != nil {
		return report.Report{}, err
	}
	s.Store.Put(updated)
	return updated, nil
}

// Document renders the printable form for a report the caller may view.
func (s *ReportService) Document(id string, u user.User) (document.Document, error) {
	rec, err := s.GetVisible(id, u)
	if err != nil {
		return document.Document{}, err
	}
	return document.Render(rec, s.projectName(rec.ProjectID)), nil
}

// ExportLedgerExcel writes the caller's visible set as a tabular workbook.
func (s *ReportService) ExportLedgerExcel(w io.Writer, u user.User) error {
	return export.WriteExcel(w, export.LedgerRows(s.ListVisible(u)))
}

// ExportLedgerCSV writes the caller's visible set as plain comma-separated rows.
func (s *ReportService) ExportLedgerCSV(w io.Writer, u user.User) error {
	return export.WriteCSV(w, export.LedgerRows(s.ListVisible(u)))
}

// ExportDocumentPNG rasterises one rendered form as a single page image.
func (s *ReportService) ExportDocumentPNG(w io.Writer, id string, u user.User) error {
	doc, err := s.Document(id, u)
	if err != nil {
		return err
	}
	return export.WritePNG(w, doc)
}

// projectName resolves a project id for form headers, falling back to the raw
// id when the project row is gone.
func (s *ReportService) projectName(id string) string {
	if id == "" {
		return ""
	}
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return id
	}
	return p.Name
}
