package application

import (
	"context"

	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/internal/domain/user"
)

// DraftGenerator is the AI collaborator surface. The concrete client never
// returns errors; failures arrive as fixed substitute strings.
type DraftGenerator interface {
	GenerateDraft(ctx context.Context, reportType, keywords string) string
	SummarizeRisks(ctx context.Context, events any) string
}

// InsightService backs the drafting assistant and the leadership risk board.
type InsightService struct {
	Reports *ReportService
	Genai   DraftGenerator
}

func NewInsightService(reports *ReportService, genai DraftGenerator) *InsightService {
	return &InsightService{
		Reports: reports,
		Genai:   genai,
	}
}

// Draft produces a report body suggestion for a type the caller may author.
func (s *InsightService) Draft(ctx context.Context, u user.User, input report.DraftRequestDTO) (string, error) {
	if !input.Type.Valid() {
		return "", report.ErrUnknownType
	}
	if !report.CanAuthor(u.Role, input.Type) {
		return "", ErrForbidden
	}
	return s.Genai.GenerateDraft(ctx, input.Type.Label(), input.Keywords), nil
}

type riskEvent struct {
	ProjectID string `json:"projectId"`
	Date      string `json:"date"`
	Content   string `json:"content"`
}

// RiskSummary analyses the company-wide important-pending set for leadership.
func (s *InsightService) RiskSummary(ctx context.Context, u user.User) (string, error) {
	pending, err := s.Reports.ImportantPending(u)
	if err != nil {
		return "", err
	}

	events := make([]riskEvent, 0, len(pending))
	for _, r := range pending {
		events = append(events, riskEvent{
			ProjectID: r.ProjectID,
			Date:      r.Date,
			Content:   r.Content,
		})
	}
	return s.Genai.SummarizeRisks(ctx, events), nil
}
