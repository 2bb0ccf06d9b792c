package report_test

import (
	"testing"

	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestTransitionApprove(t *testing.T) {
	r := report.Report{ID: "R1", Status: report.StatusPending}

	got, err := report.Transition(r, report.StatusApproved, "")
	assert.NoError(t, err)
	assert.Equal(t, report.StatusApproved, got.Status)
	assert.Empty(t, got.AuditComment)
}

func TestTransitionRejectKeepsComment(t *testing.T) {
	r := report.Report{ID: "R1", Status: report.StatusPending}

	got, err := report.Transition(r, report.StatusRejected, "混凝土强度报告缺失")
	assert.NoError(t, err)
	assert.Equal(t, report.StatusRejected, got.Status)
	assert.Equal(t, "混凝土强度报告缺失", got.AuditComment)
}

func TestTransitionRejectDefaultsComment(t *testing.T) {
	r := report.Report{ID: "R1", Status: report.StatusPending}

	for _, comment := range []string{"", "   ", "\n\t"} {
		got, err := report.Transition(r, report.StatusRejected, comment)
		assert.NoError(t, err)
		assert.Equal(t, report.StatusRejected, got.Status)
		assert.Equal(t, "需补充现场照片和具体防范方案", got.AuditComment)
	}
}

func TestTransitionTerminalStatesAreFrozen(t *testing.T) {
	for _, status := range []report.Status{report.StatusApproved, report.StatusRejected} {
		r := report.Report{ID: "R1", Status: status, AuditComment: "x"}
		for _, next := range []report.Status{report.StatusApproved, report.StatusRejected, report.StatusPending} {
			got, err := report.Transition(r, next, "comment")
			assert.ErrorIs(t, err, report.ErrNotPending)
			assert.Equal(t, r, got, "terminal report must stay unchanged")
		}
	}
}

func TestTransitionBackToPendingIsIllegal(t *testing.T) {
	r := report.Report{ID: "R1", Status: report.StatusPending}

	got, err := report.Transition(r, report.StatusPending, "")
	assert.ErrorIs(t, err, report.ErrInvalidTransition)
	assert.Equal(t, report.StatusPending, got.Status)
}
