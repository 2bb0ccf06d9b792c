package store_test

import (
	"testing"

	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStorePutAndGet(t *testing.T) {
	s := store.NewReportStore()
	s.Replace([]report.Report{
		{ID: "R2", Date: "2024-05-02"},
		{ID: "R1", Date: "2024-05-01"},
	})

	t.Run("new reports are prepended", func(t *testing.T) {
		s.Put(report.Report{ID: "R3", Date: "2024-05-03"})

		all := s.All()
		require.Len(t, all, 3)
		assert.Equal(t, "R3", all[0].ID)
		assert.Equal(t, "R2", all[1].ID)
	})

	t.Run("existing reports are replaced in place", func(t *testing.T) {
		s.Put(report.Report{ID: "R2", Date: "2024-05-02", Status: report.StatusApproved})

		all := s.All()
		require.Len(t, all, 3)
		assert.Equal(t, "R2", all[1].ID)
		assert.Equal(t, report.StatusApproved, all[1].Status)
	})

	t.Run("get", func(t *testing.T) {
		r, ok := s.Get("R1")
		require.True(t, ok)
		assert.Equal(t, "R1", r.ID)

		_, ok = s.Get("missing")
		assert.False(t, ok)
	})
}

func TestReportStoreReplaceDropsOldState(t *testing.T) {
	s := store.NewReportStore()
	s.Put(report.Report{ID: "old"})

	s.Replace([]report.Report{{ID: "new"}})

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("old")
	assert.False(t, ok)
}

func TestReportStoreAllReturnsCopy(t *testing.T) {
	s := store.NewReportStore()
	s.Replace([]report.Report{{ID: "R1", Status: report.StatusPending}})

	all := s.All()
	all[0].Status = report.StatusApproved

	stored, _ := s.Get("R1")
	assert.Equal(t, report.StatusPending, stored.Status)
}
