package application_test

import (
	"testing"

	"github.com/chenghui/supervision-go/internal/application"
	"github.com/chenghui/supervision-go/internal/domain/announcement"
	"github.com/chenghui/supervision-go/internal/domain/attendance"
	"github.com/chenghui/supervision-go/internal/domain/project"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementPublish(t *testing.T) {
	repos := &repository.Repos{Announcement: &fakeAnnouncementRepo{}}
	svc := application.NewAnnouncementService(repos)

	t.Run("leadership publishes", func(t *testing.T) {
		ann, err := svc.Publish(leader, announcement.PublishAnnouncementDTO{
			Title:   "安全生产月",
			Content: "全员参加例会。",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, ann.ID)
		assert.Len(t, ann.PublishDate, 10)
	})

	t.Run("field roles cannot publish", func(t *testing.T) {
		_, err := svc.Publish(chief, announcement.PublishAnnouncementDTO{Title: "t", Content: "c"})
		assert.ErrorIs(t, err, application.ErrForbidden)
	})
}

func TestAttendanceClock(t *testing.T) {
	repos := &repository.Repos{
		Attendance: &fakeAttendanceRepo{},
		Project:    newFakeProjectRepo(project.Project{ID: "P1", Name: "滨河大道改造工程"}),
	}
	svc := application.NewAttendanceService(repos)

	rec, err := svc.Clock(assistant, attendance.ClockDTO{
		Type:     attendance.ClockIn,
		Location: "南门岗亭",
	})
	require.NoError(t, err)
	assert.Equal(t, "U-A", rec.UserID)
	assert.Equal(t, "P1", rec.ProjectID, "project defaults to the user's assignment")
	assert.Equal(t, "滨河大道改造工程", rec.ProjectName)
	assert.NotEmpty(t, rec.Time)

	records, err := svc.ListRecent()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
