package application

import (
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/chenghui/supervision-go/internal/store"
)

type Services struct {
	Report       *ReportService
	User         *UserService
	Project      *ProjectService
	Announcement *AnnouncementService
	Attendance   *AttendanceService
	Insight      *InsightService
}

func New(repos *repository.Repos, st *store.ReportStore, genai DraftGenerator) *Services {
	reports := NewReportService(repos, st)
	return &Services{
		Report:       reports,
		User:         NewUserService(repos),
		Project:      NewProjectService(repos),
		Announcement: NewAnnouncementService(repos),
		Attendance:   NewAttendanceService(repos),
		Insight:      NewInsightService(reports, genai),
	}
}
