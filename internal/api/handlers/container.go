package handlers

import (
	"github.com/chenghui/supervision-go/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Report       *ReportHandler
	User         *UserHandler
	Project      *ProjectHandler
	Announcement *AnnouncementHandler
	Attendance   *AttendanceHandler
	Insight      *InsightHandler
	Router       *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Report:       NewReportHandler(svc.Report),
		User:         NewUserHandler(svc.User),
		Project:      NewProjectHandler(svc.Project),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Attendance:   NewAttendanceHandler(svc.Attendance),
		Insight:      NewInsightHandler(svc.Insight),
		Router:       router,
	}
}
