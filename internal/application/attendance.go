package application

import (
	"time"

	"github.com/chenghui/supervision-go/internal/config"
	"github.com/chenghui/supervision-go/internal/domain/attendance"
	"github.com/chenghui/supervision-go/internal/domain/user"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/google/uuid"
)

type AttendanceService struct {
	Repos *repository.Repos
}

func NewAttendanceService(repos *repository.Repos) *AttendanceService {
	return &AttendanceService{
		Repos: repos,
	}
}

// ListRecent returns the newest clock events, capped by the configured limit.
func (s *AttendanceService) ListRecent() ([]attendance.Record, error) {
	return s.Repos.Attendance.ListRecent(config.AttendanceLimit)
}

// Clock records a GPS clock-in/out for the calling user.
func (s *AttendanceService) Clock(u user.User, input attendance.ClockDTO) (attendance.Record, error) {
	projectID := input.ProjectID
	if projectID == "" {
		projectID = u.ProjectID
	}
	projectName := ""
	if projectID != "" {
		if p, err := s.Repos.Project.GetProjectByID(projectID); err == nil {
			projectName = p.Name
		}
	}

	rec := attendance.Record{
		ID:          uuid.NewString(),
		UserID:      u.ID,
		UserName:    u.Name,
		ProjectID:   projectID,
		ProjectName: projectName,
		Type:        input.Type,
		Time:        time.Now().Format(time.RFC3339),
		Location:    input.Location,
	}
	if err := s.Repos.Attendance.SaveRecord(&rec); err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}
