package application

import (
	"time"

	"github.com/chenghui/supervision-go/internal/domain/announcement"
	"github.com/chenghui/supervision-go/internal/domain/user"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/google/uuid"
)

type AnnouncementService struct {
	Repos *repository.Repos
}

func NewAnnouncementService(repos *repository.Repos) *AnnouncementService {
	return &AnnouncementService{
		Repos: repos,
	}
}

func (s *AnnouncementService) ListAnnouncements() ([]announcement.Announcement, error) {
	return s.Repos.Announcement.ListAnnouncements()
}

// Publish posts a company notice. Only leadership publishes; everyone reads.
func (s *AnnouncementService) Publish(u user.User, input announcement.PublishAnnouncementDTO) (announcement.Announcement, error) {
	if u.Role != user.RoleLeader {
		return announcement.Announcement{}, ErrForbidden
	}

	ann := announcement.Announcement{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Content:     input.Content,
		PublishDate: time.Now().Format("2006-01-02"),
	}
	if err := s.Repos.Announcement.SaveAnnouncement(&ann); err != nil {
		return announcement.Announcement{}, err
	}
	return ann, nil
}
