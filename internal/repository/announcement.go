package repository

import (
	"github.com/chenghui/supervision-go/internal/domain/announcement"
	"gorm.io/gorm"
)

type AnnouncementRepo interface {
	ListAnnouncements() ([]announcement.Announcement, error)
	SaveAnnouncement(a *announcement.Announcement) error
	WithTx(tx *gorm.DB) AnnouncementRepo
}

type DBAnnouncementRepo struct {
	db *gorm.DB
}

func NewAnnouncementRepo(db *gorm.DB) *DBAnnouncementRepo {
	return &DBAnnouncementRepo{db: db}
}

func (r *DBAnnouncementRepo) ListAnnouncements() ([]announcement.Announcement, error) {
	var anns []announcement.Announcement
	err := r.db.Order("publish_date DESC, created_at DESC").Find(&anns).Error
	return anns, err
}

func (r *DBAnnouncementRepo) SaveAnnouncement(a *announcement.Announcement) error {
	return r.db.Save(a).Error
}

func (r *DBAnnouncementRepo) WithTx(tx *gorm.DB) AnnouncementRepo {
	return &DBAnnouncementRepo{db: tx}
}
