package announcement

import "time"

type Announcement struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	PublishDate string    `gorm:"size:10;index" json:"publishDate"` // YYYY-MM-DD
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Announcement) TableName() string {
	return "announcements"
}

type PublishAnnouncementDTO struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
