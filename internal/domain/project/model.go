package project

import "time"

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Project is a supervised construction site. Reports reference projects by id;
// project lifecycle itself is managed by the admin surface only.
type Project struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Location  string    `gorm:"size:200" json:"location"`
	Status    Status    `gorm:"size:20;default:'IN_PROGRESS'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}
