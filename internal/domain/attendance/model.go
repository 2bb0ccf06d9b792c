package attendance

import "time"

type ClockType string

const (
	ClockIn  ClockType = "CLOCK_IN"
	ClockOut ClockType = "CLOCK_OUT"
)

// Record is one GPS clock event captured by the mobile client.
type Record struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index;not null" json:"userId"`
	UserName    string    `gorm:"size:100" json:"userName"`
	ProjectID   string    `gorm:"size:36;index" json:"projectId"`
	ProjectName string    `gorm:"size:200" json:"projectName"`
	Type        ClockType `gorm:"size:20;not null" json:"type"`
	Time        string    `gorm:"size:30;index" json:"time"`
	Location    string    `gorm:"size:200" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Record) TableName() string {
	return "attendance"
}

type ClockDTO struct {
	ProjectID string    `json:"project_id"`
	Type      ClockType `json:"type" binding:"required"`
	Location  string    `json:"location"`
}
