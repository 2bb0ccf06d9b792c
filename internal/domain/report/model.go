package report

import (
	"time"

	"gorm.io/datatypes"
)

// Type discriminates the seven fixed document kinds. The value selects both the
// shape of the details payload and the print layout.
type Type string

const (
	TypeDailyLog    Type = "DAILY_LOG"     // 监理日志
	TypeSideStation Type = "SIDE_STATION"  // 旁站记录
	TypeWitness     Type = "WITNESS"       // 见证记录
	TypeNotice      Type = "NOTICE"        // 监理通知单
	TypeMinutes     Type = "MINUTES"       // 会议纪要
	TypeMonthly     Type = "MONTHLY"       // 监理月报
	TypeMajorEvent  Type = "MAJOR_EVENT"   // 重大事件直报
)

// AllTypes lists the variants in the order the authoring screen offers them.
func AllTypes() []Type {
	return []Type{
		TypeDailyLog,
		TypeSideStation,
		TypeWitness,
		TypeNotice,
		TypeMinutes,
		TypeMonthly,
		TypeMajorEvent,
	}
}

func (t Type) Valid() bool {
	switch t {
	case TypeDailyLog, TypeSideStation, TypeWitness, TypeNotice,
		TypeMinutes, TypeMonthly, TypeMajorEvent:
		return true
	}
	return false
}

// Label returns the document name as printed on the regulatory forms.
func (t Type) Label() string {
	switch t {
	case TypeDailyLog:
		return "监理日志"
	case TypeSideStation:
		return "旁站记录"
	case TypeWitness:
		return "见证记录"
	case TypeNotice:
		return "监理通知单"
	case TypeMinutes:
		return "会议纪要"
	case TypeMonthly:
		return "监理月报"
	case TypeMajorEvent:
		return "重大事件直报"
	}
	return string(t)
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "待审核"
	case StatusApproved:
		return "已审核"
	case StatusRejected:
		return "已驳回"
	}
	return string(s)
}

// Terminal reports cannot leave their state; no transition back to PENDING exists.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Report is a single inspection/administrative document. ID, ProjectID, AuthorID,
// AuthorName and Type are immutable after creation.
type Report struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Type         Type           `gorm:"size:20;not null;index" json:"type"`
	ProjectID    string         `gorm:"size:36;index" json:"projectId"`
	AuthorID     string         `gorm:"size:36;index" json:"authorId"`
	AuthorName   string         `gorm:"size:100" json:"authorName"`
	Content      string         `gorm:"type:text" json:"content"`
	Details      datatypes.JSON `json:"details"`
	Date         string         `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Status       Status         `gorm:"size:20;not null;index" json:"status"`
	IsImportant  bool           `json:"isImportant"`
	AuditComment string         `gorm:"type:text" json:"auditComment,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}
