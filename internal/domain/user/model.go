package user

import "time"

// Role is the company position of an account. It decides report visibility,
// authoring rights and review rights.
type Role string

const (
	RoleAssistant Role = "ASSISTANT" // 监理员
	RoleEngineer  Role = "ENGINEER"  // 专业监理工程师
	RoleChief     Role = "CHIEF"     // 总监理工程师
	RoleLeader    Role = "LEADER"    // 公司领导
)

func (r Role) Valid() bool {
	switch r {
	case RoleAssistant, RoleEngineer, RoleChief, RoleLeader:
		return true
	}
	return false
}

// Label returns the display name used on printed forms and rosters.
func (r Role) Label() string {
	switch r {
	case RoleAssistant:
		return "监理员"
	case RoleEngineer:
		return "专业监理工程师"
	case RoleChief:
		return "总监理工程师"
	case RoleLeader:
		return "公司领导"
	}
	return string(r)
}

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      Role      `gorm:"size:20;not null" json:"role"`
	ProjectID string    `gorm:"size:36" json:"projectId,omitempty"` // empty when unassigned
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}
