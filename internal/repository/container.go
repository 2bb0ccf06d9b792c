package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Report       ReportRepo
	User         UserRepo
	Project      ProjectRepo
	Announcement AnnouncementRepo
	Attendance   AttendanceRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Report:       NewReportRepo(db),
		User:         NewUserRepo(db),
		Project:      NewProjectRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Attendance:   NewAttendanceRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Report:       r.Report.WithTx(tx),
		User:         r.User.WithTx(tx),
		Project:      r.Project.WithTx(tx),
		Announcement: r.Announcement.WithTx(tx),
		Attendance:   r.Attendance.WithTx(tx),
		db:           tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
