package repository

import (
	"github.com/chenghui/supervision-go/internal/domain/attendance"
	"gorm.io/gorm"
)

type AttendanceRepo interface {
	ListRecent(limit int) ([]attendance.Record, error)
	SaveRecord(rec *attendance.Record) error
	WithTx(tx *gorm.DB) AttendanceRepo
}

type DBAttendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) *DBAttendanceRepo {
	return &DBAttendanceRepo{db: db}
}

func (r *DBAttendanceRepo) ListRecent(limit int) ([]attendance.Record, error) {
	var records []attendance.Record
	err := r.db.Order("time DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *DBAttendanceRepo) SaveRecord(rec *attendance.Record) error {
	return r.db.Save(rec).Error
}

func (r *DBAttendanceRepo) WithTx(tx *gorm.DB) AttendanceRepo {
	return &DBAttendanceRepo{db: tx}
}
