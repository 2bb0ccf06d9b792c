package repository

import (
	"errors"

	"github.com/chenghui/supervision-go/internal/domain/report"
	"gorm.io/gorm"
)

// ErrStatusConflict signals a lost transition race: the stored status was no
// longer PENDING when the conditional update ran.
var ErrStatusConflict = errors.New("report status changed concurrently")

type ReportRepo interface {
	ListReports() ([]report.Report, error)
	GetReportByID(id string) (report.Report, error)
	CreateReport(r *report.Report) error
	SaveReport(r *report.Report) error
	// TransitionStatus persists a PENDING→terminal change, conditioned on the
	// stored status still being PENDING. Zero rows affected is ErrStatusConflict.
	TransitionStatus(r *report.Report) error
	WithTx(tx *gorm.DB) ReportRepo
}

type DBReportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *DBReportRepo {
	return &DBReportRepo{db: db}
}

func (r *DBReportRepo) ListReports() ([]report.Report, error) {
	var reports []report.Report
	err := r.db.Order("date DESC, created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *DBReportRepo) GetReportByID(id string) (report.Report, error) {
	var rec report.Report
	err := r.db.First(&rec, "id = ?", id).Error
	return rec, err
}

func (r *DBReportRepo) CreateReport(rec *report.Report) error {
	return r.db.Create(rec).Error
}

// SaveReport upserts by id: status, content and details overwrite an existing
// row, a missing row is inserted.
func (r *DBReportRepo) SaveReport(rec *report.Report) error {
	return r.db.Save(rec).Error
}

func (r *DBReportRepo) TransitionStatus(rec *report.Report) error {
	res := r.db.Model(&report.Report{}).
		Where("id = ? AND status = ?", rec.ID, report.StatusPending).
		Updates(map[string]interface{}{
			"status":        rec.Status,
			"audit_comment": rec.AuditComment,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *DBReportRepo) WithTx(tx *gorm.DB) ReportRepo {
	return &DBReportRepo{db: tx}
}
