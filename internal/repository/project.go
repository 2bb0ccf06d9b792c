package repository

import (
	"github.com/chenghui/supervision-go/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id string) (project.Project, error)
	ListProjects() ([]project.Project, error)
	SaveProject(p *project.Project) error
	DeleteProject(id string) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) GetProjectByID(id string) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, "id = ?", id).Error
	return p, err
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Order("created_at").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) SaveProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id string) error {
	return r.db.Delete(&project.Project{}, "id = ?", id).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	return &DBProjectRepo{db: tx}
}
