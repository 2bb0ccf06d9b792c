package application

import (
	"errors"

	"github.com/chenghui/supervision-go/internal/domain/project"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) ListProjects() ([]project.Project, error) {
	return s.Repos.Project.ListProjects()
}

func (s *ProjectService) FindProjectByID(id string) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return project.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) CreateProject(input project.CreateProjectDTO) (project.Project, error) {
	p := project.Project{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Location: input.Location,
		Status:   project.StatusInProgress,
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if err := s.Repos.Project.SaveProject(&p); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) UpdateProject(id string, input project.UpdateProjectDTO) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return project.Project{}, ErrProjectNotFound
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.Status != nil {
		p.Status = *input.Status
	}

	if err := s.Repos.Project.SaveProject(&p); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) RemoveProject(id string) error {
	if _, err := s.Repos.Project.GetProjectByID(id); err != nil {
		return ErrProjectNotFound
	}
	return s.Repos.Project.DeleteProject(id)
}
