package application_test

import (
	"errors"

	"github.com/chenghui/supervision-go/internal/domain/announcement"
	"github.com/chenghui/supervision-go/internal/domain/attendance"
	"github.com/chenghui/supervision-go/internal/domain/project"
	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/internal/domain/user"
	"github.com/chenghui/supervision-go/internal/repository"
	"gorm.io/gorm"
)

var errDBDown = errors.New("database unavailable")

// fakeReportRepo mimics the gateway, including the conditional status update.
type fakeReportRepo struct {
	byID       map[string]report.Report
	failList   bool
	failCreate bool
}

func newFakeReportRepo(reports ...report.Report) *fakeReportRepo {
	f := &fakeReportRepo{byID: make(map[string]report.Report)}
	for _, r := range reports {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeReportRepo) ListReports() ([]report.Report, error) {
	if f.failList {
		return nil, errDBDown
	}
	out := make([]report.Report, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReportRepo) GetReportByID(id string) (report.Report, error) {
	r, ok := f.byID[id]
	if !ok {
		return report.Report{}, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeReportRepo) CreateReport(r *report.Report) error {
	if f.failCreate {
		return errDBDown
	}
	f.byID[r.ID] = *r
	return nil
}

func (f *fakeReportRepo) SaveReport(r *report.Report) error {
	f.byID[r.ID] = *r
	return nil
}

func (f *fakeReportRepo) TransitionStatus(r *report.Report) error {
	cur, ok := f.byID[r.ID]
	if !ok || cur.Status != report.StatusPending {
		return repository.ErrStatusConflict
	}
	cur.Status = r.Status
	cur.AuditComment = r.AuditComment
	f.byID[r.ID] = cur
	return nil
}

func (f *fakeReportRepo) WithTx(tx *gorm.DB) repository.ReportRepo { return f }

type fakeUserRepo struct {
	byID map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]user.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetUserByID(id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByUsername(username string) (user.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListUsers() ([]user.User, error) {
	out := make([]user.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) SaveUser(u *user.User) error {
	f.byID[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) DeleteUser(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) repository.UserRepo { return f }

type fakeProjectRepo struct {
	byID map[string]project.Project
}

func newFakeProjectRepo(projects ...project.Project) *fakeProjectRepo {
	f := &fakeProjectRepo{byID: make(map[string]project.Project)}
	for _, p := range projects {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProjectRepo) GetProjectByID(id string) (project.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return project.Project{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) ListProjects() ([]project.Project, error) {
	out := make([]project.Project, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) SaveProject(p *project.Project) error {
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeProjectRepo) DeleteProject(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeProjectRepo) WithTx(tx *gorm.DB) repository.ProjectRepo { return f }

type fakeAnnouncementRepo struct {
	items []announcement.Announcement
}

func (f *fakeAnnouncementRepo) ListAnnouncements() ([]announcement.Announcement, error) {
	return f.items, nil
}

func (f *fakeAnnouncementRepo) SaveAnnouncement(a *announcement.Announcement) error {
	f.items = append(f.items, *a)
	return nil
}

func (f *fakeAnnouncementRepo) WithTx(tx *gorm.DB) repository.AnnouncementRepo { return f }

type fakeAttendanceRepo struct {
	items []attendance.Record
}

func (f *fakeAttendanceRepo) ListRecent(limit int) ([]attendance.Record, error) {
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func (f *fakeAttendanceRepo) SaveRecord(rec *attendance.Record) error {
	f.items = append(f.items, *rec)
	return nil
}

func (f *fakeAttendanceRepo) WithTx(tx *gorm.DB) repository.AttendanceRepo { return f }
