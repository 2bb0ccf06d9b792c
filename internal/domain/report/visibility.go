package report

import "github.com/chenghui/supervision-go/internal/domain/user"

// VisibleTo projects the reports a user may see, preserving input order.
// LEADER sees the whole company, CHIEF the own project, field roles only what
// they authored. A CHIEF without a project assignment sees nothing.
func VisibleTo(reports []Report, u user.User) []Report {
	switch u.Role {
	case user.RoleLeader:
		out := make([]Report, len(reports))
		copy(out, reports)
		return out
	case user.RoleChief:
		out := []Report{}
		if u.ProjectID == "" {
			return out
		}
		for _, r := range reports {
			if r.ProjectID == u.ProjectID {
				out = append(out, r)
			}
		}
		return out
	default:
		out := []Report{}
		for _, r := range reports {
			if r.AuthorID == u.ID {
				out = append(out, r)
			}
		}
		return out
	}
}

// CanView reports whether a single report falls inside the user's visible set.
func CanView(r Report, u user.User) bool {
	switch u.Role {
	case user.RoleLeader:
		return true
	case user.RoleChief:
		return u.ProjectID != "" && r.ProjectID == u.ProjectID
	default:
		return r.AuthorID == u.ID
	}
}

// ImportantPending selects the company-wide risk-alert set: major-event reports
// still awaiting review. The projection ignores the caller's role on purpose.
func ImportantPending(reports []Report) []Report {
	out := []Report{}
	for _, r := range reports {
		if r.IsImportant && r.Status == StatusPending {
			out = append(out, r)
		}
	}
	return out
}

// CanAuthor is the field authoring matrix: assistants keep daily logs, engineers
// additionally file the professional records, the chief may author any form.
// Company leadership reviews but does not author.
func CanAuthor(role user.Role, t Type) bool {
	switch role {
	case user.RoleAssistant:
		return t == TypeDailyLog
	case user.RoleEngineer:
		switch t {
		case TypeDailyLog, TypeSideStation, TypeWitness, TypeNotice:
			return true
		}
		return false
	case user.RoleChief:
		return t.Valid()
	}
	return false
}

// CanReview decides the reviewer gate for a transition. Major-event reports go
// straight to company leadership; ordinary reports are reviewed by the project's
// chief engineer, with leadership retaining company-wide oversight.
func CanReview(u user.User, r Report) bool {
	if r.IsImportant {
		return u.Role == user.RoleLeader
	}
	switch u.Role {
	case user.RoleLeader:
		return true
	case user.RoleChief:
		return u.ProjectID != "" && r.ProjectID == u.ProjectID
	}
	return false
}
