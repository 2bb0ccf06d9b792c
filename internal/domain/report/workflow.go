package report

import (
	"errors"
	"strings"
)

// DefaultRejectComment is stored when a reviewer rejects without explaining;
// a rejection must never carry an empty rationale.
const DefaultRejectComment = "需补充现场照片和具体防范方案"

var (
	ErrNotPending        = errors.New("report is not pending")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownType       = errors.New("unknown report type")
)

// Transition validates and applies a status change, returning the updated copy.
// Only PENDING→APPROVED and PENDING→REJECTED exist; terminal reports are left
// untouched and the caller gets ErrNotPending.
func Transition(r Report, next Status, comment string) (Report, error) {
	if r.Status != StatusPending {
		return r, ErrNotPending
	}
	switch next {
	case StatusApproved:
		r.Status = StatusApproved
	case StatusRejected:
		comment = strings.TrimSpace(comment)
		if comment == "" {
			comment = DefaultRejectComment
		}
		r.Status = StatusRejected
		r.AuditComment = comment
	default:
		return r, ErrInvalidTransition
	}
	return r, nil
}
