package document

import (
	"strings"

	"github.com/chenghui/supervision-go/internal/domain/report"
)

// orgCode is the institutional prefix stamped on major-event report codes.
const orgCode = "HE"

// institution is the supervising company name printed on notice forms.
const institution = "新疆成汇工程管理有限公司"

// Render lays out a report into its fixed regulatory print form. It is pure:
// the same report and project name always yield the identical document, and no
// detail payload, however malformed, makes it fail; bad fields print blank.
func Render(r report.Report, projectName string) Document {
	switch r.Type {
	case report.TypeDailyLog:
		return renderDailyLog(r, projectName)
	case report.TypeSideStation:
		return renderSideStation(r, projectName)
	case report.TypeWitness:
		return renderWitness(r, projectName)
	case report.TypeNotice:
		return renderNotice(r, projectName)
	case report.TypeMinutes:
		return renderMinutes(r, projectName)
	case report.TypeMonthly:
		return renderMonthly(r, projectName)
	case report.TypeMajorEvent:
		return renderMajorEvent(r, projectName)
	default:
		return renderFallback(r)
	}
}

// ReportCode derives the short major-event report number: the institutional
// prefix plus the first six characters of the id, upper-cased. Presentation
// only, never stored.
func ReportCode(id string) string {
	return orgCode + "-" + strings.ToUpper(head(id, 6))
}

// noticeNumber is the notice form's document number: first eight id characters.
func noticeNumber(id string) string {
	return strings.ToUpper(head(id, 8))
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func renderFallback(r report.Report) Document {
	return Document{
		ReportID: r.ID,
		Title:    r.Type.Label(),
		Fallback: true,
		Tables: []Table{{Rows: []Row{
			row(wide("该文书类型暂无标准表格模版", 4)),
		}}},
	}
}
