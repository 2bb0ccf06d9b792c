package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// ledger column headers, in print order
var ledgerHeaders = []string{"日期", "类型", "编写人", "所属项目ID", "状态", "内容摘要", "审核意见"}

const (
	excerptLimit = 50
	sheetName    = "Ledger"
)

// LedgerRow is the shared per-report projection behind both export encodings.
type LedgerRow struct {
	Date         string
	Type         string
	Author       string
	ProjectID    string
	Status       string
	Excerpt      string
	AuditComment string
}

func (r LedgerRow) values() []string {
	return []string{r.Date, r.Type, r.Author, r.ProjectID, r.Status, r.Excerpt, r.AuditComment}
}

// LedgerRows flattens a report collection into export rows, one per report and
// in input order. The content excerpt keeps the first 50 characters with an
// ellipsis marker when truncated; a missing audit comment prints as 无.
func LedgerRows(reports []report.Report) []LedgerRow {
	rows := make([]LedgerRow, 0, len(reports))
	for _, r := range reports {
		comment := r.AuditComment
		if comment == "" {
			comment = "无"
		}
		rows = append(rows, LedgerRow{
			Date:         r.Date,
			Type:         r.Type.Label(),
			Author:       r.AuthorName,
			ProjectID:    r.ProjectID,
			Status:       r.Status.Label(),
			Excerpt:      excerpt(r.Content),
			AuditComment: comment,
		})
	}
	return rows
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content
	}
	return string(runes[:excerptLimit]) + "..."
}

// WriteExcel renders the rows as a spreadsheet workbook.
func WriteExcel(w io.Writer, rows []LedgerRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	cols := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, h := range ledgerHeaders {
		if err := f.SetCellValue(sheetName, cols[i]+"1", h); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for j, v := range row.values() {
			if err := f.SetCellValue(sheetName, cols[j]+fmt.Sprint(i+2), v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// WriteCSV renders the same rows as plain delimited text.
func WriteCSV(w io.Writer, rows []LedgerRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeaders); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
