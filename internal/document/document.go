package document

import "strings"

// Document is a fully laid-out, single-page print form. It is plain data: the
// renderer produces it, the preview endpoint serialises it and the image
// exporter rasterises it.
type Document struct {
	ReportID string  `json:"reportId"`
	Title    string  `json:"title"`
	Code     string  `json:"code,omitempty"` // derived document number, not stored
	Header   []Field `json:"header,omitempty"`
	Tables   []Table `json:"tables,omitempty"`
	Footer   []string `json:"footer,omitempty"`
	Fallback bool    `json:"fallback,omitempty"`
}

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Table struct {
	Rows []Row `json:"rows"`
}

type Row struct {
	Cells []Cell `json:"cells"`
}

// Cell is one grid cell. Header cells carry the printed field names; Span counts
// grid columns (the forms use a four-column grid).
type Cell struct {
	Text   string `json:"text"`
	Header bool   `json:"header,omitempty"`
	Span   int    `json:"span,omitempty"`
}

func hcell(text string) Cell {
	return Cell{Text: text, Header: true}
}

func cell(text string) Cell {
	return Cell{Text: text}
}

func wide(text string, span int) Cell {
	return Cell{Text: text, Span: span}
}

func row(cells ...Cell) Row {
	return Row{Cells: cells}
}

// SplitDate breaks a stored YYYY-MM-DD value into its printed components.
// Missing components come back blank, never as an error.
func SplitDate(date string) (year, month, day string) {
	parts := strings.Split(date, "-")
	if len(parts) > 0 {
		year = parts[0]
	}
	if len(parts) > 1 {
		month = parts[1]
	}
	if len(parts) > 2 {
		day = parts[2]
	}
	return year, month, day
}

// SplitDateTime breaks a combined "2006-01-02T15:04" value into separate date
// and time segments for display. The stored value is never mutated.
func SplitDateTime(v string) (date, clock string) {
	if v == "" {
		return "", ""
	}
	sep := "T"
	if !strings.Contains(v, sep) {
		sep = " "
	}
	date, clock, _ = strings.Cut(v, sep)
	return date, clock
}
