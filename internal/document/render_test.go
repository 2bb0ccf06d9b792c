package document_test

import (
	"testing"

	"github.com/chenghui/supervision-go/internal/document"
	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findHeader(doc document.Document, label string) (string, bool) {
	for _, f := range doc.Header {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// cellAfter returns the value cell following the header cell with the given label.
func cellAfter(doc document.Document, label string) (string, bool) {
	for _, tbl := range doc.Tables {
		for _, row := range tbl.Rows {
			for i, c := range row.Cells {
				if c.Header && c.Text == label && i+1 < len(row.Cells) {
					return row.Cells[i+1].Text, true
				}
			}
		}
	}
	return "", false
}

func TestRenderIsPureAndIdempotent(t *testing.T) {
	for _, typ := range report.AllTypes() {
		r := report.Report{
			ID:         "abc123xyz789",
			Type:       typ,
			AuthorName: "王工",
			Date:       "2024-05-20",
			Details:    []byte(`{"weather":"晴"}`),
		}
		first := document.Render(r, "滨河大道改造工程")
		second := document.Render(r, "滨河大道改造工程")
		assert.Equal(t, first, second, string(typ))
	}
}

func TestRenderMajorEventCode(t *testing.T) {
	r := report.Report{ID: "abc123xyz789", Type: report.TypeMajorEvent, Date: "2024-05-20"}

	doc := document.Render(r, "滨河大道改造工程")

	assert.Equal(t, "HE-ABC123", doc.Code)
	code, ok := findHeader(doc, "报告编号")
	require.True(t, ok)
	assert.Equal(t, "HE-ABC123", code)
}

func TestRenderWitnessMissingDateIsBlank(t *testing.T) {
	r := report.Report{
		ID:      "R1",
		Type:    report.TypeWitness,
		Details: []byte(`{"witnessItem":"钢筋进场"}`),
	}

	doc := document.Render(r, "滨河大道改造工程")

	v, ok := cellAfter(doc, "见证日期")
	require.True(t, ok)
	assert.Equal(t, "", v)

	item, ok := cellAfter(doc, "见证项目")
	require.True(t, ok)
	assert.Equal(t, "钢筋进场", item)
}

func TestRenderWitnessSpecFallsBackToQuantity(t *testing.T) {
	r := report.Report{
		ID:      "R1",
		Type:    report.TypeWitness,
		Details: []byte(`{"quantity":"批次A"}`),
	}

	doc := document.Render(r, "p")

	v, ok := cellAfter(doc, "规格/批次")
	require.True(t, ok)
	assert.Equal(t, "批次A", v)
}

func TestRenderDailyLogSplitsDate(t *testing.T) {
	r := report.Report{ID: "R1", Type: report.TypeDailyLog, Date: "2024-05-20"}
	doc := document.Render(r, "p")

	year, _ := findHeader(doc, "年")
	month, _ := findHeader(doc, "月")
	day, _ := findHeader(doc, "日")
	assert.Equal(t, "2024", year)
	assert.Equal(t, "05", month)
	assert.Equal(t, "20", day)

	t.Run("partial date leaves components blank", func(t *testing.T) {
		doc := document.Render(report.Report{ID: "R1", Type: report.TypeDailyLog, Date: "2024"}, "p")
		month, _ := findHeader(doc, "月")
		day, _ := findHeader(doc, "日")
		assert.Equal(t, "", month)
		assert.Equal(t, "", day)
	})
}

func TestRenderNoticeNumberAndDate(t *testing.T) {
	r := report.Report{ID: "abc123xyz789", Type: report.TypeNotice, Date: "2024-05-20"}
	doc := document.Render(r, "p")

	assert.Equal(t, "ABC123XY", doc.Code)
	assert.Contains(t, doc.Footer, "日期： 2024 年 05 月 20 日")

	t.Run("missing date prints blanks", func(t *testing.T) {
		doc := document.Render(report.Report{ID: "abc123xyz789", Type: report.TypeNotice}, "p")
		assert.Contains(t, doc.Footer, "日期：  年  月  日")
	})
}

func TestRenderSplitsCombinedDateTimes(t *testing.T) {
	t.Run("side station", func(t *testing.T) {
		r := report.Report{
			ID:      "R1",
			Type:    report.TypeSideStation,
			Details: []byte(`{"startTime":"2024-05-20T08:30","endTime":"2024-05-20T17:00"}`),
		}
		doc := document.Render(r, "p")

		d, _ := cellAfter(doc, "开始日期")
		c, _ := cellAfter(doc, "开始时刻")
		assert.Equal(t, "2024-05-20", d)
		assert.Equal(t, "08:30", c)

		ed, _ := cellAfter(doc, "结束日期")
		ec, _ := cellAfter(doc, "结束时刻")
		assert.Equal(t, "2024-05-20", ed)
		assert.Equal(t, "17:00", ec)
	})

	t.Run("minutes", func(t *testing.T) {
		r := report.Report{
			ID:      "R1",
			Type:    report.TypeMinutes,
			Details: []byte(`{"meetTime":"2024-05-21T14:00"}`),
		}
		doc := document.Render(r, "p")

		d, _ := cellAfter(doc, "会议日期")
		c, _ := cellAfter(doc, "会议时间")
		assert.Equal(t, "2024-05-21", d)
		assert.Equal(t, "14:00", c)
	})
}

func TestRenderMalformedDetailsDegradesToBlank(t *testing.T) {
	for _, typ := range report.AllTypes() {
		r := report.Report{
			ID:      "R1",
			Type:    typ,
			Date:    "2024-05-20",
			Details: []byte(`{"weather":123,"host":[],"eventDesc":{}}`),
		}
		assert.NotPanics(t, func() {
			doc := document.Render(r, "p")
			assert.False(t, doc.Fallback, string(typ))
		})
	}
}

func TestRenderUnknownTypeFallsBack(t *testing.T) {
	r := report.Report{ID: "R1", Type: report.Type("传真件")}

	doc := document.Render(r, "p")

	require.True(t, doc.Fallback)
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, "该文书类型暂无标准表格模版", doc.Tables[0].Rows[0].Cells[0].Text)
}

func TestRenderMinutesOthersUnitPlaceholder(t *testing.T) {
	r := report.Report{ID: "R1", Type: report.TypeMinutes, Details: []byte(`{}`)}
	doc := document.Render(r, "p")

	v, ok := cellAfter(doc, "其他单位")
	require.True(t, ok)
	assert.Equal(t, "无", v)
}

func TestSplitHelpers(t *testing.T) {
	y, m, d := document.SplitDate("2024-05-20")
	assert.Equal(t, []string{"2024", "05", "20"}, []string{y, m, d})

	y, m, d = document.SplitDate("")
	assert.Equal(t, []string{"", "", ""}, []string{y, m, d})

	date, clock := document.SplitDateTime("2024-05-20T08:30")
	assert.Equal(t, "2024-05-20", date)
	assert.Equal(t, "08:30", clock)

	date, clock = document.SplitDateTime("")
	assert.Empty(t, date)
	assert.Empty(t, clock)
}
