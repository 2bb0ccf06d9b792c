package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ledgerFixture() []report.Report {
	return []report.Report{
		{
			ID: "R1", Type: report.TypeDailyLog, ProjectID: "P1", AuthorName: "张三",
			Date: "2024-05-20", Status: report.StatusPending,
			Content: "今日浇筑三层顶板混凝土，现场安全防护到位。",
		},
		{
			ID: "R2", Type: report.TypeMajorEvent, ProjectID: "P2", AuthorName: "李四",
			Date: "2024-05-19", Status: report.StatusRejected,
			Content:      strings.Repeat("险", 60),
			AuditComment: "需补充现场照片和具体防范方案",
		},
		{
			ID: "R3", Type: report.TypeWitness, ProjectID: "P1", AuthorName: "王五",
			Date: "2024-05-18", Status: report.StatusApproved,
			Content: "见证钢筋取样送检。",
		},
	}
}

func TestLedgerRows(t *testing.T) {
	reports := ledgerFixture()
	rows := export.LedgerRows(reports)

	require.Len(t, rows, len(reports), "one row per report")

	t.Run("column projection", func(t *testing.T) {
		assert.Equal(t, "2024-05-20", rows[0].Date)
		assert.Equal(t, "监理日志", rows[0].Type)
		assert.Equal(t, "张三", rows[0].Author)
		assert.Equal(t, "P1", rows[0].ProjectID)
		assert.Equal(t, "待审核", rows[0].Status)
	})

	t.Run("short content is not truncated", func(t *testing.T) {
		assert.Equal(t, "今日浇筑三层顶板混凝土，现场安全防护到位。", rows[0].Excerpt)
	})

	t.Run("long content gets 50 chars plus ellipsis", func(t *testing.T) {
		runes := []rune(rows[1].Excerpt)
		assert.LessOrEqual(t, len(runes), 53)
		assert.Equal(t, strings.Repeat("险", 50)+"...", rows[1].Excerpt)
	})

	t.Run("audit comment placeholder", func(t *testing.T) {
		assert.Equal(t, "无", rows[0].AuditComment)
		assert.Equal(t, "需补充现场照片和具体防范方案", rows[1].AuditComment)
	})
}

func TestExcelAndCSVShareCellValues(t *testing.T) {
	rows := export.LedgerRows(ledgerFixture())

	var csvBuf bytes.Buffer
	require.NoError(t, export.WriteCSV(&csvBuf, rows))

	csvRecords, err := csv.NewReader(&csvBuf).ReadAll()
	require.NoError(t, err)
	require.Len(t, csvRecords, 4, "header plus three rows")

	var xlsxBuf bytes.Buffer
	require.NoError(t, export.WriteExcel(&xlsxBuf, rows))

	f, err := excelize.OpenReader(&xlsxBuf)
	require.NoError(t, err)
	defer f.Close()

	xlsxRows, err := f.GetRows("Ledger")
	require.NoError(t, err)
	require.Len(t, xlsxRows, 4)

	for i := range csvRecords {
		assert.Equal(t, csvRecords[i], xlsxRows[i], "row %d must match across encodings", i)
	}
}

func TestWriteCSVHeaders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"日期", "类型", "编写人", "所属项目ID", "状态", "内容摘要", "审核意见"}, records[0])
}
