package report_test

import (
	"testing"

	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDetailsPerType(t *testing.T) {
	t.Run("witness payload", func(t *testing.T) {
		raw := []byte(`{"witnessItem":"钢筋进场","part":"三层梁","quantity":"批次A"}`)
		d, err := report.DecodeDetails(report.TypeWitness, raw)
		require.NoError(t, err)

		w, ok := d.(report.WitnessDetails)
		require.True(t, ok)
		assert.Equal(t, "钢筋进场", w.WitnessItem)
		assert.Equal(t, "批次A", w.Quantity)
		assert.Empty(t, w.WitnessDate, "absent optional field decodes to blank")
	})

	t.Run("empty payload decodes to zero value", func(t *testing.T) {
		d, err := report.DecodeDetails(report.TypeMonthly, nil)
		require.NoError(t, err)
		assert.Equal(t, report.MonthlyDetails{}, d)
	})

	t.Run("malformed payload keeps zero value and reports error", func(t *testing.T) {
		d, err := report.DecodeDetails(report.TypeMajorEvent, []byte(`{"eventCategory":42}`))
		assert.Error(t, err)
		assert.Equal(t, report.MajorEventDetails{}, d)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := report.DecodeDetails(report.Type("FAX"), nil)
		assert.ErrorIs(t, err, report.ErrUnknownType)
	})
}
