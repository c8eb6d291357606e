package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stubNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })
}

func TestNormalizeDate_ISOStrings(t *testing.T) {
	assert.Equal(t, "02/04/2025", NormalizeDate("2025-04-02", ""))
	// timestamp suffixes are ignored
	assert.Equal(t, "02/04/2025", NormalizeDate("2025-04-02T12:30:00Z", ""))
}

func TestNormalizeDate_FreeFormStrings(t *testing.T) {
	assert.Equal(t, "12/03/2025", NormalizeDate("Paid on 12/03/2025 at noon", ""))
	assert.Equal(t, "05/04/2025", NormalizeDate("5-4-25", ""))
}

func TestNormalizeDate_ComponentObjects(t *testing.T) {
	assert.Equal(t, "05/04/2025", NormalizeDate(map[string]any{"day": 5, "month": 4, "year": 25}, ""))
	assert.Equal(t, "01/12/2024", NormalizeDate(map[string]any{"day_numeric": 1.0, "month_numeric": 12.0, "year_numeric": 2024.0}, ""))
}

func TestNormalizeDate_WrappedValue(t *testing.T) {
	assert.Equal(t, "02/04/2025", NormalizeDate(map[string]any{"value": "2025-04-02"}, ""))
	assert.Equal(t, "02/04/2025", NormalizeDate(map[string]any{"content": "02/04/2025"}, ""))
}

func TestNormalizeDate_Time(t *testing.T) {
	ts := time.Date(2025, 4, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "02/04/2025", NormalizeDate(ts, ""))
}

func TestNormalizeDate_EpochMillis(t *testing.T) {
	ts := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "02/04/2025", NormalizeDate(float64(ts.UnixMilli()), ""))
}

func TestNormalizeDate_AbsentFallsBackToToday(t *testing.T) {
	stubNow(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, "15/06/2025", NormalizeDate(nil, ""))
	assert.Equal(t, "15/06/2025", NormalizeDate("no date here", ""))
	assert.Equal(t, "15/06/2025", NormalizeDate(map[string]any{"unrelated": true}, ""))
	// out-of-range timestamps cannot form a calendar date
	assert.Equal(t, "15/06/2025", NormalizeDate(9e15, ""))
}

func TestInferDate(t *testing.T) {
	assert.Equal(t, "12/03/2025", InferDate("Super Café 12/03/2025 Total 15,90"))
	assert.Equal(t, "07/01/2023", InferDate("receipt 7-1-23"))

	stubNow(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "15/06/2025", InferDate("nothing to see"))
}
