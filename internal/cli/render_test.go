package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSeries_ScalesLargeCounts(t *testing.T) {
	// Подготовка
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	s, err := series.Normalize([]models.TimeSeriesPoint{
		{Date: "2024-03-13", Count: 1},
		{Date: "2024-03-14", Count: 500_000_000},
		{Date: "2024-03-15", Count: 1_000_000_000},
	})
	require.NoError(t, err)

	// Действие
	var buf bytes.Buffer
	require.NoError(t, renderSeries(&buf, s, 3, today))

	// Проверки
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 80, line)
	}
	assert.Equal(t, 1, strings.Count(lines[1], "#"))
	assert.Equal(t, maxBarWidth/2, strings.Count(lines[2], "#"))
	assert.Equal(t, maxBarWidth, strings.Count(lines[3], "#"))
}

func TestRenderSeries_SmallCountsAreUnscaled(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	s, err := series.Normalize([]models.TimeSeriesPoint{
		{Date: "2024-03-14", Count: 0},
		{Date: "2024-03-15", Count: maxBarWidth},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderSeries(&buf, s, 3, today))

	assert.Regexp(t, `03-13\s+no data`, buf.String())
	assert.Regexp(t, `03-14\s+0\s*\n`, buf.String())
	assert.Contains(t, buf.String(), strings.Repeat("#", maxBarWidth)+"\n")
}
