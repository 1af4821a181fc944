package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/fund-analytics/internal/model"
)

func TestComputePeriodReturns(t *testing.T) {
	t.Run("empty series maps every window to no data", func(t *testing.T) {
		got := ComputePeriodReturns(model.NAVSeries{}, time.Time{}, DefaultWindows)

		require.Len(t, got, len(DefaultWindows))
		for i, r := range got {
			assert.Equal(t, DefaultWindows[i].Label, r.Label)
			assert.Equal(t, model.StatusNoData, r.Metric.Status)
			assert.Nil(t, r.Metric.Value)
			assert.Equal(t, "no data", r.Metric.Display)
		}
	})

	t.Run("baseline is the last observation at or before the cutoff", func(t *testing.T) {
		series := sparseSeries(t, []int{0, 10, 20}, []string{"1.000", "1.100", "0.990"})

		got := ComputePeriodReturns(series, day(20), []Window{{Label: model.PeriodOneWeek, LookbackDays: 7}})

		m, ok := got.Get(model.PeriodOneWeek)
		require.True(t, ok)
		require.True(t, m.OK())
		assert.Equal(t, "-10.00%", m.Display)
		assert.InDelta(t, -10.0, *m.Value, 1e-9)
	})

	t.Run("cutoff landing exactly on an observation uses it", func(t *testing.T) {
		series := sparseSeries(t, []int{0, 3, 10}, []string{"2.00", "2.50", "3.00"})

		got := ComputePeriodReturns(series, time.Time{}, []Window{{Label: "7d", LookbackDays: 7}})

		m, _ := got.Get("7d")
		assert.Equal(t, "20.00%", m.Display)
	})

	t.Run("lookback beyond the series span is insufficient data", func(t *testing.T) {
		series := sparseSeries(t, []int{0, 10, 20}, []string{"1.000", "1.100", "0.990"})

		got := ComputePeriodReturns(series, time.Time{}, DefaultWindows)

		week, _ := got.Get(model.PeriodOneWeek)
		assert.Equal(t, model.StatusOK, week.Status)
		for _, label := range []string{model.PeriodOneMonth, model.PeriodThreeMonth, model.PeriodOneYear} {
			m, ok := got.Get(label)
			require.True(t, ok)
			assert.Equal(t, model.StatusInsufficientData, m.Status, label)
			assert.Equal(t, "insufficient data", m.Display)
		}
	})

	t.Run("missing reference date defaults to the latest date", func(t *testing.T) {
		series := sparseSeries(t, []int{0, 10, 20}, []string{"1.000", "1.100", "0.990"})

		implicit := ComputePeriodReturns(series, time.Time{}, DefaultWindows)
		explicit := ComputePeriodReturns(series, day(20), DefaultWindows)

		assert.Equal(t, explicit, implicit)
	})

	t.Run("latest value comes from the maximum date even with an earlier reference date", func(t *testing.T) {
		series := sparseSeries(t, []int{0, 5, 20}, []string{"1.00", "1.50", "2.00"})

		got := ComputePeriodReturns(series, day(8), []Window{{Label: "7d", LookbackDays: 7}})

		m, _ := got.Get("7d")
		assert.Equal(t, "100.00%", m.Display)
	})

	t.Run("zero baseline is invalid data", func(t *testing.T) {
		series := sparseSeries(t, []int{0, 10}, []string{"0", "1.2"})

		got := ComputePeriodReturns(series, time.Time{}, []Window{{Label: "7d", LookbackDays: 7}})

		m, _ := got.Get("7d")
		assert.Equal(t, model.StatusInvalidData, m.Status)
		assert.Nil(t, m.Value)
	})

	t.Run("same input twice gives identical output", func(t *testing.T) {
		series := seriesOf(t, "1.0", "1.1", "1.05", "1.2", "1.15", "1.3", "1.25", "1.4", "1.35")

		first := ComputePeriodReturns(series, day(8), DefaultWindows)
		second := ComputePeriodReturns(series, day(8), DefaultWindows)

		assert.Equal(t, first, second)
	})

	t.Run("results keep window order", func(t *testing.T) {
		series := seriesOf(t, "1.0", "1.1")
		windows := []Window{{Label: "b", LookbackDays: 1}, {Label: "a", LookbackDays: 2}}

		got := ComputePeriodReturns(series, time.Time{}, windows)

		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].Label)
		assert.Equal(t, "10.00%", got[0].Metric.Display)
		assert.Equal(t, "a", got[1].Label)
		assert.Equal(t, model.StatusInsufficientData, got[1].Metric.Status)
	})
}
