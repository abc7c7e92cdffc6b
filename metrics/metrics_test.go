package metrics

import (
	"testing"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledReturnsStubs(t *testing.T) {
	old := Enabled
	defer func() { Enabled = old }()
	Enabled = false

	c := NewCounter("test/disabled/counter")
	c.Inc(5)
	assert.Equal(t, int64(0), c.Count())
	_, ok := c.(*metrics.NilCounter)
	assert.True(t, ok)

	_, ok = NewTimer("test/disabled/timer").(*metrics.NilTimer)
	assert.True(t, ok)
	_, ok = NewMeter("test/disabled/meter").(*metrics.NilMeter)
	assert.True(t, ok)
}

func TestSnapshotOf(t *testing.T) {
	r := metrics.NewRegistry()
	metrics.GetOrRegisterCounter("b/counter", r).Inc(3)
	tm := metrics.GetOrRegisterTimer("a/timer", r)
	tm.Update(2 * time.Millisecond)
	tm.Update(4 * time.Millisecond)

	got := SnapshotOf(r)
	require.Len(t, got, 2)
	assert.Equal(t, "a/timer", got[0].Name)
	assert.Equal(t, int64(2), got[0].Count)
	assert.InDelta(t, float64(3*time.Millisecond), got[0].Mean, 1)
	assert.Equal(t, Sample{Name: "b/counter", Count: 3}, got[1])
}
