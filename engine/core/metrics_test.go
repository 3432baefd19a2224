package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsAverageAndFPS(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(0.010)
	}
	assert.InDelta(t, 10.0, m.FrameTime(), 1e-9)

	// 30 frames of 10ms is 300ms; keep going past one second.
	for i := 0; i < 71; i++ {
		m.Update(0.010)
	}
	fps, avg := m.Frame()
	assert.Equal(t, 101.0, fps)
	assert.InDelta(t, 10.0, avg, 1e-9)
}

func TestClockElapsed(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	c := &Clock{now: func() time.Time { return now }}

	c.Update()
	assert.Equal(t, 0.0, c.Elapsed())

	c.Start()
	now = base.Add(1500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)

	c.Stop()
	now = base.Add(3 * time.Second)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{
		"":      DebugLevel,
		"debug": DebugLevel,
		"INFO":  InfoLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
	} {
		got, err := ParseLogLevel(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLogLevel("loud")
	assert.Error(t, err)
}
