package engine

import (
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/wireframe/engine/systems"
)

type collectingSink struct {
	mu     sync.Mutex
	frames map[int]*image.RGBA
	fail   error
}

func (s *collectingSink) WriteFrame(index int, frame *image.RGBA) error {
	if s.fail != nil {
		return s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames[index] = frame
	return nil
}

func TestJobFrameSinkSnapshotsFrames(t *testing.T) {
	jobs, err := systems.NewJobSystem(2, 1)
	require.NoError(t, err)
	defer jobs.Shutdown()

	target := &collectingSink{frames: map[int]*image.RGBA{}}
	sink := newJobFrameSink(target, jobs)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Pix[0] = 1
	require.NoError(t, sink.WriteFrame(0, img))
	img.Pix[0] = 2
	require.NoError(t, sink.WriteFrame(1, img))
	require.NoError(t, sink.Flush())

	require.Len(t, target.frames, 2)
	assert.Equal(t, uint8(1), target.frames[0].Pix[0])
	assert.Equal(t, uint8(2), target.frames[1].Pix[0])
}

func TestJobFrameSinkReportsFailure(t *testing.T) {
	jobs, err := systems.NewJobSystem(1, 0)
	require.NoError(t, err)
	defer jobs.Shutdown()

	diskFull := errors.New("disk full")
	sink := newJobFrameSink(&collectingSink{fail: diskFull}, jobs)

	require.NoError(t, sink.WriteFrame(0, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.ErrorIs(t, sink.Flush(), diskFull)
	assert.ErrorIs(t, sink.WriteFrame(1, image.NewRGBA(image.Rect(0, 0, 1, 1))), diskFull)
}
