package engine

import (
	"fmt"
	"image"
	"sync"

	"github.com/spaghettifunk/wireframe/engine/renderer/software"
	"github.com/spaghettifunk/wireframe/engine/systems"
)

// jobFrameSink hands every presented frame to the job system, so encoding
// and disk writes do not stall the frame loop. A failed write is reported
// by the next WriteFrame or by Flush.
type jobFrameSink struct {
	sink software.FrameSink
	jobs *systems.JobSystem

	mu  sync.Mutex
	err error
}

func newJobFrameSink(sink software.FrameSink, jobs *systems.JobSystem) *jobFrameSink {
	return &jobFrameSink{sink: sink, jobs: jobs}
}

func (s *jobFrameSink) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *jobFrameSink) WriteFrame(index int, frame *image.RGBA) error {
	if err := s.failure(); err != nil {
		return err
	}
	// The canvas reuses its image for the next frame.
	snapshot := image.NewRGBA(frame.Rect)
	copy(snapshot.Pix, frame.Pix)

	return s.jobs.Submit(systems.JobTask{
		Name: fmt.Sprintf("frame %d", index),
		OnStart: func() error {
			return s.sink.WriteFrame(index, snapshot)
		},
		OnFailure: func(err error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err == nil {
				s.err = err
			}
		},
	})
}

// Flush waits for every queued frame and returns the first write failure.
func (s *jobFrameSink) Flush() error {
	s.jobs.Wait()
	return s.failure()
}
