package software

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/wireframe/engine/core"
)

// BMPDirSink writes every frame to Dir as <Prefix><index>.bmp.
type BMPDirSink struct {
	Dir    string
	Prefix string
}

func NewBMPDirSink(dir, prefix string) (*BMPDirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("frame directory %s: %w", dir, err)
	}
	return &BMPDirSink{Dir: dir, Prefix: prefix}, nil
}

// FramePath returns the file a given frame index is written to.
func (s *BMPDirSink) FramePath(index int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s%05d.bmp", s.Prefix, index))
}

func (s *BMPDirSink) WriteFrame(index int, frame *image.RGBA) error {
	path := s.FramePath(index)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	core.LogDebug("frame %d written to %s", index, path)
	return nil
}

// ReadFrame decodes a frame previously written by the sink.
func (s *BMPDirSink) ReadFrame(index int) (image.Image, error) {
	f, err := os.Open(s.FramePath(index))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bmp.Decode(f)
}
