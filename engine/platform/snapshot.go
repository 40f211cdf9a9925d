package platform

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

/**
 * @brief A surface that writes every presented frame to an image file.
 *
 * The pattern may contain one integer verb (e.g. "out/frame-%04d.png") that
 * is replaced with the frame number; without one every frame overwrites the
 * same file. The extension picks the encoder: .png or .bmp.
 */
type Snapshot struct {
	pattern string
	encode  func(f *os.File, img image.Image) error
	frame   int
}

func NewSnapshot(pattern string) (*Snapshot, error) {
	s := &Snapshot{pattern: pattern}
	switch strings.ToLower(filepath.Ext(pattern)) {
	case ".png":
		s.encode = func(f *os.File, img image.Image) error { return png.Encode(f, img) }
	case ".bmp":
		s.encode = func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, pattern)
	}
	return s, nil
}

// Path returns the file the given frame is written to.
func (s *Snapshot) Path(frame int) string {
	if strings.Contains(s.pattern, "%") {
		return fmt.Sprintf(s.pattern, frame)
	}
	return s.pattern
}

// Frames returns how many frames were written.
func (s *Snapshot) Frames() int { return s.frame }

func (s *Snapshot) Present(frame *image.RGBA) error {
	path := s.Path(s.frame)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.encode(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.frame++
	return nil
}
