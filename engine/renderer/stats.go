package renderer

import "fmt"

// FrameStats counts the work done since the last Clear.
type FrameStats struct {
	Meshes  int
	Faces   int
	Lines   int
	Dropped int // lines skipped because an endpoint could not be projected
	Plotted int
	Clipped int
}

func (s FrameStats) String() string {
	return fmt.Sprintf("meshes=%d faces=%d lines=%d dropped=%d plotted=%d clipped=%d",
		s.Meshes, s.Faces, s.Lines, s.Dropped, s.Plotted, s.Clipped)
}
