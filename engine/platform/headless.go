package platform

import (
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spaghettifunk/softrast/engine/core"
)

// HeadlessDelta is the simulated frame time of a headless run.
const HeadlessDelta = 1.0 / 60.0

// RunHeadless ticks frames times with a fixed delta, or until the tick asks
// to quit, and returns how many frames completed.
func RunHeadless(frames int, tick TickFunc) (int, error) {
	if frames < 0 {
		return 0, fmt.Errorf("negative frame count %d", frames)
	}

	bar := progressbar.NewOptions(frames,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	for i := 0; i < frames; i++ {
		if err := tick(HeadlessDelta); err != nil {
			if errors.Is(err, core.ErrApplicationQuit) {
				return i, nil
			}
			return i, err
		}
		_ = bar.Add(1)
	}
	return frames, nil
}
