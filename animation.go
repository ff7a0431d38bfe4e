package maze

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"time"
)

// Returned by WriteAnimation when there is nothing to encode.
var ErrNoFrames = errors.New("no frames to animate")

// Controls how WriteAnimation encodes frames.
type AnimationOptions struct {
	// The time taken to show every frame once. Divided evenly between the
	// frames, so the animation length doesn't depend on the maze size.
	// Defaults to one second if not positive.
	Duration time.Duration
	// The number of times the animation restarts after playing through.
	// Zero loops forever; -1 plays once.
	LoopCount int
}

// Returns the options used when none are given: one second, looped three
// times.
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Duration:  time.Second,
		LoopCount: 3,
	}
}

// Returns the per-frame delay in 100ths of a second. GIF can't show a frame
// for less than that, so this is never below 1.
func frameDelay(total time.Duration, frameCount int) int {
	if total <= 0 {
		total = time.Second
	}
	delay := int(total / (10 * time.Millisecond) / time.Duration(frameCount))
	if delay < 1 {
		return 1
	}
	return delay
}

// Encodes the frames as an animated GIF. Every frame must use Palette, which
// is the case for anything returned by Rasterize.
func WriteAnimation(w io.Writer, frames []*image.Paletted,
	opts AnimationOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	delay := frameDelay(opts.Duration, len(frames))
	anim := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: opts.LoopCount,
		Config: image.Config{
			ColorModel: Palette,
			Width:      frames[0].Bounds().Dx(),
			Height:     frames[0].Bounds().Dy(),
		},
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}
	e := gif.EncodeAll(w, anim)
	if e != nil {
		return fmt.Errorf("Error encoding %d-frame animation: %w", len(frames),
			e)
	}
	return nil
}
