// This defines a basic executable for generating a maze, either printed as
// text or saved as an animation of every step of its generation.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yalue/image_utils"
	maze "github.com/yalue/maze_animation"
	"github.com/yalue/maze_animation/config"
)

var log = logrus.New()

// Every kept frame is rasterized in memory before the GIF is written, so a
// warning is logged when more frames than this are kept.
var frameWarningThreshold = 1000

// Holds the parsed command-line arguments.
type options struct {
	cellsWide  int
	cellsHigh  int
	algorithm  maze.Algorithm
	outFile    string
	randomSeed int64
	frameStep  int
	scale      int
	loopCount  int
	duration   time.Duration
}

// Parses the arguments, using the config for any defaults. Returns an error
// if anything is invalid or missing.
func parseOptions(args []string, cfg config.Config, errOut io.Writer) (
	*options, error) {
	var algorithmName string
	var durationMS int
	o := &options{}
	flags := flag.NewFlagSet("create_maze_animation", flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.IntVar(&o.cellsWide, "cells_wide", 20,
		"The width of the maze, in grid cells.")
	flags.IntVar(&o.cellsHigh, "cells_high", 20,
		"The height of the maze, in grid cells.")
	flags.StringVar(&algorithmName, "algorithm", maze.BinaryTree.String(),
		"The generation algorithm. One of: "+
			strings.Join(maze.AlgorithmNames(), ", ")+".")
	flags.StringVar(&o.outFile, "output_file", "",
		"If set, the file to save to. A .png file gets the finished maze, "+
			"anything else gets a GIF of every step. If not set, the "+
			"finished maze is printed to stdout.")
	flags.Int64Var(&o.randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use.")
	flags.IntVar(&o.frameStep, "frame_step", cfg.FrameStep,
		"Only keep every n-th step as an animation frame. The finished "+
			"maze is always kept.")
	flags.IntVar(&o.scale, "scale", 1,
		"Multiplies the size of the output image.")
	flags.IntVar(&o.loopCount, "loop_count", cfg.LoopCount,
		"The number of times the animation restarts. 0 loops forever.")
	flags.IntVar(&durationMS, "animation_ms",
		int(cfg.AnimationDuration/time.Millisecond),
		"The total length of the animation, in milliseconds.")
	e := flags.Parse(args)
	if e != nil {
		return nil, e
	}
	if (o.cellsWide < 1) || (o.cellsHigh < 1) {
		return nil, fmt.Errorf("cells_wide and cells_high must be at least "+
			"1, got %dx%d", o.cellsWide, o.cellsHigh)
	}
	if (o.frameStep < 1) || (o.scale < 1) || (durationMS < 1) {
		return nil, fmt.Errorf("frame_step, scale and animation_ms must be " +
			"positive")
	}
	o.algorithm, e = maze.ParseAlgorithm(algorithmName)
	if e != nil {
		return nil, e
	}
	o.duration = time.Duration(durationMS) * time.Millisecond
	return o, nil
}

// Returns the frame enlarged by the given factor, converted back to the maze
// palette.
func scaleFrame(pic *image.Paletted, scale int) *image.Paletted {
	if scale == 1 {
		return pic
	}
	bounds := pic.Bounds()
	resized := image_utils.ToRGBA(image_utils.ResizeImage(pic,
		bounds.Dx()*scale, bounds.Dy()*scale))
	toReturn := image.NewPaletted(resized.Bounds(), maze.Palette)
	draw.Draw(toReturn, toReturn.Bounds(), resized, resized.Bounds().Min,
		draw.Src)
	return toReturn
}

// Writes the finished maze as a PNG image.
func writePNG(g *maze.Grid, o *options) error {
	pic := image.Image(maze.Rasterize(g))
	if o.scale != 1 {
		bounds := pic.Bounds()
		pic = image_utils.ResizeImage(pic, bounds.Dx()*o.scale,
			bounds.Dy()*o.scale)
	}
	f, e := os.Create(o.outFile)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", o.outFile, e)
	}
	defer f.Close()
	e = png.Encode(f, image_utils.ToRGBA(pic))
	if e != nil {
		return fmt.Errorf("Error writing image to %s: %w", o.outFile, e)
	}
	return nil
}

// Writes every sampled step of the maze's generation as a GIF.
func writeAnimation(grids []*maze.Grid, o *options) error {
	frames := maze.RasterizeAll(grids)
	for i := range frames {
		frames[i] = scaleFrame(frames[i], o.scale)
	}
	f, e := os.Create(o.outFile)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", o.outFile, e)
	}
	defer f.Close()
	e = maze.WriteAnimation(f, frames, maze.AnimationOptions{
		Duration:  o.duration,
		LoopCount: o.loopCount,
	})
	if e != nil {
		return fmt.Errorf("Error writing animation to %s: %w", o.outFile, e)
	}
	return nil
}

// Generates the maze and writes it wherever the options say.
func generate(o *options, stdout io.Writer) error {
	g, e := maze.NewGenerator(o.algorithm, o.cellsWide, o.cellsHigh,
		o.randomSeed)
	if e != nil {
		return fmt.Errorf("Failed creating generator: %w", e)
	}
	log.WithFields(logrus.Fields{
		"algorithm": o.algorithm,
		"width":     o.cellsWide,
		"height":    o.cellsHigh,
	}).Debug("Generating maze")

	outExt := strings.ToLower(filepath.Ext(o.outFile))
	if (o.outFile == "") || (outExt == ".png") {
		final := maze.Last(g)
		log.Infof("Generated %s OK.", g.GetInfo())
		if !final.IsPerfect() {
			return fmt.Errorf("Internal error: the generated maze isn't " +
				"a perfect maze")
		}
		if o.outFile == "" {
			_, e = fmt.Fprintln(stdout, final)
			return e
		}
		e = writePNG(final, o)
		if e != nil {
			return e
		}
		log.Infof("Image %s written OK.", o.outFile)
		return nil
	}

	grids := maze.Sample(g, o.frameStep)
	log.Infof("Generated %s OK, keeping %d frames.", g.GetInfo(), len(grids))
	if len(grids) > frameWarningThreshold {
		// Sampling keeps one frame per frameStep steps, so this step keeps
		// roughly frameWarningThreshold frames.
		step := o.frameStep * ((len(grids) + frameWarningThreshold - 1) /
			frameWarningThreshold)
		log.WithFields(logrus.Fields{
			"frames":     len(grids),
			"frame_step": o.frameStep,
		}).Warnf("Rendering every frame may use a lot of memory. Consider "+
			"running with -frame_step %d or more.", step)
	}
	if !grids[len(grids)-1].IsPerfect() {
		return fmt.Errorf("Internal error: the generated maze isn't a " +
			"perfect maze")
	}
	e = writeAnimation(grids, o)
	if e != nil {
		return e
	}
	log.Infof("Animation %s written OK.", o.outFile)
	return nil
}

func run() int {
	cfg, e := config.Load()
	if e != nil {
		log.Errorf("Error loading configuration: %s", e)
		return 1
	}
	level, e := logrus.ParseLevel(cfg.LogLevel)
	if e != nil {
		log.Errorf("Invalid log level %q: %s", cfg.LogLevel, e)
		return 1
	}
	log.SetLevel(level)
	o, e := parseOptions(os.Args[1:], cfg, os.Stderr)
	if e == flag.ErrHelp {
		return 0
	}
	if e != nil {
		log.Errorf("Invalid or missing argument: %s", e)
		log.Errorf("Run with -help for more information.")
		return 1
	}
	e = generate(o, os.Stdout)
	if e != nil {
		log.Errorf("%s", e)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
