//go:build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"goturtle/pkg/compiler"
	"goturtle/pkg/interp"
	"goturtle/pkg/turtle"
	"goturtle/pkg/utils"
)

// runConfig carries the command-line settings for one invocation.
type runConfig struct {
	Width, Height int
	NoOptimize    bool
	Trace         bool
	TextOverlay   bool
	PNGPath       string
	JSONPath      string
}

func main() {
	inPath := flag.String("in", "", "input turtle program")
	outPath := flag.String("out", "", "output PNG path (default: input with .png extension)")
	jsonPath := flag.String("json", "", "also write the drawing-call trace as JSON to this path")
	width := flag.Int("width", 512, "canvas width in pixels")
	height := flag.Int("height", 512, "canvas height in pixels")
	noOpt := flag.Bool("no-opt", false, "run the unoptimized IR")
	trace := flag.Bool("trace", false, "log every executed instruction to stderr")
	overlay := flag.Bool("text-overlay", false, "draw printed output onto the PNG")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <program>")
		flag.Usage()
		os.Exit(2)
	}

	src, fullPath, err := utils.ReadSource(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	cfg := runConfig{
		Width:       *width,
		Height:      *height,
		NoOptimize:  *noOpt,
		Trace:       *trace,
		TextOverlay: *overlay,
		PNGPath:     *outPath,
		JSONPath:    *jsonPath,
	}
	if cfg.PNGPath == "" {
		cfg.PNGPath = utils.DefaultOutputPath(fullPath, ".png")
	}

	canvas, err := run(src, cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", compiler.WrapErrorWithSource(err, src))
		os.Exit(1)
	}

	fmt.Printf("run complete (%s): turtle at %s -> %s\n", fullPath, canvas.Pose(), cfg.PNGPath)
}

// run compiles src, executes it on a fresh canvas and writes the requested
// outputs. Printed text goes to stdout.
func run(src string, cfg runConfig, stdout io.Writer) (*turtle.Canvas, error) {
	res, err := compiler.Compile(src)
	if err != nil {
		return nil, err
	}
	program := res.Optimized
	if cfg.NoOptimize {
		program = res.IR
	}

	canvas := turtle.NewCanvas(cfg.Width, cfg.Height, turtle.WithTextOutput(stdout))
	rec := turtle.NewRecorder()

	var opts []interp.Option
	if cfg.Trace {
		opts = append(opts, interp.WithLogger(log.New(os.Stderr, "trace: ", 0)))
	}
	runErr := interp.New(rec, opts...).Run(program)
	// Whatever ran before a runtime error is still drawn.
	rec.Replay(canvas)

	if cfg.PNGPath != "" {
		if err := canvas.SavePNG(cfg.PNGPath, turtle.SnapshotOptions{Text: cfg.TextOverlay}); err != nil {
			return canvas, errors.Join(runErr, fmt.Errorf("write png: %w", err))
		}
	}
	if cfg.JSONPath != "" {
		if err := writeTrace(cfg.JSONPath, rec); err != nil {
			return canvas, errors.Join(runErr, fmt.Errorf("write trace: %w", err))
		}
	}
	return canvas, runErr
}

func writeTrace(path string, rec *turtle.Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
