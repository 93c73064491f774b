package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goturtle/pkg/compiler"
	"goturtle/pkg/interp"
	"goturtle/pkg/turtle"
)

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := runConfig{
		Width:    64,
		Height:   48,
		PNGPath:  filepath.Join(dir, "out.png"),
		JSONPath: filepath.Join(dir, "out.json"),
	}

	var stdout bytes.Buffer
	canvas, err := run("repeat 2 { move 10; turn 90; } print(2 * 21);", cfg, &stdout)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout.String() != "42\n" {
		t.Errorf("stdout: got %q", stdout.String())
	}
	if pose := canvas.Pose(); pose.Heading != 180 {
		t.Errorf("unexpected final pose %v", pose)
	}

	f, err := os.Open(cfg.PNGPath)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("png size %v", b)
	}

	data, err := os.ReadFile(cfg.JSONPath)
	if err != nil {
		t.Fatalf("trace not written: %v", err)
	}
	var trace turtle.Trace
	if err := json.Unmarshal(data, &trace); err != nil {
		t.Fatalf("invalid trace: %v", err)
	}
	if len(trace.Commands) != 5 || trace.Commands[4].Text != "42" {
		t.Errorf("unexpected trace %+v", trace.Commands)
	}
}

func TestRunCompileError(t *testing.T) {
	dir := t.TempDir()
	cfg := runConfig{Width: 16, Height: 16, PNGPath: filepath.Join(dir, "out.png")}

	src := "move 10;\nturn 90;\n    }"
	canvas, err := run(src, cfg, &bytes.Buffer{})
	if !errors.Is(err, compiler.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if canvas != nil {
		t.Error("no canvas should be produced when compilation fails")
	}
	if _, err := os.Stat(cfg.PNGPath); !os.IsNotExist(err) {
		t.Error("no png should be written when compilation fails")
	}

	msg := compiler.WrapErrorWithSource(err, src).Error()
	if !strings.HasPrefix(msg, "PARSE ERROR at 3:5") {
		t.Errorf("unexpected message:\n%s", msg)
	}
}

func TestRunRuntimeErrorKeepsPartialDrawing(t *testing.T) {
	dir := t.TempDir()
	cfg := runConfig{Width: 40, Height: 40, PNGPath: filepath.Join(dir, "out.png")}

	var stdout bytes.Buffer
	canvas, err := run("x = 10; y = 0; move 15; print(x); print(x / y); move 5;", cfg, &stdout)
	if !errors.Is(err, interp.ErrRuntime) {
		t.Fatalf("expected runtime error, got %v", err)
	}
	if canvas == nil {
		t.Fatal("canvas should be returned with the partial drawing")
	}
	if pose := canvas.Pose(); pose.X != 15 {
		t.Errorf("drawing should stop at the error, pose %v", pose)
	}
	if stdout.String() != "10\n" {
		t.Errorf("stdout: got %q", stdout.String())
	}
	if _, err := os.Stat(cfg.PNGPath); err != nil {
		t.Errorf("partial png should still be written: %v", err)
	}
}

func TestRunWithoutOptimization(t *testing.T) {
	var opt, raw bytes.Buffer
	src := "repeat 3 { move 2 + 2; turn 60 * 2; }"
	a, err := run(src, runConfig{Width: 32, Height: 32}, &opt)
	if err != nil {
		t.Fatal(err)
	}
	b, err := run(src, runConfig{Width: 32, Height: 32, NoOptimize: true}, &raw)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("optimized and unoptimized drawings differ")
	}
}
