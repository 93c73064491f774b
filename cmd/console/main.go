package main

import (
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

// consoleSurface prints every drawing call as it happens, and prints emitted
// text unadorned.
type consoleSurface struct {
	out  io.Writer
	pose turtle.Pose
}

func newConsoleSurface(out io.Writer) *consoleSurface {
	return &consoleSurface{out: out, pose: turtle.HomePose()}
}

func (c *consoleSurface) Forward(distance float64) {
	c.pose = c.pose.Advance(distance)
	fmt.Fprintf(c.out, "[turtle] forward %s -> (%.2f, %.2f)\n", compiler.FormatNumber(distance), c.pose.X, c.pose.Y)
}

func (c *consoleSurface) TurnRight(degrees float64) {
	c.pose = c.pose.TurnRight(degrees)
	fmt.Fprintf(c.out, "[turtle] right %s -> heading %.2f\n", compiler.FormatNumber(degrees), c.pose.Heading)
}

func (c *consoleSurface) PenUp() {
	c.pose.PenDown = false
	fmt.Fprintln(c.out, "[turtle] pen up")
}

func (c *consoleSurface) PenDown() {
	c.pose.PenDown = true
	fmt.Fprintln(c.out, "[turtle] pen down")
}

func (c *consoleSurface) SetColor(name string) {
	c.pose.Color = name
	fmt.Fprintf(c.out, "[turtle] color %s\n", name)
}

func (c *consoleSurface) EmitText(text string) {
	fmt.Fprintln(c.out, text)
}

func main() {
	showIR := flag.Bool("show-ir", false, "print the optimized IR before running")
	quiet := flag.Bool("quiet", false, "only print emitted text, not drawing calls")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: console [-show-ir] [-quiet] <program>")
		os.Exit(2)
	}

	src, fullPath, err := utils.ReadSource(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}
	fmt.Println("Running source file:", fullPath)

	res, err := compiler.Compile(src)
	if err != nil {
		log.Fatalf("Compilation failed: %v", compiler.WrapErrorWithSource(err, src))
	}

	if *showIR {
		fmt.Print("Optimized IR:\n", compiler.FormatIR(res.Optimized), "\n")
	}

	var surface interp.Surface
	if *quiet {
		surface = turtle.NewRecorder()
	} else {
		surface = newConsoleSurface(os.Stdout)
	}
	ip := interp.New(surface)
	err = ip.Run(res.Optimized)
	// quiet mode only shows the text, even when the run failed part way
	if rec, ok := surface.(*turtle.Recorder); ok {
		for _, line := range rec.Text() {
			fmt.Println(line)
		}
	}
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	fmt.Printf("done: %d instructions executed\n", ip.Steps())
}
