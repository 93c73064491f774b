package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"goturtle/pkg/compiler"
	"goturtle/pkg/interp"
	"goturtle/pkg/turtle"
	"goturtle/pkg/utils"
)

const (
	statusHeight = 16
	lineHeight   = 16
	maxSpeed     = 4096
)

// Game animates a compiled program: it is run once onto a Recorder and the
// recorded calls are then replayed onto the canvas a few per frame.
type Game struct {
	path     string
	width    int
	height   int
	canvas   *turtle.Canvas
	commands []turtle.Command
	next     int // index of the next command to replay
	speed    int // commands per frame
	paused   bool
	failure  string // compile or runtime error, shown in the window

	graphicsImg *ebiten.Image // reused canvas-sized bitmap
}

func newGame(path string, width, height, speed int) *Game {
	return &Game{
		path:   path,
		width:  width,
		height: height,
		canvas: turtle.NewCanvas(width, height),
		speed:  speed,
	}
}

// load (re)reads the source file, compiles and runs it, and rewinds the
// animation. A runtime error keeps everything drawn before it.
func (g *Game) load() {
	g.canvas.Clear()
	g.commands = nil
	g.next = 0
	g.failure = ""

	src, _, err := utils.ReadSource(g.path)
	if err != nil {
		g.failure = err.Error()
		return
	}
	res, err := compiler.Compile(src)
	if err != nil {
		g.failure = compiler.WrapErrorWithSource(err, src).Error()
		log.Print(g.failure)
		return
	}
	rec := turtle.NewRecorder()
	if err := interp.New(rec).Run(res.Optimized); err != nil {
		g.failure = "runtime error: " + err.Error()
		log.Print(g.failure)
	}
	g.commands = rec.Commands()
}

// advance replays up to n recorded commands onto the canvas.
func (g *Game) advance(n int) {
	for ; n > 0 && g.next < len(g.commands); n-- {
		g.commands[g.next].Apply(g.canvas)
		g.next++
	}
}

func (g *Game) done() bool { return g.next >= len(g.commands) }

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.load()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.advance(len(g.commands))
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.speed = min(g.speed*2, maxSpeed)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.speed = max(g.speed/2, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		name := strings.TrimSuffix(g.path, ".turtle") + "_screenshot.png"
		if err := g.canvas.SavePNG(name, turtle.SnapshotOptions{Text: true}); err != nil {
			log.Printf("screenshot failed: %v", err)
		} else {
			log.Printf("screenshot saved to %s", name)
		}
	}

	if !g.paused {
		g.advance(g.speed)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.graphicsImg == nil {
		g.graphicsImg = ebiten.NewImage(g.width, g.height)
	}

	snap := g.canvas.Snapshot(turtle.SnapshotOptions{Cursor: !g.done()})
	g.graphicsImg.WritePixels(snap.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, statusHeight)
	screen.DrawImage(g.graphicsImg, op)

	state := "running"
	switch {
	case g.paused:
		state = "paused"
	case g.done():
		state = "done"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %d/%d  speed %d  [R]eload [Space] pause [End] finish [S]creenshot",
		state, g.next, len(g.commands), g.speed), 4, 0)

	y := statusHeight + 4
	for _, line := range g.canvas.Text() {
		ebitenutil.DebugPrintAt(screen, line, 4, y)
		y += lineHeight
	}
	if g.failure != "" {
		for _, line := range strings.Split(g.failure, "\n") {
			ebitenutil.DebugPrintAt(screen, line, 4, y)
			y += lineHeight
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height + statusHeight
}

func main() {
	width := flag.Int("width", 512, "canvas width in pixels")
	height := flag.Int("height", 512, "canvas height in pixels")
	speed := flag.Int("speed", 2, "drawing calls replayed per frame")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: desktop [-width N] [-height N] [-speed N] <program>")
		os.Exit(2)
	}

	game := newGame(flag.Arg(0), *width, *height, max(*speed, 1))
	game.load()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width, *height+statusHeight)
	ebiten.SetWindowTitle("goturtle - " + flag.Arg(0))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
