package turtle

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"goturtle/pkg/interp"
)

// Op names a Surface call.
type Op string

const (
	OpForward Op = "forward"
	OpTurn    Op = "turn_right"
	OpPenUp   Op = "pen_up"
	OpPenDown Op = "pen_down"
	OpColor   Op = "set_color"
	OpText    Op = "emit_text"
)

// Command is one recorded Surface call.
type Command struct {
	Op   Op      `json:"op"`
	Arg  float64 `json:"arg,omitempty"`  // forward distance or turn angle
	Text string  `json:"text,omitempty"` // color name or emitted text
}

func (c Command) String() string {
	switch c.Op {
	case OpForward, OpTurn:
		return fmt.Sprintf("%s(%s)", c.Op, strconv.FormatFloat(c.Arg, 'g', -1, 64))
	case OpColor, OpText:
		return fmt.Sprintf("%s(%q)", c.Op, c.Text)
	}
	return string(c.Op) + "()"
}

// Apply performs c on s.
func (c Command) Apply(s interp.Surface) {
	switch c.Op {
	case OpForward:
		s.Forward(c.Arg)
	case OpTurn:
		s.TurnRight(c.Arg)
	case OpPenUp:
		s.PenUp()
	case OpPenDown:
		s.PenDown()
	case OpColor:
		s.SetColor(c.Text)
	case OpText:
		s.EmitText(c.Text)
	}
}

// Recorder is a headless Surface that keeps every call in order and tracks
// the resulting pose.
type Recorder struct {
	commands []Command
	pose     Pose
}

var _ interp.Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{pose: HomePose()}
}

func (r *Recorder) Forward(distance float64) {
	r.commands = append(r.commands, Command{Op: OpForward, Arg: distance})
	r.pose = r.pose.Advance(distance)
}

func (r *Recorder) TurnRight(degrees float64) {
	r.commands = append(r.commands, Command{Op: OpTurn, Arg: degrees})
	r.pose = r.pose.TurnRight(degrees)
}

func (r *Recorder) PenUp() {
	r.commands = append(r.commands, Command{Op: OpPenUp})
	r.pose.PenDown = false
}

func (r *Recorder) PenDown() {
	r.commands = append(r.commands, Command{Op: OpPenDown})
	r.pose.PenDown = true
}

func (r *Recorder) SetColor(name string) {
	r.commands = append(r.commands, Command{Op: OpColor, Text: name})
	r.pose.Color = name
}

func (r *Recorder) EmitText(text string) {
	r.commands = append(r.commands, Command{Op: OpText, Text: text})
}

// Commands returns the recorded calls.
func (r *Recorder) Commands() []Command { return r.commands }

// Pose returns the pose after the last recorded call.
func (r *Recorder) Pose() Pose { return r.pose }

// Text returns every emitted line in order.
func (r *Recorder) Text() []string {
	var out []string
	for _, c := range r.commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Replay performs every recorded call on s.
func (r *Recorder) Replay(s interp.Surface) {
	for _, c := range r.commands {
		c.Apply(s)
	}
}

// Trace is the JSON form of a recording.
type Trace struct {
	Commands []Command `json:"commands"`
	Final    Pose      `json:"final"`
}

// WriteJSON writes the recording as an indented Trace.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Trace{Commands: r.commands, Final: r.pose})
}
