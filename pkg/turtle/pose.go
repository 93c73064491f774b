package turtle

import (
	"fmt"
	"math"
)

// Pose is the turtle's state. X grows to the right and Y grows upwards, with
// the origin where the turtle starts. Heading is in degrees counterclockwise
// from east.
type Pose struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
	PenDown bool    `json:"pen_down"`
	Color   string  `json:"color"`
}

// HomePose is the starting pose: at the origin facing east, pen down, black ink.
func HomePose() Pose {
	return Pose{PenDown: true, Color: "black"}
}

// Advance returns the pose after moving distance along the heading.
func (p Pose) Advance(distance float64) Pose {
	rad := p.Heading * math.Pi / 180
	p.X += distance * math.Cos(rad)
	p.Y += distance * math.Sin(rad)
	return p
}

// TurnRight returns the pose after a clockwise turn of degrees. The heading
// is kept in [0, 360).
func (p Pose) TurnRight(degrees float64) Pose {
	h := math.Mod(p.Heading-degrees, 360)
	if h < 0 {
		h += 360
	}
	p.Heading = h
	return p
}

func (p Pose) String() string {
	pen := "up"
	if p.PenDown {
		pen = "down"
	}
	return fmt.Sprintf("(%.2f, %.2f) heading %.2f pen %s color %s", p.X, p.Y, p.Heading, pen, p.Color)
}
