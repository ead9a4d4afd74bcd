package render

import (
	"image"
	"image/color"
)

// Op is the kind of a draw command.
type Op int

const (
	OpFillPolygon Op = iota
	OpStrokePolygon
	OpStrokeLine
	OpFillDisc
	OpText
)

func (o Op) String() string {
	switch o {
	case OpFillPolygon:
		return "fill-polygon"
	case OpStrokePolygon:
		return "stroke-polygon"
	case OpStrokeLine:
		return "stroke-line"
	case OpFillDisc:
		return "fill-disc"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Command is one primitive of a rendered frame, in screen pixels.
// Lines use Points[0] and Points[1]; discs and text use Points[0].
type Command struct {
	Op     Op
	Points []image.Point
	Width  int // stroke width
	Radius int // disc radius
	Text   string
	Color  color.RGBA
}

// Canvas is a 2D surface that can replay draw commands.
type Canvas interface {
	FillPolygon(pts []image.Point, c color.RGBA)
	StrokePolygon(pts []image.Point, width int, c color.RGBA)
	StrokeLine(a, b image.Point, width int, c color.RGBA)
	FillDisc(center image.Point, radius int, c color.RGBA)
	DrawText(at image.Point, text string, c color.RGBA)
}

// Draw replays the frame's commands onto c in order.
func (f *Frame) Draw(c Canvas) {
	for _, cmd := range f.Commands {
		switch cmd.Op {
		case OpFillPolygon:
			c.FillPolygon(cmd.Points, cmd.Color)
		case OpStrokePolygon:
			c.StrokePolygon(cmd.Points, cmd.Width, cmd.Color)
		case OpStrokeLine:
			c.StrokeLine(cmd.Points[0], cmd.Points[1], cmd.Width, cmd.Color)
		case OpFillDisc:
			c.FillDisc(cmd.Points[0], cmd.Radius, cmd.Color)
		case OpText:
			c.DrawText(cmd.Points[0], cmd.Text, cmd.Color)
		}
	}
}

// Count returns how many commands of kind op the frame holds.
func (f *Frame) Count(op Op) int {
	n := 0
	for _, cmd := range f.Commands {
		if cmd.Op == op {
			n++
		}
	}
	return n
}
