package engagement

import (
	"fmt"
	"image/color"
)

// Point is a pixel position. The origin is the top left corner of the
// chart and y grows downwards.
type Point struct {
	X, Y float64
}

func (p Point) String() string { return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y) }

// LineStyle describes how lines and outlines are stroked.
// A nil Color or a zero Width draws nothing.
type LineStyle struct {
	Color color.Color
	Width float64
}

// A Primitive is a fully resolved shape handed to a rendering sink.
// It is one of Line, Rect, Path, Axis or Text.
type Primitive interface {
	primitive()
}

// Line is a straight line segment.
type Line struct {
	From, To Point
	Style    LineStyle
}

// Rect is an axis aligned rectangle with its top left corner at Min.
type Rect struct {
	Min           Point
	Width, Height float64
	Fill          color.Color
	Border        LineStyle
}

// PathOp is the kind of a path segment.
type PathOp int

const (
	MoveTo PathOp = iota
	LineTo
	CubeTo // Cubic Bézier curve with two control points.
)

// PathSegment is one segment of a Path. MoveTo and LineTo use Pts[0],
// CubeTo uses Pts[0] and Pts[1] as control points and Pts[2] as end point.
type PathSegment struct {
	Op  PathOp
	Pts [3]Point
}

// End returns the point the segment ends in.
func (s PathSegment) End() Point {
	if s.Op == CubeTo {
		return s.Pts[2]
	}
	return s.Pts[0]
}

// Path is an open path. Fill may be nil.
type Path struct {
	Segments []PathSegment
	Fill     color.Color
	Style    LineStyle
}

// Orientation of an Axis.
type Orientation int

const (
	Bottom Orientation = iota // Horizontal axis, labels below.
	Left                      // Vertical axis, labels left of it.
)

// AxisTick is a tick at pixel position Pos along its axis.
type AxisTick struct {
	Pos   float64
	Label string
}

// Axis is a horizontal or vertical axis. A Bottom axis is drawn at
// y=Offset spanning Extent in x, a Left axis at x=Offset spanning Extent
// in y. Layout of the tick labels is left to the sink.
type Axis struct {
	Orient   Orientation
	Offset   float64
	Extent   Interval
	Ticks    []AxisTick
	Style    LineStyle
	FontSize float64
}

// Anchor is the horizontal alignment of a Text.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Text is a label whose baseline passes through At.
type Text struct {
	At     Point
	Text   string
	Anchor Anchor
	Size   float64
	Color  color.Color
}

func (Line) primitive() {}
func (Rect) primitive() {}
func (Path) primitive() {}
func (Axis) primitive() {}
func (Text) primitive() {}
