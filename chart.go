package engagement

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// Kind

// Kind selects one of the chart types.
type Kind int

const (
	Boxplot Kind = iota
	GroupedBar
	LineChart
	numKinds
)

var kindNames = [numKinds]string{"boxplot", "bar", "line"}

// Kinds lists all chart types.
func Kinds() []Kind {
	return []Kind{Boxplot, GroupedBar, LineChart}
}

// String returns the name of k.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String. It is case insensitive.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown chart kind %q (must be one of %s)",
		s, strings.Join(kindNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= numKinds {
		return nil, fmt.Errorf("invalid chart kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ----------------------------------------------------------------------------
// Chart

// A Chart is the immutable result of a Builder: everything a sink needs to
// paint it.
type Chart struct {
	Kind          Kind
	Title         string
	Width, Height float64
	Primitives    []Primitive
}

// A Builder turns data into a Chart.
type Builder interface {
	Build(l Layout, s Style) (*Chart, error)
}

// NewChart returns an empty chart of the size given by l.
func NewChart(kind Kind, title string, l Layout) *Chart {
	return &Chart{
		Kind:   kind,
		Title:  title,
		Width:  l.Width,
		Height: l.Height,
	}
}

// Add appends primitives to c.
func (c *Chart) Add(p ...Primitive) {
	c.Primitives = append(c.Primitives, p...)
}

// AddDecorations adds the bottom and left axis and the title to c.
func (c *Chart) AddDecorations(l Layout, s Style, xticks, yticks []AxisTick) {
	panel := l.Panel()
	c.Add(
		Axis{
			Orient:   Bottom,
			Offset:   panel.Max.Y,
			Extent:   panel.XRange(),
			Ticks:    xticks,
			Style:    s.Axis,
			FontSize: s.TickFontSize,
		},
		Axis{
			Orient:   Left,
			Offset:   panel.Min.X,
			Extent:   panel.YRange(),
			Ticks:    yticks,
			Style:    s.Axis,
			FontSize: s.TickFontSize,
		},
	)
	if c.Title != "" {
		c.Add(Text{
			At:     Point{X: l.Width / 2, Y: s.TitleBaseline},
			Text:   c.Title,
			Anchor: AnchorMiddle,
			Size:   s.TitleFontSize,
			Color:  s.Text,
		})
	}
}

// Count returns how many primitives of each concrete type c contains,
// keyed by the type name, e.g. "Rect".
func (c *Chart) Count() map[string]int {
	count := make(map[string]int)
	for _, p := range c.Primitives {
		name := fmt.Sprintf("%T", p)
		name = name[strings.LastIndex(name, ".")+1:]
		count[name]++
	}
	return count
}
