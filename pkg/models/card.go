package models

const (
	DefaultCardWidthCm  = 14.0
	DefaultCardHeightCm = 9.5
	DefaultResolution   = 96
)

// CardSpec describes the physical card being designed: dimensions in
// centimeters and the screen resolution used for display scaling only.
// The exported document's coordinate space is always millimeters and is
// never affected by Resolution.
type CardSpec struct {
	Width      float64 // cm
	Height     float64 // cm
	Resolution int     // dpi
}

func DefaultCardSpec() CardSpec {
	return CardSpec{
		Width:      DefaultCardWidthCm,
		Height:     DefaultCardHeightCm,
		Resolution: DefaultResolution,
	}
}

func (c CardSpec) WidthMm() float64 {
	return c.Width * 10
}

func (c CardSpec) HeightMm() float64 {
	return c.Height * 10
}

func (c CardSpec) AspectRatio() float64 {
	return c.Width / c.Height
}

// Orientation derives the page orientation: landscape when the card is
// wider than tall, portrait otherwise. Not configurable.
func (c CardSpec) Orientation() string {
	if c.Width > c.Height {
		return "L"
	}
	return "P"
}

// Valid reports whether the card has a positive area and resolution.
func (c CardSpec) Valid() bool {
	return c.Width > 0 && c.Height > 0 && c.Resolution > 0
}

type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

func (s Side) Valid() bool {
	return s == SideFront || s == SideBack
}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

func (a Alignment) Valid() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}
