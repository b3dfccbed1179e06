package models

// Field is a named, positioned, styled text anchor bound to one side of
// the card. Name doubles as the data key looked up in each person record
// and as the fallback display text when the key is absent. Names are not
// required to be unique; duplicates simply paint in definition order.
// X and Y are card-local millimeters and may lie outside the card bounds
// (off-card placement clips at render time).
type Field struct {
	ID         string
	Name       string
	X          float64 // mm
	Y          float64 // mm
	FontSize   int     // pt
	Color      string  // "#RRGGBB"
	FontFamily string
	Align      Alignment
	Side       Side
}

// Person is one attendee record: a unique id plus arbitrary string-keyed
// attributes. No attribute schema exists beyond the union of field names.
type Person struct {
	ID    string
	Attrs map[string]string
}

// Value returns the attribute for key and whether it is present and
// non-empty.
func (p Person) Value(key string) (string, bool) {
	v, ok := p.Attrs[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
