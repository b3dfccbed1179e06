// Package template owns the design-time state of one card template: the
// card geometry, the ordered field list, and the editor's selection.
// Mutation happens only through the methods here; merge consumers read
// value snapshots, never live state.
package template

import (
	"math"

	"github.com/google/uuid"

	"github.com/airlabcastle-commits/id-card-generator/pkg/models"
)

const (
	DefaultFontSize   = 16
	DefaultColor      = "#000000"
	DefaultFontFamily = "Helvetica"
)

// FieldPatch is a partial field update. Nil members leave the current
// value untouched.
type FieldPatch struct {
	Name       *string
	X          *float64
	Y          *float64
	FontSize   *int
	Color      *string
	FontFamily *string
	Align      *models.Alignment
	Side       *models.Side
}

type Template struct {
	card     models.CardSpec
	fields   []models.Field
	selected string // field id, "" when nothing is selected
}

func New(card models.CardSpec) *Template {
	return &Template{card: card}
}

func (t *Template) Card() models.CardSpec {
	return t.card
}

// SetCard replaces the card geometry. Field positions are not reflowed;
// fields that end up off-card simply clip at render time.
func (t *Template) SetCard(card models.CardSpec) {
	t.card = card
}

// AddField creates a field on the given side with default styling,
// centered on the card (the cm-to-mm-scaled center: width*5, height*5),
// appends it and selects it.
func (t *Template) AddField(side models.Side) models.Field {
	f := models.Field{
		ID:         uuid.NewString(),
		Name:       "Field",
		X:          t.card.Width * 5,
		Y:          t.card.Height * 5,
		FontSize:   DefaultFontSize,
		Color:      DefaultColor,
		FontFamily: DefaultFontFamily,
		Align:      models.AlignLeft,
		Side:       side,
	}
	t.fields = append(t.fields, f)
	t.selected = f.ID
	return f
}

// Restore replaces the whole field list with an already-built set, such
// as one loaded from a project file. The selection is cleared since its
// referent may no longer exist.
func (t *Template) Restore(fields []models.Field) {
	t.fields = make([]models.Field, len(fields))
	copy(t.fields, fields)
	t.selected = ""
}

// UpdateField applies a partial update to the field with the given id.
// An absent id is a no-op.
func (t *Template) UpdateField(id string, patch FieldPatch) {
	i := t.index(id)
	if i < 0 {
		return
	}
	f := &t.fields[i]
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.X != nil {
		f.X = *patch.X
	}
	if patch.Y != nil {
		f.Y = *patch.Y
	}
	if patch.FontSize != nil {
		f.FontSize = *patch.FontSize
	}
	if patch.Color != nil {
		f.Color = *patch.Color
	}
	if patch.FontFamily != nil {
		f.FontFamily = *patch.FontFamily
	}
	if patch.Align != nil {
		f.Align = *patch.Align
	}
	if patch.Side != nil {
		f.Side = *patch.Side
	}
}

// RemoveField deletes the field with the given id, preserving the order
// of the rest. An absent id is a no-op. Removing the selected field
// clears the selection so no dangling reference survives the delete.
func (t *Template) RemoveField(id string) {
	i := t.index(id)
	if i < 0 {
		return
	}
	t.fields = append(t.fields[:i], t.fields[i+1:]...)
	if t.selected == id {
		t.selected = ""
	}
}

// MoveFieldBy maps an on-screen drag delta in display pixels back into
// millimeters and applies it to the field's position. displayedWidthPx
// is the current rendered width of the card on screen, which fixes the
// visual scale. Positions round to the nearest whole millimeter;
// sub-millimeter placement is not meaningful at print resolution.
func (t *Template) MoveFieldBy(id string, dxPx, dyPx, displayedWidthPx float64) {
	i := t.index(id)
	if i < 0 || displayedWidthPx <= 0 {
		return
	}
	pixelsPerMm := displayedWidthPx / t.card.WidthMm()
	f := &t.fields[i]
	f.X = math.Round(f.X + dxPx/pixelsPerMm)
	f.Y = math.Round(f.Y + dyPx/pixelsPerMm)
}

// Select marks the field with the given id as active for editing. An
// absent id clears the selection.
func (t *Template) Select(id string) {
	if t.index(id) < 0 {
		t.selected = ""
		return
	}
	t.selected = id
}

func (t *Template) Selected() (models.Field, bool) {
	i := t.index(t.selected)
	if i < 0 {
		return models.Field{}, false
	}
	return t.fields[i], true
}

// Fields returns a copy of the field list in definition order.
func (t *Template) Fields() []models.Field {
	out := make([]models.Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// FieldsOn returns the fields bound to one side, in definition order.
func (t *Template) FieldsOn(side models.Side) []models.Field {
	var out []models.Field
	for _, f := range t.fields {
		if f.Side == side {
			out = append(out, f)
		}
	}
	return out
}

// Snapshot returns value copies of the card spec and field list for one
// merge run. Later edits to the template cannot be observed through the
// returned values.
func (t *Template) Snapshot() (models.CardSpec, []models.Field) {
	return t.card, t.Fields()
}

func (t *Template) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range t.fields {
		if t.fields[i].ID == id {
			return i
		}
	}
	return -1
}
