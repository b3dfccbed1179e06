// Package merge combines one card template with an attendee table into a
// page-descriptor document. The engine is total: missing data keys fall
// back to the field's label, missing backgrounds fall back to a white
// fill, and absent back content skips the back page. It performs no unit
// conversion; field positions pass through in millimeters untouched.
package merge

import (
	"image"

	"github.com/airlabcastle-commits/id-card-generator/pkg/models"
)

// Backgrounds holds the optional decoded background image for each side.
type Backgrounds struct {
	Front image.Image
	Back  image.Image
}

// HasBackContent reports whether the template produces back pages: a back
// background exists or at least one field is bound to the back side. This
// depends only on template state, never on person data, so back-page
// presence is identical for every person in one merge run.
func HasBackContent(fields []models.Field, bg Backgrounds) bool {
	if bg.Back != nil {
		return true
	}
	for _, f := range fields {
		if f.Side == models.SideBack {
			return true
		}
	}
	return false
}

// PagesPerPerson returns 2 when the template has back content, else 1.
func PagesPerPerson(fields []models.Field, bg Backgrounds) int {
	if HasBackContent(fields, bg) {
		return 2
	}
	return 1
}

// Merge produces the page sequence for every person in table order: a
// front page always, a back page only when the template has back content.
// Inputs are treated as immutable snapshots for the duration of the call.
func Merge(card models.CardSpec, fields []models.Field, people []models.Person, bg Backgrounds) models.Document {
	doc := models.Document{Card: card}
	back := HasBackContent(fields, bg)

	for _, person := range people {
		doc.Pages = append(doc.Pages, buildPage(models.SideFront, bg.Front, fields, person))
		if back {
			doc.Pages = append(doc.Pages, buildPage(models.SideBack, bg.Back, fields, person))
		}
	}

	return doc
}

// buildPage emits the runs for one side of one person's card in field
// definition order. Overlapping runs paint in that order, last on top.
func buildPage(side models.Side, background image.Image, fields []models.Field, person models.Person) models.Page {
	page := models.Page{Side: side, Background: background}

	for _, f := range fields {
		if f.Side != side {
			continue
		}
		page.Runs = append(page.Runs, models.TextRun{
			Text:       resolve(f, person),
			XMm:        f.X,
			YMm:        f.Y,
			FontSize:   f.FontSize,
			Color:      f.Color,
			FontFamily: f.FontFamily,
			Align:      f.Align,
		})
	}

	return page
}

// resolve looks the field's name up in the person's attributes. A missing
// or empty value renders the field's own label verbatim rather than a
// blank; an unresolved binding is a fallback, not an error.
func resolve(f models.Field, person models.Person) string {
	if v, ok := person.Value(f.Name); ok {
		return v
	}
	return f.Name
}
