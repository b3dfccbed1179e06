package models

import "image"

// TextRun is one placed piece of text on a page. Coordinates are the
// field's millimeter position passed through unchanged by the merge; the
// renderer owns the mm-to-device mapping.
type TextRun struct {
	Text       string
	XMm        float64
	YMm        float64
	FontSize   int // pt
	Color      string
	FontFamily string
	Align      Alignment
}

// Page is one side of one person's card. A nil Background means the
// renderer must paint a solid white fill covering the full page; a page
// background is never left undrawn.
type Page struct {
	Side       Side
	Background image.Image
	Runs       []TextRun
}

// Document is the merge output: the card geometry plus an ordered page
// sequence, one or two pages per person.
type Document struct {
	Card  CardSpec
	Pages []Page
}

// PageCount returns the number of pages in the document.
func (d Document) PageCount() int {
	return len(d.Pages)
}
