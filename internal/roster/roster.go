// Package roster holds the ordered attendee table that card fields
// resolve against at merge time. Records carry arbitrary string-keyed
// attributes; no schema exists beyond the field names that look them up.
package roster

import (
	"strings"

	"github.com/google/uuid"

	"github.com/airlabcastle-commits/id-card-generator/pkg/models"
)

type Roster struct {
	people []models.Person
}

func New() *Roster {
	return &Roster{}
}

func (r *Roster) Len() int {
	return len(r.people)
}

// People returns a copy of the table in insertion order. The copy is the
// merge engine's immutable snapshot for one run.
func (r *Roster) People() []models.Person {
	out := make([]models.Person, len(r.people))
	copy(out, r.people)
	return out
}

// ReplaceAll swaps the whole table for the given records.
func (r *Roster) ReplaceAll(people []models.Person) {
	r.people = make([]models.Person, len(people))
	copy(r.people, people)
}

// Append adds one record to the end of the table.
func (r *Roster) Append(p models.Person) {
	r.people = append(r.people, p)
}

// Remove deletes the record with the given id, preserving order. An
// absent id is a no-op.
func (r *Roster) Remove(id string) {
	for i := range r.people {
		if r.people[i].ID == id {
			r.people = append(r.people[:i], r.people[i+1:]...)
			return
		}
	}
}

// Clear empties the table.
func (r *Roster) Clear() {
	r.people = nil
}

// ImportBulk parses delimited text and replaces the whole table with the
// result, returning the number of records imported.
//
// The first line is a header row: comma-split, trimmed cells become
// attribute keys. Each subsequent line is zipped positionally against the
// headers; values are trimmed and empty values are skipped, so short rows
// simply lack their trailing attributes. Each record gets a fresh unique
// id. Embedded commas inside values are not supported; there is no
// quoting or escaping in this format.
//
// Input with fewer than two lines is a no-op: the existing table is left
// untouched and 0 is returned. No partial import ever happens.
func (r *Roster) ImportBulk(text string) int {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return 0
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var imported []models.Person
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")
		p := models.Person{
			ID:    uuid.NewString(),
			Attrs: make(map[string]string),
		}
		for i, v := range values {
			if i >= len(headers) {
				break
			}
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			p.Attrs[headers[i]] = v
		}
		imported = append(imported, p)
	}

	if len(imported) == 0 {
		return 0
	}

	r.people = imported
	return len(imported)
}
