package template_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/airlabcastle-commits/id-card-generator/internal/template"
	"github.com/airlabcastle-commits/id-card-generator/pkg/models"
)

var _ = Describe("Template", func() {
	var tmpl *template.Template

	BeforeEach(func() {
		tmpl = template.New(models.DefaultCardSpec())
	})

	Context("AddField", func() {
		It("centers the new field on the card", func() {
			f := tmpl.AddField(models.SideFront)

			Expect(f.X).To(Equal(70.0))
			Expect(f.Y).To(Equal(47.5))
			Expect(f.Side).To(Equal(models.SideFront))
		})

		It("applies the default style", func() {
			f := tmpl.AddField(models.SideFront)

			Expect(f.FontSize).To(Equal(template.DefaultFontSize))
			Expect(f.Color).To(Equal(template.DefaultColor))
			Expect(f.FontFamily).To(Equal(template.DefaultFontFamily))
			Expect(f.Align).To(Equal(models.AlignLeft))
		})

		It("generates distinct ids", func() {
			a := tmpl.AddField(models.SideFront)
			b := tmpl.AddField(models.SideBack)

			Expect(a.ID).NotTo(BeEmpty())
			Expect(a.ID).NotTo(Equal(b.ID))
		})

		It("selects the new field", func() {
			f := tmpl.AddField(models.SideFront)

			sel, ok := tmpl.Selected()
			Expect(ok).To(BeTrue())
			Expect(sel.ID).To(Equal(f.ID))
		})
	})

	Context("UpdateField", func() {
		It("applies partial changes and leaves the rest alone", func() {
			f := tmpl.AddField(models.SideFront)

			name := "Role"
			x := 25.0
			tmpl.UpdateField(f.ID, template.FieldPatch{Name: &name, X: &x})

			got := tmpl.Fields()[0]
			Expect(got.Name).To(Equal("Role"))
			Expect(got.X).To(Equal(25.0))
			Expect(got.Y).To(Equal(f.Y))
			Expect(got.FontSize).To(Equal(f.FontSize))
		})

		It("is a no-op for an absent id", func() {
			f := tmpl.AddField(models.SideFront)

			name := "Role"
			tmpl.UpdateField("no-such-id", template.FieldPatch{Name: &name})

			Expect(tmpl.Fields()[0].Name).To(Equal(f.Name))
		})
	})

	Context("RemoveField", func() {
		It("preserves definition order of the remaining fields", func() {
			a := tmpl.AddField(models.SideFront)
			b := tmpl.AddField(models.SideFront)
			c := tmpl.AddField(models.SideFront)

			tmpl.RemoveField(b.ID)

			fields := tmpl.Fields()
			Expect(fields).To(HaveLen(2))
			Expect(fields[0].ID).To(Equal(a.ID))
			Expect(fields[1].ID).To(Equal(c.ID))
		})

		It("clears the selection when the selected field is removed", func() {
			f := tmpl.AddField(models.SideFront)
			tmpl.Select(f.ID)

			tmpl.RemoveField(f.ID)

			_, ok := tmpl.Selected()
			Expect(ok).To(BeFalse())
		})

		It("keeps the selection when another field is removed", func() {
			a := tmpl.AddField(models.SideFront)
			b := tmpl.AddField(models.SideFront)
			tmpl.Select(a.ID)

			tmpl.RemoveField(b.ID)

			sel, ok := tmpl.Selected()
			Expect(ok).To(BeTrue())
			Expect(sel.ID).To(Equal(a.ID))
		})

		It("is a no-op for an absent id", func() {
			tmpl.AddField(models.SideFront)
			tmpl.RemoveField("no-such-id")
			Expect(tmpl.Fields()).To(HaveLen(1))
		})
	})

	Context("MoveFieldBy", func() {
		It("maps display pixels to millimeters and rounds to whole mm", func() {
			f := tmpl.AddField(models.SideFront)

			// Card displayed at 280px for a 140mm card: 2 px per mm.
			tmpl.MoveFieldBy(f.ID, 21, -10, 280)

			got := tmpl.Fields()[0]
			Expect(got.X).To(Equal(81.0))  // 70 + 10.5 rounded
			Expect(got.Y).To(Equal(43.0))  // 47.5 - 5 rounded
		})

		It("is independent of the display scale for whole-mm deltas", func() {
			a := tmpl.AddField(models.SideFront)
			tmpl.MoveFieldBy(a.ID, 10, 0, 140) // 1 px per mm

			other := template.New(models.DefaultCardSpec())
			b := other.AddField(models.SideFront)
			other.MoveFieldBy(b.ID, 40, 0, 560) // 4 px per mm

			Expect(tmpl.Fields()[0].X).To(Equal(other.Fields()[0].X))
		})

		It("ignores a non-positive display width", func() {
			f := tmpl.AddField(models.SideFront)
			tmpl.MoveFieldBy(f.ID, 10, 10, 0)
			Expect(tmpl.Fields()[0].X).To(Equal(f.X))
		})
	})

	Context("side partition", func() {
		It("splits fields into disjoint front and back sets", func() {
			tmpl.AddField(models.SideFront)
			tmpl.AddField(models.SideBack)
			tmpl.AddField(models.SideFront)

			front := tmpl.FieldsOn(models.SideFront)
			back := tmpl.FieldsOn(models.SideBack)

			Expect(len(front) + len(back)).To(Equal(len(tmpl.Fields())))
			for _, f := range front {
				Expect(f.Side).To(Equal(models.SideFront))
			}
			for _, f := range back {
				Expect(f.Side).To(Equal(models.SideBack))
			}
		})
	})

	Context("Restore", func() {
		It("replaces the field list and clears the selection", func() {
			old := tmpl.AddField(models.SideFront)
			tmpl.Select(old.ID)

			tmpl.Restore([]models.Field{
				{ID: "r1", Name: "Name", Side: models.SideFront},
				{ID: "r2", Name: "Company", Side: models.SideBack},
			})

			fields := tmpl.Fields()
			Expect(fields).To(HaveLen(2))
			Expect(fields[0].ID).To(Equal("r1"))

			_, ok := tmpl.Selected()
			Expect(ok).To(BeFalse())
		})
	})

	Context("Snapshot", func() {
		It("is not affected by later template edits", func() {
			f := tmpl.AddField(models.SideFront)
			card, fields := tmpl.Snapshot()

			name := "Changed"
			tmpl.UpdateField(f.ID, template.FieldPatch{Name: &name})
			tmpl.SetCard(models.CardSpec{Width: 8, Height: 5, Resolution: 300})

			Expect(fields[0].Name).To(Equal("Field"))
			Expect(card.Width).To(Equal(14.0))
		})
	})
})
