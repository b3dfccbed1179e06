// Package render turns a merged document into the final paginated PDF.
// Pages are sized widthMm x heightMm with orientation derived from the
// card geometry; backgrounds go full-bleed at (0,0) and text runs land at
// literal millimeter coordinates with point font sizes.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/airlabcastle-commits/id-card-generator/pkg/logger"
	"github.com/airlabcastle-commits/id-card-generator/pkg/models"
)

// DefaultOutputName is the conventional name of the exported document.
const DefaultOutputName = "badges.pdf"

type Renderer struct {
	created time.Time
	log     *logger.Logger
}

type Option func(*Renderer)

// WithCreationDate pins the PDF creation timestamp. The default is a
// fixed instant so identical inputs produce byte-identical output.
func WithCreationDate(t time.Time) Option {
	return func(r *Renderer) {
		r.created = t
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

func New(options ...Option) *Renderer {
	r := &Renderer{
		created: time.Unix(0, 0).UTC(),
		log:     logger.New(),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Render produces the PDF bytes for a merged document. The only rejected
// input is a card without positive dimensions; everything else renders.
func (r *Renderer) Render(doc models.Document) ([]byte, error) {
	if doc.Card.Width <= 0 || doc.Card.Height <= 0 {
		return nil, fmt.Errorf("cannot render zero-area card: %.2fcm x %.2fcm",
			doc.Card.Width, doc.Card.Height)
	}

	widthMm := doc.Card.WidthMm()
	heightMm := doc.Card.HeightMm()
	orientation := doc.Card.Orientation()

	// gofpdf expects the size in portrait terms and swaps it itself for
	// landscape, so hand it the flipped dimensions in that case.
	size := gofpdf.SizeType{Wd: widthMm, Ht: heightMm}
	if orientation == "L" {
		size = gofpdf.SizeType{Wd: heightMm, Ht: widthMm}
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size:           size,
	})
	pdf.SetCreationDate(r.created)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	registered := make(map[string]bool)

	for _, page := range doc.Pages {
		pdf.AddPage()

		if page.Background != nil {
			name := "background-" + string(page.Side)
			if !registered[name] {
				if err := registerImage(pdf, name, page.Background); err != nil {
					return nil, err
				}
				registered[name] = true
			}
			pdf.ImageOptions(name, 0, 0, widthMm, heightMm, false,
				gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		} else {
			// A blank side is an explicit white fill, never an undrawn page.
			pdf.SetFillColor(255, 255, 255)
			pdf.Rect(0, 0, widthMm, heightMm, "F")
		}

		for _, run := range page.Runs {
			drawRun(pdf, run)
		}
	}

	r.log.Debug("rendered %d pages at %.1fmm x %.1fmm (%s)",
		len(doc.Pages), widthMm, heightMm, orientation)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders the document and writes it to path.
func (r *Renderer) RenderFile(doc models.Document, path string) error {
	b, err := r.Render(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func registerImage(pdf *gofpdf.Fpdf, name string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode background %s: %w", name, err)
	}
	pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if pdf.Err() {
		return fmt.Errorf("failed to register background %s: %w", name, pdf.Error())
	}
	return nil
}

func drawRun(pdf *gofpdf.Fpdf, run models.TextRun) {
	red, green, blue := parseHexColor(run.Color)
	pdf.SetTextColor(red, green, blue)
	pdf.SetFont(coreFont(run.FontFamily), "", float64(run.FontSize))

	x := run.XMm
	switch run.Align {
	case models.AlignCenter:
		x -= pdf.GetStringWidth(run.Text) / 2
	case models.AlignRight:
		x -= pdf.GetStringWidth(run.Text)
	}

	pdf.Text(x, run.YMm, run.Text)
}

// coreFont maps a requested family onto the PDF core fonts. Unknown
// families fall back to Helvetica rather than failing the render.
func coreFont(family string) string {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "courier", "courier new":
		return "Courier"
	case "times", "times new roman", "serif":
		return "Times"
	default:
		return "Helvetica"
	}
}

// parseHexColor decodes "#RRGGBB" (hash optional). Malformed values
// decode to black; a bad color never fails a render.
func parseHexColor(s string) (red, green, blue int) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
