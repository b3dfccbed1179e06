// Package proof rasterizes an exported badge PDF back into per-page PNG
// images at the card's display resolution. Proof sheets give a quick
// visual check of the merge output and a pixel hash per page for
// comparing two runs without diffing PDF internals.
package proof

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/airlabcastle-commits/id-card-generator/pkg/logger"
	"github.com/airlabcastle-commits/id-card-generator/pkg/models"
	"github.com/airlabcastle-commits/id-card-generator/pkg/units"
)

// PageProof is one rasterized page of the exported document.
type PageProof struct {
	PageNum   int
	ImagePath string
	Hash      string
}

type Sheet struct {
	outputDir string
	log       *logger.Logger
}

func NewSheet(outputDir string, log *logger.Logger) (*Sheet, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create proof directory: %w", err)
	}
	return &Sheet{
		outputDir: outputDir,
		log:       log,
	}, nil
}

// Generate renders every page of the PDF at card.Resolution dpi and
// writes one PNG per page into the sheet's output directory.
func (s *Sheet) Generate(ctx context.Context, pdfPath string, card models.CardSpec) ([]PageProof, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	dpi := float64(card.Resolution)
	s.log.Debug("proofing %s: %d pages at %d dpi (expect about %.0fx%.0f px)",
		filepath.Base(pdfPath), doc.NumPage(), card.Resolution,
		units.MmToPixels(card.WidthMm(), dpi),
		units.MmToPixels(card.HeightMm(), dpi))

	var proofs []PageProof

	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(pageNum, dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize page %d: %w", pageNum, err)
		}

		imagePath := filepath.Join(s.outputDir, fmt.Sprintf("proof_page_%03d.png", pageNum+1))
		if err := saveImage(img, imagePath); err != nil {
			return nil, fmt.Errorf("failed to save proof for page %d: %w", pageNum, err)
		}

		proofs = append(proofs, PageProof{
			PageNum:   pageNum + 1,
			ImagePath: imagePath,
			Hash:      pixelHash(img),
		})

		s.log.Trace("proofed page %d -> %s", pageNum+1, imagePath)
	}

	return proofs, nil
}

// pixelHash digests the raw pixel data of one page. Two pages with equal
// hashes rendered from the same card geometry are visually identical.
func pixelHash(img *image.RGBA) string {
	hasher := sha256.New()
	hasher.Write(img.Pix)
	return hex.EncodeToString(hasher.Sum(nil))
}

func saveImage(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
