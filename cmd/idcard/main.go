package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/airlabcastle-commits/id-card-generator/internal/config"
	"github.com/airlabcastle-commits/id-card-generator/internal/merge"
	"github.com/airlabcastle-commits/id-card-generator/internal/proof"
	"github.com/airlabcastle-commits/id-card-generator/internal/render"
	"github.com/airlabcastle-commits/id-card-generator/internal/roster"
	"github.com/airlabcastle-commits/id-card-generator/internal/template"
	"github.com/airlabcastle-commits/id-card-generator/pkg/logger"
	"github.com/airlabcastle-commits/id-card-generator/pkg/version"
)

func main() {
	configPath := flag.String("config", "project.yaml", "path to the project file")
	csvPath := flag.String("csv", "", "attendee CSV file (overrides the project file)")
	outPath := flag.String("out", "", "output PDF path (overrides the project file)")
	proofDir := flag.String("proof-dir", "", "directory to write per-page PNG proofs (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[idcard] "))
	log.SetVerbose(*verbose)

	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading project file: %v", err)
	}

	if *csvPath != "" {
		cfg.Roster = *csvPath
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}

	card := cfg.CardSpec()
	if card.Width <= 0 || card.Height <= 0 {
		log.Fatal("Card has no area: %.2fcm x %.2fcm", card.Width, card.Height)
	}

	if cfg.Roster == "" {
		log.Fatal("No attendee CSV configured; set roster: in %s or pass -csv", *configPath)
	}

	csvText, err := os.ReadFile(cfg.Roster)
	if err != nil {
		log.Fatal("Error reading attendee CSV: %v", err)
	}

	table := roster.New()
	imported := table.ImportBulk(string(csvText))
	if table.Len() == 0 {
		log.Fatal("No attendees imported from %s; nothing to export", cfg.Roster)
	}
	log.Info("Imported %d attendees from %s", imported, cfg.Roster)

	tmpl := template.New(card)
	tmpl.Restore(cfg.ModelFields())

	card, fields := tmpl.Snapshot()
	if len(fields) == 0 {
		log.Warn("Template has no fields; badges will carry backgrounds only")
	}
	log.Info("Template: %.1fcm x %.1fcm card, %d fields", card.Width, card.Height, len(fields))

	backgrounds := merge.Backgrounds{
		Front: loadBackground(cfg.Backgrounds.Front, "front", log),
		Back:  loadBackground(cfg.Backgrounds.Back, "back", log),
	}

	doc := merge.Merge(card, fields, table.People(), backgrounds)
	log.Info("Merged %d attendees into %d pages (%d per badge)",
		table.Len(), doc.PageCount(), merge.PagesPerPerson(fields, backgrounds))

	renderer := render.New(render.WithLogger(log))
	if err := renderer.RenderFile(doc, cfg.Output); err != nil {
		log.Fatal("Error rendering PDF: %v", err)
	}
	log.Info("Wrote %s", cfg.Output)

	if *proofDir != "" {
		sheet, err := proof.NewSheet(*proofDir, log)
		if err != nil {
			log.Fatal("Error preparing proof directory: %v", err)
		}

		proofs, err := sheet.Generate(context.Background(), cfg.Output, card)
		if err != nil {
			log.Fatal("Error generating proofs: %v", err)
		}

		for _, p := range proofs {
			log.Debug("Proof page %d: %s (%s)", p.PageNum, p.ImagePath, p.Hash[:12])
		}
		log.Info("Wrote %d proof pages to %s", len(proofs), *proofDir)
	}
}

// loadBackground decodes one optional PNG background. Image decoding
// happens only here at the boundary; the core works on decoded payloads.
func loadBackground(path, side string, log *logger.Logger) image.Image {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal("Error opening %s background: %v", side, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		log.Fatal("Error decoding %s background %s: %v", side, path, err)
	}

	log.Debug("Loaded %s background: %s (%dx%d px)",
		side, path, img.Bounds().Dx(), img.Bounds().Dy())
	return img
}
