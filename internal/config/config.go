// internal/config/config.go
package config

import (
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/airlabcastle-commits/id-card-generator/pkg/models"
)

type FieldConfig struct {
	Name  string  `yaml:"name"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Side  string  `yaml:"side"`
	Size  int     `yaml:"size"`
	Color string  `yaml:"color"`
	Font  string  `yaml:"font"`
	Align string  `yaml:"align"`
}

type Config struct {
	Card struct {
		Width      float64 `yaml:"width"`
		Height     float64 `yaml:"height"`
		Resolution int     `yaml:"resolution"`
	} `yaml:"card"`
	Output      string `yaml:"output"`
	Roster      string `yaml:"roster"`
	Backgrounds struct {
		Front string `yaml:"front"`
		Back  string `yaml:"back"`
	} `yaml:"backgrounds"`
	Fields []FieldConfig `yaml:"fields"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Card.Width == 0 {
		cfg.Card.Width = models.DefaultCardWidthCm
	}
	if cfg.Card.Height == 0 {
		cfg.Card.Height = models.DefaultCardHeightCm
	}
	if cfg.Card.Resolution == 0 {
		cfg.Card.Resolution = models.DefaultResolution
	}
	if cfg.Output == "" {
		cfg.Output = "badges.pdf"
	}

	return &cfg, nil
}

func (c *Config) CardSpec() models.CardSpec {
	return models.CardSpec{
		Width:      c.Card.Width,
		Height:     c.Card.Height,
		Resolution: c.Card.Resolution,
	}
}

// ModelFields converts the configured field list into model fields with
// generated ids. Missing style attributes get the editor defaults;
// unrecognized side or alignment values fall back to front and left
// rather than failing the load.
func (c *Config) ModelFields() []models.Field {
	fields := make([]models.Field, 0, len(c.Fields))
	for _, fc := range c.Fields {
		f := models.Field{
			ID:         uuid.NewString(),
			Name:       fc.Name,
			X:          fc.X,
			Y:          fc.Y,
			FontSize:   fc.Size,
			Color:      fc.Color,
			FontFamily: fc.Font,
			Align:      models.Alignment(fc.Align),
			Side:       models.Side(fc.Side),
		}
		if f.FontSize <= 0 {
			f.FontSize = 16
		}
		if f.Color == "" {
			f.Color = "#000000"
		}
		if f.FontFamily == "" {
			f.FontFamily = "Helvetica"
		}
		if !f.Align.Valid() {
			f.Align = models.AlignLeft
		}
		if !f.Side.Valid() {
			f.Side = models.SideFront
		}
		fields = append(fields, f)
	}
	return fields
}
