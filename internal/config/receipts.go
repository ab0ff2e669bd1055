package config

import (
	"fmt"
	"os"

	"busexcursion/internal/receipts"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadReceiptGeometry reads the page geometry YAML at path. Keys missing from
// the file keep their default value. An empty path returns the defaults.
func LoadReceiptGeometry(path string) (receipts.Geometry, error) {
	g := receipts.DefaultGeometry()
	if path == "" {
		return g, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return g, fmt.Errorf("read receipt config: %w", err)
	}
	return ParseReceiptGeometry(data)
}

// ParseReceiptGeometry decodes YAML over the defaults, then validates it.
func ParseReceiptGeometry(data []byte) (receipts.Geometry, error) {
	g := receipts.DefaultGeometry()
	if err := yaml.Unmarshal(data, &g); err != nil {
		return g, fmt.Errorf("parse receipt config: %w", err)
	}
	if err := validator.New().Struct(g); err != nil {
		return g, fmt.Errorf("invalid receipt config: %w", err)
	}
	if err := g.Check(); err != nil {
		return g, fmt.Errorf("invalid receipt config: %w", err)
	}
	return g, nil
}
