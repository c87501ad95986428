package features

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Table overrides let deployments extend or replace the brand and keyword
// tables without rebuilding, e.g. to add regional brands. Overrides are read
// once, before the first extraction; the tables stay immutable afterwards.
// A replaced table changes feature values, so the downstream classifier must
// be retrained against the same override file.

const overrideFileName = "vigilant_tables.yaml"

// TableOverrides mirrors the structure of vigilant_tables.yaml.
type TableOverrides struct {
	// Brands replaces the brand table entirely when non-empty.
	Brands []string `yaml:"brands"`
	// ExtraBrands appends to whichever brand table is active.
	ExtraBrands []string `yaml:"extra_brands"`

	LoginKeywords   []string `yaml:"login_keywords"`
	TrustKeywords   []string `yaml:"trust_keywords"`
	PaymentKeywords []string `yaml:"payment_keywords"`
	LureKeywords    []string `yaml:"lure_keywords"`
	FraudKeywords   []string `yaml:"fraud_keywords"`
}

// FindConfigDir locates the directory holding vigilant_tables.yaml.
// Search order: $VIGILANT_CONFIG_DIR, ./config, ~/.vigilant.
// Returns "" when no candidate contains the file.
func FindConfigDir() string {
	candidates := []string{}
	if dir := os.Getenv("VIGILANT_CONFIG_DIR"); dir != "" {
		candidates = append(candidates, dir)
	}
	candidates = append(candidates, "config")
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".vigilant"))
	}

	for _, dir := range candidates {
		if _, err := os.Stat(filepath.Join(dir, overrideFileName)); err == nil {
			return dir
		}
	}
	return ""
}

// loadTableOverrides reads the override file if one exists. Any failure
// falls back silently to the built-in tables; a malformed file is logged but
// never fatal, since the built-ins are always a valid configuration.
func loadTableOverrides() *TableOverrides {
	dir := FindConfigDir()
	if dir == "" {
		return nil
	}

	path := filepath.Join(dir, overrideFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[WARN] could not read %s: %v, using built-in tables", path, err)
		return nil
	}

	var o TableOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		log.Printf("[WARN] could not parse %s: %v, using built-in tables", path, err)
		return nil
	}

	log.Printf("[STARTUP] Loaded table overrides from %s", path)
	return &o
}
