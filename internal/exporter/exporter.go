package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
)

// GeneratorVersion tags every exported result document.
const GeneratorVersion = "comprehensive-500-plus"

const filenameTimeLayout = "20060102_150405"

// Exporter writes result documents into the results directory.
type Exporter struct {
	resultsDir string
	logger     *logrus.Logger
}

func New(resultsDir string, logger *logrus.Logger) *Exporter {
	if logger == nil {
		logger = logrus.New()
	}
	return &Exporter{
		resultsDir: resultsDir,
		logger:     logger,
	}
}

// Export writes the document as indented JSON under a timestamped
// filename and returns the written path.
func (e *Exporter) Export(doc models.ResultDocument) (string, error) {
	if err := os.MkdirAll(e.resultsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	filename := fmt.Sprintf("santo_domingo_restaurants_%s.json", doc.GeneratedAt.Format(filenameTimeLayout))
	path := filepath.Join(e.resultsDir, filename)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result document: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"path":        path,
		"restaurants": doc.TotalResults,
	}).Info("Exported result document")

	return path, nil
}

// ExportHulls writes the neighborhood coverage hulls as GeoJSON next to
// the result documents.
func (e *Exporter) ExportHulls(fc *geojson.FeatureCollection, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(e.resultsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	filename := fmt.Sprintf("santo_domingo_hulls_%s.geojson", generatedAt.Format(filenameTimeLayout))
	path := filepath.Join(e.resultsDir, filename)

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal hull collection: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write hull collection: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"path":  path,
		"hulls": len(fc.Features),
	}).Info("Exported neighborhood hulls")

	return path, nil
}
