package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"javasmells/src/config"
	"javasmells/src/service/report"
	"javasmells/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg       *config.Config
	generator *report.Generator

	mu sync.Mutex
	// stems maps each report file stem to the source that claimed it
	stems map[string]string
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) (*ReportController, error) {
	generator, err := report.NewGenerator(cfg.Output, cfg.Agent.Version)
	if err != nil {
		return nil, err
	}
	return &ReportController{cfg: cfg, generator: generator, stems: make(map[string]string)}, nil
}

// GenerateReports writes doc in all configured formats and returns the paths written
func (c *ReportController) GenerateReports(doc *report.Document) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		util.Debug("Generating %s report", format)
		output, err := c.generator.Generate(*doc, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(doc.Source, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(doc *report.Document, format string) (string, error) {
	return c.generator.Generate(*doc, format)
}

func (c *ReportController) getOutputPath(source, format string) string {
	filename := c.reportStem(source) + "-smell-report." + report.Extension(format)
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}

// reportStem names a source's reports after its base name. Sources that share
// a base name get a numeric suffix so their reports never overwrite each other.
func (c *ReportController) reportStem(source string) string {
	key := "-"
	base := "stdin"
	if source != "" && source != "-" {
		key = filepath.Clean(source)
		base = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stem := base
	for n := 2; ; n++ {
		owner, taken := c.stems[stem]
		if !taken {
			c.stems[stem] = key
			return stem
		}
		if owner == key {
			return stem
		}
		stem = fmt.Sprintf("%s-%d", base, n)
	}
}
