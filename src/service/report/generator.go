package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"javasmells/src/config"
	"javasmells/src/model"
	"javasmells/src/service/render"
	"javasmells/src/util"
)

// Document is a report together with where it came from
type Document struct {
	Source      string                `json:"source,omitempty"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Report      *model.AnalysisReport `json:"report"`
}

// Generator generates reports in various formats
type Generator struct {
	cfg      config.OutputConfig
	version  string
	renderer *render.Renderer
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig, version string) (*Generator, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, version: version, renderer: renderer}, nil
}

// Generate generates a report in the specified format
func (g *Generator) Generate(doc Document, format string) (string, error) {
	if doc.Report == nil {
		return "", fmt.Errorf("no report to generate")
	}
	util.Debug("Generating report in %s format (%d smells)", format, len(doc.Report.Smells))
	switch format {
	case "json":
		return g.generateJSON(doc)
	case "markdown", "md":
		return g.generateMarkdown(doc)
	case "sarif":
		return g.generateSARIF(doc)
	case "html":
		return g.generateHTML(doc)
	case "text":
		return g.generateText(doc), nil
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// Extension returns the file extension for format
func Extension(format string) string {
	switch format {
	case "markdown":
		return "md"
	case "text":
		return "txt"
	default:
		return format
	}
}

func (g *Generator) generateJSON(doc Document) (string, error) {
	data, err := json.MarshalIndent(doc.Report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(doc Document) (string, error) {
	var sb strings.Builder
	r := doc.Report

	sb.WriteString("# Code Smell Analysis Report\n\n")
	if doc.Source != "" {
		sb.WriteString(fmt.Sprintf("**Source:** %s\n", doc.Source))
	}
	if !doc.GeneratedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("**Generated:** %s\n", doc.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))
	}
	sb.WriteString("\n")

	if r.Error != "" {
		sb.WriteString(fmt.Sprintf("> **Error:** %s\n", r.Error))
		return sb.String(), nil
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total Lines:** %d\n", r.Summary.TotalLines))
	sb.WriteString(fmt.Sprintf("- **Detected Smells:** %d\n\n", r.Summary.TotalSmells))

	sb.WriteString("## Detailed Smell List\n\n")
	if r.Clean() {
		sb.WriteString("No classic code smells detected.\n")
		return sb.String(), nil
	}

	for i, smell := range r.Smells {
		sb.WriteString(fmt.Sprintf("### %d. %s %s\n\n", i+1, severityLabel(smell.Severity), smell.Type))
		sb.WriteString(fmt.Sprintf("- **Location:** `%s`\n", smell.Location))
		sb.WriteString(fmt.Sprintf("- **Severity:** %s\n", smell.Severity))
		sb.WriteString(fmt.Sprintf("- **Reason:** %s\n", smell.Reason))
		if g.cfg.IncludeSuggestions && smell.SuggestedRefactoring != "" {
			sb.WriteString(fmt.Sprintf("- **Refactoring:** _%s_\n", smell.SuggestedRefactoring))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (g *Generator) generateSARIF(doc Document) (string, error) {
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    "javasmells",
						"version": g.version,
						"rules":   g.buildSARIFRules(doc.Report.Smells),
					},
				},
				"results": g.buildSARIFResults(doc),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func ruleID(smell model.SmellEntry) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(smell.Type)), " ", "-")
}

func (g *Generator) buildSARIFRules(smells []model.SmellEntry) []map[string]any {
	seen := make(map[string]bool)
	rules := []map[string]any{}

	for _, smell := range smells {
		id := ruleID(smell)
		if seen[id] {
			continue
		}
		seen[id] = true

		rules = append(rules, map[string]any{
			"id":   id,
			"name": smell.Type,
			"shortDescription": map[string]any{
				"text": smell.Type,
			},
			"defaultConfiguration": map[string]any{
				"level": sarifLevel(smell.Severity),
			},
		})
	}

	return rules
}

func (g *Generator) buildSARIFResults(doc Document) []map[string]any {
	results := []map[string]any{}

	for _, smell := range doc.Report.Smells {
		location := map[string]any{
			"logicalLocations": []map[string]any{
				{"name": smell.Location},
			},
		}
		if doc.Source != "" {
			location["physicalLocation"] = map[string]any{
				"artifactLocation": map[string]any{"uri": doc.Source},
			}
		}

		result := map[string]any{
			"ruleId":    ruleID(smell),
			"level":     sarifLevel(smell.Severity),
			"message":   map[string]any{"text": smell.Reason},
			"locations": []map[string]any{location},
		}

		if smell.SuggestedRefactoring != "" {
			result["fixes"] = []map[string]any{
				{
					"description": map[string]any{"text": smell.SuggestedRefactoring},
				},
			}
		}

		results = append(results, result)
	}

	return results
}

func (g *Generator) generateHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := g.renderer.Standalone(&buf, "Code Smell Analysis Report", doc.Source, doc.GeneratedAt, doc.Report); err != nil {
		return "", fmt.Errorf("rendering html report: %w", err)
	}
	return buf.String(), nil
}

func (g *Generator) generateText(doc Document) string {
	prev := color.NoColor
	if g.cfg.NoColor {
		color.NoColor = true
		defer func() { color.NoColor = prev }()
	}

	var sb strings.Builder
	r := doc.Report
	bold := color.New(color.Bold)

	sb.WriteString("\n")
	if doc.Source != "" {
		sb.WriteString(bold.Sprintf("📄 %s\n", doc.Source))
	}

	if r.Error != "" {
		sb.WriteString(color.New(color.FgRed, color.Bold).Sprint("Error: "))
		sb.WriteString(r.Error + "\n")
		return sb.String()
	}

	smellCount := color.GreenString("%d", r.Summary.TotalSmells)
	if r.Summary.TotalSmells > 0 {
		smellCount = color.RedString("%d", r.Summary.TotalSmells)
	}
	sb.WriteString(fmt.Sprintf("   Total Lines: %d   Detected Smells: %s\n\n", r.Summary.TotalLines, smellCount))

	if r.Clean() {
		sb.WriteString(color.GreenString("   ✅ No classic code smells detected.\n"))
		return sb.String()
	}

	for i, smell := range r.Smells {
		sb.WriteString(fmt.Sprintf("   %d. %s %s\n", i+1, severityColor(smell.Severity).Sprint(severityLabel(smell.Severity)), bold.Sprint(smell.Type)))
		sb.WriteString(fmt.Sprintf("      Location: %s\n", smell.Location))
		sb.WriteString(fmt.Sprintf("      Reason: %s\n", smell.Reason))
		if g.cfg.IncludeSuggestions && smell.SuggestedRefactoring != "" {
			sb.WriteString(fmt.Sprintf("      Refactoring: %s\n", color.CyanString(smell.SuggestedRefactoring)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func severityLabel(s model.Severity) string {
	if s == "" {
		return "[UNKNOWN]"
	}
	return "[" + strings.ToUpper(strings.TrimSpace(string(s))) + "]"
}

func severityColor(s model.Severity) *color.Color {
	switch model.Severity(s.Class()) {
	case model.SeverityCritical, model.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityMedium:
		return color.New(color.FgYellow, color.Bold)
	case model.SeverityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgHiBlack)
	}
}

func sarifLevel(s model.Severity) string {
	switch model.Severity(s.Class()) {
	case model.SeverityCritical, model.SeverityHigh:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
