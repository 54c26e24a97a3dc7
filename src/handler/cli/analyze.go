package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"javasmells/src/config"
	"javasmells/src/controller"
	"javasmells/src/model"
	"javasmells/src/service/report"
	"javasmells/src/util"
)

type analyzeOptions struct {
	outputDir string
	format    string
	timeout   time.Duration
	quiet     bool
	noColor   bool
}

func (h *Handler) analyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Analyze Java source files for code smells",
		Long: `Submits each file to the analysis service, one at a time, and renders its report.
Reads from stdin when no file is given or the file is "-".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "" && !config.IsSupportedFormat(opts.format) {
				return fmt.Errorf("unsupported format: %s", opts.format)
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			ctx := cmd.Context()
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			return h.runAnalyze(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Write report files to this directory instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (text, json, markdown, sarif, html)")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 0, "Overall timeout (0 waits indefinitely)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Hide the progress spinner and summary")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (h *Handler) runAnalyze(ctx context.Context, stdout, stderr io.Writer, paths []string, opts analyzeOptions) error {
	if opts.noColor {
		h.cfg.Output.NoColor = true
	}
	if opts.outputDir != "" {
		h.cfg.Output.OutputDir = opts.outputDir
		if opts.format != "" {
			h.cfg.Output.Formats = []string{opts.format}
		}
	}

	analysisCtrl := controller.NewAnalysisController(h.cfg)
	reportCtrl, err := controller.NewReportController(h.cfg)
	if err != nil {
		return fmt.Errorf("initializing reports: %w", err)
	}
	exclusions := util.NewExclusionMatcher(h.cfg.Exclusions)

	var submitted, unreadable, failed, skipped int
	for _, path := range paths {
		if path != "-" && exclusions.Matches(path) {
			util.Info("Skipping excluded file: %s", path)
			skipped++
			continue
		}

		code, err := h.readSource(path)
		if err != nil {
			util.Error("Reading %s: %v", path, err)
			unreadable++
			failed++
			continue
		}

		if err := (model.SourceSubmission{Code: code}).ValidateFile(h.cfg.Input.MaxLines); err != nil {
			util.Warn("Skipping %s: %v", displayName(path), err)
			skipped++
			continue
		}

		submitted++
		doc, err := h.analyzeWithSpinner(ctx, analysisCtrl, stderr, path, code, opts.quiet)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("analysis of %s interrupted: %w", displayName(path), err)
			}
			failed++
			fmt.Fprintf(stderr, "Error: %s: %s\n", displayName(path), err)
			continue
		}

		if opts.outputDir != "" {
			written, err := reportCtrl.GenerateReports(doc)
			if err != nil {
				return fmt.Errorf("generating reports: %w", err)
			}
			for _, p := range written {
				fmt.Fprintf(stdout, "Report written to %s\n", p)
			}
			continue
		}

		format := opts.format
		if format == "" {
			format = h.defaultFormat()
		}
		output, err := reportCtrl.GenerateToString(doc, format)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		fmt.Fprintln(stdout, output)
	}

	if !opts.quiet {
		fmt.Fprintf(stderr, "\nAnalysis complete: %d submitted, %d failed, %d skipped\n", submitted, failed, skipped)
	}

	switch {
	case submitted == 0 && unreadable == 0:
		return fmt.Errorf("no files were submitted")
	case failed > 0:
		return fmt.Errorf("%d of %d files could not be analyzed", failed, submitted+unreadable)
	}
	return nil
}

func (h *Handler) analyzeWithSpinner(ctx context.Context, ctrl *controller.AnalysisController, stderr io.Writer, path, code string, quiet bool) (*report.Document, error) {
	if !quiet {
		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(stderr))
		s.Suffix = fmt.Sprintf(" Scanning %s...", displayName(path))
		s.Start()
		defer s.Stop()
	}

	return ctrl.Analyze(ctx, controller.AnalyzeRequest{Source: sourceLabel(path), Code: code})
}

func (h *Handler) readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(h.stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func (h *Handler) defaultFormat() string {
	if len(h.cfg.Output.Formats) > 0 {
		return h.cfg.Output.Formats[0]
	}
	return "text"
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func sourceLabel(path string) string {
	if path == "-" {
		return ""
	}
	return path
}
