package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"javasmells/src/controller"
	"javasmells/src/model"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) smellsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "smells",
		Short: "List the code smells the analysis service detects",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(model.Catalog, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(model.Catalog)
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(data))
			case "table", "":
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CATEGORY\tSMELL\tHEURISTIC")
				for _, row := range model.CatalogRows() {
					category := ""
					if row.FirstInCategory {
						category = row.Category
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", category, row.Smell, row.Heuristic)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func (h *Handler) pingCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the analysis service is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := controller.NewAnalysisController(h.cfg).Health(ctx)
			if err != nil {
				return fmt.Errorf("analysis service at %s: %w", h.cfg.Backend.URL, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", h.cfg.Backend.URL, resp.Status, resp.Message)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Second, "How long to wait for the service")
	return cmd
}
