package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"javasmells/src/config"
	"javasmells/src/util"
)

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	configPath string
	logLevel   string
	rootCmd    *cobra.Command
	stdin      io.Reader
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{stdin: os.Stdin}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:           "javasmells",
		Short:         "Code smell analysis client",
		Long:          "Submits Java source to a code smell analysis service and renders its report, from the terminal or a web UI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = util.DefaultLogger().Sync()
		},
	}

	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file")
	h.rootCmd.PersistentFlags().StringVar(&h.logLevel, "log-level", "",
		"Override the configured log level (debug, info, warn, error)")

	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.serveCmd())
	h.rootCmd.AddCommand(h.pingCmd())
	h.rootCmd.AddCommand(h.smellsCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) loadConfig() error {
	loader := config.NewLoader()
	cfg, err := loader.Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if h.logLevel != "" {
		cfg.Logging.Level = h.logLevel
	}
	h.cfg = cfg

	util.SetDefaultLogger(cfg.Logging)
	util.Debug("Configuration loaded successfully")
	util.Debug("Log level set to: %s", cfg.Logging.Level)

	return nil
}

// Execute runs the CLI
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
