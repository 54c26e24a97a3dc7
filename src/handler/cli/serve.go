package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"javasmells/src/controller"
	"javasmells/src/handler/web"
	"javasmells/src/util"
)

const defaultShutdownTimeout = 10 * time.Second

func (h *Handler) serveCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				h.cfg.Server.Listen = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", h.cfg.Server.Listen)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", h.cfg.Server.Listen, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (analysis service: %s)\n", ln.Addr(), h.cfg.Backend.URL)

			return h.serve(ctx, ln)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Address to listen on (overrides server.listen)")
	return cmd
}

// serve runs the web UI on ln until ctx is done, then shuts down gracefully
func (h *Handler) serve(ctx context.Context, ln net.Listener) error {
	handler, err := web.NewServer(h.cfg, controller.NewAnalysisController(h.cfg))
	if err != nil {
		return fmt.Errorf("initializing web server: %w", err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		util.Info("Web UI listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		util.Info("Shutting down web UI")

		timeout := h.cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
