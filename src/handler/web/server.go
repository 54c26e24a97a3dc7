package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"javasmells/src/config"
	"javasmells/src/controller"
	"javasmells/src/model"
	"javasmells/src/service/render"
	"javasmells/src/util"
)

// maxFormBytes bounds the analyzer form body
const maxFormBytes = 2 << 20

// Server serves the info and analyzer pages
type Server struct {
	cfg      *config.Config
	analysis *controller.AnalysisController
	renderer *render.Renderer
	limiter  *clientLimiter
	mux      *http.ServeMux
}

// NewServer wires the routes
func NewServer(cfg *config.Config, analysis *controller.AnalysisController) (*Server, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		analysis: analysis,
		renderer: renderer,
		mux:      http.NewServeMux(),
	}
	if cfg.Server.RateLimitEnabled {
		s.limiter = newClientLimiter(cfg.Server.RateLimitRequestsPerSec, cfg.Server.RateLimitBurst)
	}

	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /analyze", s.handleAnalyzerPage)
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(render.Static())))

	if cfg.Server.APIProxy {
		proxy, err := newAPIProxy(cfg.Backend.URL)
		if err != nil {
			return nil, err
		}
		s.mux.Handle("/api/", proxy)
	}

	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	util.Debug("%s %s -> %d (%v)", r.Method, r.URL.Path, rec.status, time.Since(start))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return s.renderer.Home(buf)
	})
}

func (s *Server) handleAnalyzerPage(w http.ResponseWriter, r *http.Request) {
	input := render.NewInputView(s.cfg.Input.SampleCode, s.cfg.Input.MaxLines, false)
	s.writeAnalyzer(w, http.StatusOK, input, render.FromState(model.NewViewState()))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		util.Warn("Rejecting analyzer form: %v", err)
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		input := render.NewInputView("", s.cfg.Input.MaxLines, false)
		s.writeAnalyzer(w, status, input, render.View{Mode: render.ModeError, Message: "The submitted form could not be read."})
		return
	}
	code := r.PostForm.Get("sourceCode")
	input := render.NewInputView(code, s.cfg.Input.MaxLines, false)

	// the page's own state; nothing outlives this request
	state := model.NewViewState()

	if !input.CanSubmit {
		s.writeAnalyzer(w, http.StatusOK, input, render.FromState(state))
		return
	}

	if s.limiter != nil && !s.limiter.Allow(clientIP(r)) {
		state.Begin()
		_ = state.Fail("Too many submissions, please wait a moment and try again.")
		s.writeAnalyzer(w, http.StatusTooManyRequests, input, render.FromState(state))
		return
	}

	err := s.analysis.Submitter().Run(r.Context(), state, code)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			util.Debug("Client went away before the analysis finished")
			return
		}
		util.Error("Unexpected submission error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.writeAnalyzer(w, http.StatusOK, input, render.FromState(state))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	body := map[string]any{"status": "ok", "backend": s.cfg.Backend.URL}
	status := http.StatusOK
	if h, err := s.analysis.Health(ctx); err != nil {
		body["status"] = "degraded"
		body["backendError"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		body["backendStatus"] = h.Status
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeAnalyzer(w http.ResponseWriter, status int, input render.InputView, view render.View) {
	s.writePage(w, status, func(buf *bytes.Buffer) error {
		return s.renderer.Analyzer(buf, input, view)
	})
}

// writePage renders into a buffer first so template errors never produce half a page
func (s *Server) writePage(w http.ResponseWriter, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		util.Error("Rendering page failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func newAPIProxy(backend string) (http.Handler, error) {
	target, err := url.Parse(backend)
	if err != nil {
		return nil, err
	}
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			util.Warn("API proxy to %s failed: %v", target, err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "analysis service unavailable"})
		},
	}
	return proxy, nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Unwrap exposes the underlying writer to http.ResponseController
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Flush keeps streaming responses working through the proxy
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
