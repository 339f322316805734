package httpserver

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/accelboard/internal/dashboard"
	"github.com/tinytelemetry/accelboard/internal/model"
)

//go:embed web/*.tmpl web/*.js web/*.css
var webFS embed.FS

// Server serves the single-page dashboard and dispatches selector events
// to the dashboard binding.
type Server struct {
	addr     string
	dash     *dashboard.Dashboard
	binding  *dashboard.Binding
	pageSize int
	chartW   int
	chartH   int
	chartFmt string
	server   *http.Server
	ctx      context.Context
	cancel   context.CancelFunc
}

// Option configures a Server.
type Option func(*Server)

// WithPageSize sets how many preview rows the table shows per page.
func WithPageSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithChartSize sets the rendered chart dimensions.
func WithChartSize(width, height int) Option {
	return func(s *Server) {
		s.chartW, s.chartH = width, height
	}
}

// WithChartTimeFormat sets the chart's x-axis tick label layout.
func WithChartTimeFormat(layout string) Option {
	return func(s *Server) {
		s.chartFmt = layout
	}
}

// NewServer creates a new dashboard server.
func NewServer(addr string, dash *dashboard.Dashboard, opts ...Option) *Server {
	if addr == "" {
		addr = "127.0.0.1:8051"
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		addr:     addr,
		dash:     dash,
		binding:  dashboard.NewBinding(dash),
		pageSize: model.DefaultPageSize,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// Handler builds the HTTP handler with all routes registered.
func (s *Server) Handler() (http.Handler, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(webFS, "web/*.tmpl")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    log.Writer(),
		SkipPaths: []string{"/assets/app.js", "/assets/app.css"},
	}))
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.handleIndex)
	r.POST("/_update", s.handleUpdate)
	r.GET("/assets/:file", s.handleAsset)

	return r, nil
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Handler:           handler,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = listener.Addr().String()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("httpserver: serve: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
