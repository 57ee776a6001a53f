package server

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"jobtimeline/internal/chart"
	"jobtimeline/internal/config"
	"jobtimeline/internal/history"
	"jobtimeline/internal/metrics"
	"jobtimeline/internal/models"
	"jobtimeline/internal/storage"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	pageTemplate = "index.html.tmpl"

	msgDataSource = "Database connection error"
	msgInternal   = "Internal Server Error"
)

// RunSource fetches the job runs a view displays.
type RunSource interface {
	FetchRuns(ctx context.Context, view models.View) ([]models.JobRunRecord, error)
}

// Server renders the timeline page for a single view.
type Server struct {
	httpServer *http.Server
	source     RunSource
	view       models.View
	link       *config.Link
	logger     *zap.Logger
	page       *template.Template
	now        func() time.Time
}

// New creates a configured HTTP server for the dashboard.
func New(addr string, view models.View, source RunSource, link *config.Link, logger *zap.Logger) *Server {
	page, err := template.ParseFS(embeddedTemplates, "templates/*.tmpl")
	if err != nil {
		panic("page template invalid: " + err.Error())
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	s := &Server{
		source: source,
		view:   view,
		link:   link,
		logger: logger,
		page:   page,
		now:    time.Now,
	}
	s.registerRoutes(mux)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           withAccessLog(logger, withRecovery(logger, mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Run blocks and serves HTTP traffic.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts the server down.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

type pageData struct {
	Title        string
	View         models.ViewKind
	Figure       chart.Figure
	ReloadMillis int64
	ClampPan     bool
	DomainStart  int
	NowMinutes   int
	Link         *config.Link
	Totals       []metrics.StatusCount
	Jobs         []metrics.JobOutcome
	GeneratedAt  string
	RunCount     int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	now := s.now()
	records, err := s.source.FetchRuns(r.Context(), s.view)
	if err != nil {
		s.fail(w, r, errors.Wrap(err, "fetch job runs"))
		return
	}

	tl := history.Build(records, s.view, models.ClockOf(now))
	data := pageData{
		Title:        s.view.Title,
		View:         s.view.Kind,
		Figure:       chart.Build(tl),
		ReloadMillis: s.view.ReloadInterval.Milliseconds(),
		ClampPan:     s.view.ClampPan,
		DomainStart:  tl.Axis.DomainStart,
		NowMinutes:   tl.Axis.NowMinutes,
		Link:         s.link,
		Totals:       metrics.CountStatuses(records),
		Jobs:         metrics.ComputeJobOutcomes(records),
		GeneratedAt:  now.Format("15:04:05"),
		RunCount:     len(records),
	}

	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, pageTemplate, data); err != nil {
		s.fail(w, r, errors.Wrap(err, "render page"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	msg := msgInternal
	if errors.Is(err, storage.ErrDataSource) {
		msg = msgDataSource
	}
	s.logger.Error("render dashboard",
		zap.String("request_id", requestID(r)),
		zap.String("view", string(s.view.Kind)),
		zap.Error(err),
	)
	http.Error(w, msg, http.StatusInternalServerError)
}
