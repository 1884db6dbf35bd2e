package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/locale"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Options configures a Server
type Options struct {
	DefaultMaxLeaves int
	DefaultLang      locale.Lang
}

// Server serves the planner page and the JSON API
type Server struct {
	planner *planner.Planner
	table   calendar.HolidayTable
	opts    Options
	cache   *summaryCache
	logger  *zap.Logger
}

// NewServer creates a new Server
func NewServer(p *planner.Planner, table calendar.HolidayTable, opts Options, logger *zap.Logger) *Server {
	if opts.DefaultMaxLeaves == 0 {
		opts.DefaultMaxLeaves = planner.DefaultLeaves
	}
	if opts.DefaultLang == "" {
		opts.DefaultLang = locale.Turkish
	}

	return &Server{
		planner: p,
		table:   table,
		opts:    opts,
		cache:   newSummaryCache(),
		logger:  logger,
	}
}

// Router builds the HTTP handler
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(RequestID)
	router.Use(Logger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(SecureHeaders)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/", s.handleIndex)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/plan", s.handlePlan)
		r.Get("/plan.xlsx", s.handlePlanXLSX)
		r.Get("/holidays", s.handleHolidays)
	})

	return router
}

// request holds the parsed query of a planner request
type request struct {
	maxLeaves int
	rawMax    string
	lang      locale.Lang
	messages  *locale.Messages
	err       error
}

func (s *Server) parseRequest(r *http.Request) request {
	query := r.URL.Query()
	lang := locale.Negotiate(query.Get("lang"), r.Header.Get("Accept-Language"), s.opts.DefaultLang)
	req := request{
		maxLeaves: s.opts.DefaultMaxLeaves,
		rawMax:    query.Get("max"),
		lang:      lang,
		messages:  lang.Messages(),
	}

	if req.rawMax != "" {
		req.maxLeaves, req.err = planner.ParseLeaveCount(req.rawMax)
	}
	return req
}

func (s *Server) summary(maxLeaves int) (*report.Summary, error) {
	return s.cache.getOrBuild(maxLeaves, func(n int) (*report.Summary, error) {
		s.logger.Debug("Computing summary", zap.Int("max_leaves", n))
		return report.Build(s.planner, s.table, n)
	})
}

// statusFor maps planner errors to an HTTP status and a localized message
func statusFor(err error, m *locale.Messages) (int, string, string) {
	if errors.Is(err, planner.ErrInvalidLeaveCount) {
		return http.StatusBadRequest, "invalid_leave_count", m.InvalidCount
	}
	return http.StatusInternalServerError, "internal_error", m.GenericError
}

type pageData struct {
	Messages  *locale.Messages
	Lang      locale.Lang
	Languages []locale.Lang
	Max       string
	MinLeaves int
	MaxLeaves int
	View      *report.View
	Error     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	data := pageData{
		Messages:  req.messages,
		Lang:      req.lang,
		Languages: locale.Supported,
		Max:       req.rawMax,
		MinLeaves: planner.MinLeaves,
		MaxLeaves: planner.MaxLeaves,
	}
	if data.Max == "" {
		data.Max = strconv.Itoa(req.maxLeaves)
	}

	status := http.StatusOK
	err := req.err
	if err == nil {
		var summary *report.Summary
		summary, err = s.summary(req.maxLeaves)
		if err == nil {
			data.View = summary.Localize(req.messages)
		}
	}
	if err != nil {
		status, _, data.Error = statusFor(err, req.messages)
		s.logger.Warn("Failed to compute plan",
			zap.String("max", req.rawMax),
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err))
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, req.messages.GenericError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(req.lang))
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type planResponse struct {
	Summary *report.Summary `json:"summary"`
	View    *report.View    `json:"view"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	if req.err != nil {
		s.failWith(w, r, req, req.err)
		return
	}

	summary, err := s.summary(req.maxLeaves)
	if err != nil {
		s.failWith(w, r, req, err)
		return
	}

	s.success(w, r, planResponse{Summary: summary, View: summary.Localize(req.messages)})
}

func (s *Server) handlePlanXLSX(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	if req.err != nil {
		s.failWith(w, r, req, req.err)
		return
	}

	summary, err := s.summary(req.maxLeaves)
	if err != nil {
		s.failWith(w, r, req, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, summary, req.messages); err != nil {
		s.failWith(w, r, req, err)
		return
	}

	filename := fmt.Sprintf("leave-plan-%d-%d.xlsx", summary.Year, summary.MaxLeaves)
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	s.success(w, r, s.table.Entries())
}

func (s *Server) failWith(w http.ResponseWriter, r *http.Request, req request, err error) {
	status, code, message := statusFor(err, req.messages)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err))
	} else {
		s.logger.Debug("Rejected request",
			zap.String("path", r.URL.Path),
			zap.String("max", req.rawMax),
			zap.Error(err))
	}
	s.fail(w, r, status, code, message)
}
