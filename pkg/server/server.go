package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/overdraft/pkg/config"
	"github.com/yurifrl/overdraft/pkg/csv"
	"github.com/yurifrl/overdraft/pkg/executors"
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/parser"
	"github.com/yurifrl/overdraft/pkg/report"
)

//go:embed templates/*.html
var templates embed.FS

// maxUploadSize bounds a multipart upload.
const maxUploadSize = 32 << 20

// Server handles statement uploads and serves the resulting reports.
type Server struct {
	config   *config.Config
	logger   *log.Logger
	mux      *http.ServeMux
	template *template.Template
	executor *executors.Executor
	reports  *reportCache
}

// New creates a new HTTP server
func New(config *config.Config, logger *log.Logger) *Server {
	s := &Server{
		config:   config,
		logger:   logger,
		mux:      http.NewServeMux(),
		template: template.Must(template.ParseFS(templates, "templates/*.html")),
		executor: executors.New(logger, config),
		reports:  newReportCache(cacheSize(config)),
	}
	s.setupRoutes()
	return s
}

func cacheSize(cfg *config.Config) int {
	if cfg.Server.CacheSize <= 0 {
		return config.DefaultCacheSize
	}
	return cfg.Server.CacheSize
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/", s.withLogging(s.handleHome))
	s.mux.HandleFunc("/api/institutions", s.withLogging(s.handleInstitutions))
	s.mux.HandleFunc("/api/process", s.withLogging(s.handleProcess))
	s.mux.HandleFunc("/api/files/", s.withLogging(s.handleFiles))
}

type institutionOption struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

func (s *Server) institutions() []institutionOption {
	adapters := s.executor.Parser().Adapters()
	out := make([]institutionOption, len(adapters))
	for i, a := range adapters {
		out[i] = institutionOption{Tag: string(a.Institution()), Name: a.Name()}
	}
	return out
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.respondError(w, r, http.StatusNotFound, "not found", nil)
		return
	}
	data := map[string]any{
		"Institutions": s.institutions(),
		"Default":      s.config.Bank,
		"Rate":         s.config.Rate,
	}
	if err := s.template.ExecuteTemplate(w, "index.html", data); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render page", err)
		return
	}
}

func (s *Server) handleInstitutions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"institutions": s.institutions(),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// Row is one report line in JSON responses. Amounts are decimal strings.
type Row struct {
	Date          string `json:"date"`
	Balance       string `json:"balance"`
	DailyInterest string `json:"daily_interest"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("statement")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "statement file required", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	bank := r.FormValue("institution")
	if bank == "" {
		bank = s.config.Bank
	}
	inst, err := parser.ParseInstitution(bank)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	accrual, err := s.accrual(r.FormValue("rate"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	rep, err := s.executor.Process(data, header.Filename, inst, accrual)
	if err != nil {
		s.respondError(w, r, statusFor(err), err.Error(), err)
		return
	}

	filename := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename)) + "-interest.csv"
	for _, name := range s.reports.Store(filename, rep) {
		s.logger.Debug("evicted cached report", "file", name)
	}
	s.logger.Info("processed statement", "file", header.Filename, "institution", inst, "entries", len(rep.Rows))

	rows := make([]Row, len(rep.Rows))
	for i, row := range rep.Rows {
		rows[i] = Row{
			Date:          row.Date.Format(csv.DateFormat),
			Balance:       row.Balance.String(),
			DailyInterest: row.DailyInterest.String(),
		}
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"status":         "success",
		"file":           filename,
		"institution":    inst,
		"date_column":    rep.DateColumn,
		"balance_column": rep.BalanceColumn,
		"rows":           rows,
		"total":          rep.Total.DailyInterest.String(),
		"total_display":  report.FormatTotal(rep.Total.DailyInterest),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// accrual reads the rate form field as a percentage, defaulting to the
// configured rate.
func (s *Server) accrual(value string) (models.AccrualConfig, error) {
	rate := decimal.NewFromFloat(s.config.Rate)
	if value != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return models.AccrualConfig{}, fmt.Errorf("rate %q is not a number", value)
		}
		rate = parsed
	}
	return models.NewAccrualConfig(rate)
}

// statusFor maps pipeline errors caused by the upload to 400.
func statusFor(err error) int {
	var (
		schemaErr   *parser.SchemaError
		dateErr     *parser.DateFormatError
		coercionErr *parser.CoercionError
	)
	switch {
	case errors.As(err, &schemaErr), errors.As(err, &dateErr), errors.As(err, &coercionErr):
		return http.StatusBadRequest
	case errors.Is(err, parser.ErrUnknownInstitution):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// handleFiles serves a processed report as CSV, or as xlsx with ?format=xlsx.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/api/files/")
	if filename == "" {
		s.respondError(w, r, http.StatusBadRequest, "filename required", nil)
		return
	}

	rep, ok := s.reports.Load(filename)
	if !ok {
		s.respondError(w, r, http.StatusNotFound, "file not found", nil)
		return
	}

	var (
		body        []byte
		contentType = "text/csv"
		err         error
	)
	if r.URL.Query().Get("format") == "xlsx" {
		var buf bytes.Buffer
		err = report.WriteXLSX(rep, &buf)
		body = buf.Bytes()
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".xlsx"
	} else {
		body, err = csv.Create(rep)
	}
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("failed to write file response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
