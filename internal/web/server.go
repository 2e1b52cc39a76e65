package web

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"fgcomment/internal/logging"
	"fgcomment/internal/model"
	"fgcomment/internal/scan"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// maxUpload bounds the configuration text accepted by the API.
const maxUpload = 32 << 20

const cacheSize = 64

// Server serves the browser UI and its JSON API.
type Server struct {
	analyzer *scan.Analyzer
	cache    *lru.Cache[string, model.AnalysisResult]
	logger   *slog.Logger
}

// NewServer creates a Server.
func NewServer(logger *slog.Logger) (*Server, error) {
	logger = logging.Default(logger).With("component", "web")
	cache, err := lru.New[string, model.AnalysisResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}
	return &Server{
		analyzer: scan.NewAnalyzer(logger),
		cache:    cache,
		logger:   logger,
	}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/download", s.handleDownload)
	mux.HandleFunc("/api/help", handleHelp)
	return mux
}

// StartServer starts the web server on addr and blocks until it fails.
func StartServer(addr string, logger *slog.Logger) error {
	s, err := NewServer(logger)
	if err != nil {
		return err
	}
	fmt.Printf("Starting fgcomment web server at http://%s\n", displayAddr(addr))
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

// analyzeRequest mirrors the page controls: the uploaded text, the two
// mutually exclusive filter toggles and the wildcard field.
type analyzeRequest struct {
	Text     string `json:"text"`
	Wizard   bool   `json:"wizard"`
	Wildcard bool   `json:"wildcard"`
	Pattern  string `json:"pattern"`
}

type matchView struct {
	LineNumber  int      `json:"LineNumber"`
	CommentText string   `json:"CommentText"`
	Breadcrumb  string   `json:"Breadcrumb"`
	ConfigPath  []string `json:"ConfigPath"`
	SubPath     []string `json:"SubPath"`
}

type analyzeResponse struct {
	Total   int              `json:"Total"`
	Summary string           `json:"Summary"`
	Mode    model.FilterMode `json:"Mode"`
	Matches []matchView      `json:"Matches"`
	Script  string           `json:"Script"`
	Version string           `json:"Version"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	res, ok := s.analyzeBody(w, r)
	if !ok {
		return
	}

	matches := make([]matchView, 0, len(res.Records))
	for _, rec := range res.Records {
		matches = append(matches, matchView{
			LineNumber:  rec.LineNumber,
			CommentText: rec.CommentText,
			Breadcrumb:  rec.Breadcrumb(),
			ConfigPath:  rec.ConfigPath,
			SubPath:     rec.SubPath,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(analyzeResponse{
		Total:   res.Total,
		Summary: res.Summary,
		Mode:    res.Mode,
		Matches: matches,
		Script:  res.Script,
		Version: model.Version,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	res, ok := s.analyzeBody(w, r)
	if !ok {
		return
	}
	if res.Script == "" {
		http.Error(w, "no comments selected", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", scan.DefaultScriptName))
	_, _ = w.Write([]byte(scan.ScriptFile(res.Script)))
}

// analyzeBody decodes an analyzeRequest and returns the (possibly cached)
// analysis. On failure it has already written the error response.
func (s *Server) analyzeBody(w http.ResponseWriter, r *http.Request) (model.AnalysisResult, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return model.AnalysisResult{}, false
	}

	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpload)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "configuration too large", http.StatusRequestEntityTooLarge)
		} else {
			http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		}
		return model.AnalysisResult{}, false
	}

	mode, err := model.ModeFromSelection(req.Wizard, req.Wildcard, req.Pattern)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return model.AnalysisResult{}, false
	}
	return s.analyze(req.Text, mode), true
}

func (s *Server) analyze(text string, mode model.FilterMode) model.AnalysisResult {
	key := cacheKey(text, mode)
	if res, ok := s.cache.Get(key); ok {
		s.logger.Debug("analysis cache hit", "mode", mode.String())
		return res
	}
	res := s.analyzer.Analyze(text, mode)
	s.cache.Add(key, res)
	return res
}

func cacheKey(text string, mode model.FilterMode) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:]) + "|" + mode.String()
}

func handleHelp(w http.ResponseWriter, r *http.Request) {
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	_, _ = w.Write([]byte(text))
}
