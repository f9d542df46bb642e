//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package web implements the embedded form UI for fundgen. It serves a
// single generation form, runs the same pipeline as the generate command,
// and keeps results in a TTL'd session store so each table can be
// downloaded as CSV.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"

	"github.com/quantrail/fundgen/internal/db"
	"github.com/quantrail/fundgen/internal/dispatch"
	"github.com/quantrail/fundgen/internal/logging"
	"github.com/quantrail/fundgen/internal/refdata"
	"github.com/quantrail/fundgen/internal/reports"
	"github.com/quantrail/fundgen/internal/sink"
	"github.com/quantrail/fundgen/internal/universe"
)

// Config holds server configuration.
type Config struct {
	// Connection enables the upload option when non-empty.
	Connection string

	// SessionTTL is how long generated results stay downloadable.
	SessionTTL time.Duration
}

// Server is the fundgen web UI.
type Server struct {
	cfg      Config
	sessions *cache.Cache
	router   chi.Router

	// mu serializes generation; dispatchers are kept per seed so repeated
	// submissions draw from the same master entity universe instead of
	// rebuilding it on every request.
	mu          sync.Mutex
	dispatchers map[uint64]*dispatch.Dispatcher
}

// session holds one generation run's results keyed by session id.
type session struct {
	fundType string
	seed     uint64
	tables   []*reports.Table
	// uploadErrs maps table name to the upload failure, if any.
	uploadErrs map[string]string
	uploaded   bool
}

// New creates a Server. Sessions expire after cfg.SessionTTL.
func New(cfg Config) *Server {
	s := &Server{
		cfg:         cfg,
		sessions:    cache.New(cfg.SessionTTL, 2*cfg.SessionTTL),
		dispatchers: make(map[uint64]*dispatch.Dispatcher),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Get("/download/{sid}/{table}", s.handleDownload)
	s.router = r

	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		FundTypes:    refdata.FundTypeNames(),
		Reports:      reports.Catalog(),
		DefaultCount: 12,
		CanUpload:    s.cfg.Connection != "",
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		logging.Error().Err(err).Msg("Failed to render index")
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	fundType := r.FormValue("fund_type")
	if fundType != "" {
		if _, ok := refdata.FundTypeByName(fundType); !ok {
			http.Error(w, "unknown fund type", http.StatusBadRequest)
			return
		}
	}

	count := 12
	if v := r.FormValue("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			http.Error(w, "count must be between 1 and 1000", http.StatusBadRequest)
			return
		}
		count = n
	}

	var seed uint64
	if v := r.FormValue("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			http.Error(w, "seed must be a non-negative integer", http.StatusBadRequest)
			return
		}
		seed = n
	}

	var kinds []reports.Kind
	for _, name := range r.Form["reports"] {
		kind, ok := reports.ParseKind(name)
		if !ok {
			http.Error(w, fmt.Sprintf("unknown report %q", name), http.StatusBadRequest)
			return
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		kinds = reports.AllKinds()
	}

	upload := r.FormValue("upload") != "" && s.cfg.Connection != ""
	truncate := r.FormValue("truncate") != ""

	generated := s.generate(seed, fundType, count, kinds)

	sess := &session{
		fundType:   fundType,
		seed:       seed,
		uploadErrs: make(map[string]string),
		uploaded:   upload,
	}
	for _, kind := range kinds {
		if t := generated[kind]; t != nil {
			sess.tables = append(sess.tables, t)
		}
	}

	if upload {
		s.uploadSession(r, sess, truncate, kinds)
	}

	sid := newSessionID()
	s.sessions.Set(sid, sess, cache.DefaultExpiration)

	logging.Info().
		Str("session", sid).
		Str("fund_type", fundType).
		Int("tables", len(sess.tables)).
		Msg("Generated datasets via web form")

	s.renderResults(w, sid, sess)
}

// generate runs the pipeline through the dispatcher cached for the seed,
// creating it on first use. Requests for the same seed share one universe
// and one session fund per type filter across submissions.
func (s *Server) generate(seed uint64, fundType string, count int, kinds []reports.Kind) map[reports.Kind]*reports.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.dispatchers[seed]
	if !ok {
		d = dispatch.New(seed, universe.DefaultConfig())
		s.dispatchers[seed] = d
	}
	return d.Generate(fundType, count, kinds)
}

// uploadSession writes each table to the database. Failures are recorded
// per table so the rest still upload and download links still work.
func (s *Server) uploadSession(r *http.Request, sess *session, truncate bool, kinds []reports.Kind) {
	ctx := r.Context()
	pool, err := db.Connect(ctx, s.cfg.Connection)
	if err != nil {
		for _, t := range sess.tables {
			sess.uploadErrs[t.Name] = err.Error()
		}
		return
	}
	defer pool.Close()

	sk := sink.New(pool)
	for _, t := range sess.tables {
		if err := sk.Upload(ctx, t, truncate); err != nil {
			logging.Error().Err(err).Str("table", t.Name).Msg("Upload failed")
			sess.uploadErrs[t.Name] = err.Error()
		}
	}

	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	if err := db.SaveMetadata(ctx, pool, sess.fundType, sess.seed, names); err != nil {
		logging.Error().Err(err).Msg("Failed to save metadata")
	}
}

func (s *Server) renderResults(w http.ResponseWriter, sid string, sess *session) {
	data := resultsData{
		SessionID: sid,
		FundType:  sess.fundType,
		Uploaded:  sess.uploaded,
	}
	if data.FundType == "" {
		data.FundType = "all"
	}
	for _, t := range sess.tables {
		data.Tables = append(data.Tables, resultTable{
			Name:      t.Name,
			Rows:      t.RowCount(),
			Filename:  sink.CSVFilename(t.Name),
			UploadErr: sess.uploadErrs[t.Name],
		})
	}
	if err := resultsTmpl.Execute(w, data); err != nil {
		logging.Error().Err(err).Msg("Failed to render results")
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	name := chi.URLParam(r, "table")

	v, ok := s.sessions.Get(sid)
	if !ok {
		http.Error(w, "session expired", http.StatusNotFound)
		return
	}
	sess := v.(*session)

	for _, t := range sess.tables {
		if t.Name == name {
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition",
				fmt.Sprintf("attachment; filename=%q", sink.CSVFilename(t.Name)))
			if err := sink.WriteCSV(w, t); err != nil {
				logging.Error().Err(err).Str("table", name).Msg("Failed to write CSV")
			}
			return
		}
	}
	http.Error(w, "no such table in session", http.StatusNotFound)
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform is broken; fall back to time.
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b)
}
