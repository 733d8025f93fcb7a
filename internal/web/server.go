// Package web serves a loaded mockup over HTTP and plays the render
// adapter role for its grids: every interactive element in the rendered
// page posts an intent back here, the handler dispatches it into the
// interaction controller, and the re-rendered grid fragment goes back to
// the client.
//
// The engine owns no locks, so the server enforces the single-writer
// discipline: one mutex serializes every dispatch across all grids of the
// mockup.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"mockview/internal/grid"
	"mockview/internal/schema"
	"mockview/internal/source"
	"mockview/internal/view"
)

// Server hosts one mockup document.
type Server struct {
	doc    *schema.Mockup
	logger *slog.Logger

	mu    sync.Mutex
	grids map[string]*gridInstance
}

// gridInstance pairs a controller with the dataset source feeding it. cfg
// is the immutable schema captured at construction so intent parsing never
// has to read controller state outside the dispatch mutex.
type gridInstance struct {
	ctrl *grid.Controller
	src  source.Source
	cfg  grid.Config
}

// NewServer builds a grid instance per table widget. Tables with a source
// stanza read their first page from SQLite; the rest use their inline
// rows.
func NewServer(doc *schema.Mockup, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{doc: doc, logger: logger, grids: map[string]*gridInstance{}}

	for _, w := range doc.Widgets {
		if w.Kind != schema.KindTable || w.Table == nil {
			continue
		}
		if w.ID == "" {
			return nil, fmt.Errorf("table widget without id cannot be served")
		}

		cfg := w.Table.GridConfig()
		var src source.Source
		if sd := w.Table.Source; sd != nil {
			sqliteSrc, err := source.OpenSQLite(sd.Path, sd.Query)
			if err != nil {
				s.Close()
				return nil, fmt.Errorf("table %q: %w", w.ID, err)
			}
			src = sqliteSrc
		} else {
			src = source.NewStatic(w.Table.GridRows())
		}

		res, err := src.Fetch(context.Background(), 0, cfg.PageSize)
		if err != nil {
			src.Close()
			s.Close()
			return nil, fmt.Errorf("table %q: initial fetch: %w", w.ID, err)
		}

		state := grid.NewState(cfg, nil).WithData(res.Rows, res.TotalCount)
		id := w.ID
		ctrl := grid.NewController(state,
			grid.WithResizeHook(func(columnID string, width int) {
				logger.Debug("column resized", "grid", id, "column", columnID, "width", width)
			}),
			grid.WithActionHook(func(req grid.ActionRequest) {
				// Domain behavior belongs to the host application; a mockup
				// viewer just records that the action fired.
				logger.Info("row action requested",
					"grid", id, "action", req.Action.ID, "row", req.Row.ID,
					"needs_confirmation", req.Confirm != nil)
			}),
		)
		s.grids[id] = &gridInstance{ctrl: ctrl, src: src, cfg: cfg}
	}
	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /grid/{id}/intent", s.handleIntent)
	mux.HandleFunc("GET /static/mockview.css", s.handleCSS)
	mux.HandleFunc("GET /static/mockview.js", s.handleJS)
	return mux
}

// ListenAndServe blocks until the context is canceled, then shuts the
// listener down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("serving mockup", "addr", addr, "title", s.doc.Title)
	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Close releases every dataset source.
func (s *Server) Close() error {
	var firstErr error
	for _, g := range s.grids {
		if err := g.src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	states := make(map[string]grid.State, len(s.grids))
	for id, g := range s.grids {
		states[id] = g.ctrl.State()
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPage(w, view.NewPage(s.doc, states)); err != nil {
		s.logger.Error("rendering page", "error", err)
	}
}

func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	g, ok := s.grids[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	intent, err := parseIntent(r.PostForm, g.cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	state := s.dispatch(r.Context(), g, intent)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderTable(w, view.NewTableView(id, state)); err != nil {
		s.logger.Error("rendering grid", "grid", id, "error", err)
	}
}

// dispatch routes one intent, re-fetching from paged sources when the
// intent moves the data window. Callers hold s.mu.
func (s *Server) dispatch(ctx context.Context, g *gridInstance, intent grid.Intent) grid.State {
	if pc, ok := intent.(grid.PageChange); ok && g.src.Paged() {
		// Clamp against the last known total before touching the source; an
		// out-of-range fetch would install an empty window that the page
		// clamp alone cannot repair.
		state := g.ctrl.State()
		last := grid.PageCount(state.TotalCount(), state.PageSize()) - 1
		if pc.Page < 0 {
			pc.Page = 0
		}
		if pc.Page > last {
			pc.Page = last
		}
		res, err := g.src.Fetch(ctx, pc.Page, state.PageSize())
		if err != nil {
			s.logger.Error("fetching page", "page", pc.Page, "error", err)
			return g.ctrl.State()
		}
		g.ctrl.Dispatch(grid.SetData{Rows: res.Rows, TotalCount: res.TotalCount})
		intent = pc
	}
	return g.ctrl.Dispatch(intent)
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprint(w, mockviewCSS)
}

func (s *Server) handleJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	fmt.Fprint(w, mockviewJS)
}
