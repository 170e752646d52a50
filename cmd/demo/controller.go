package main

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/mvc"
	"github.com/dmitrymomot/mvc/core/handler"
	"github.com/dmitrymomot/mvc/core/response"
	"github.com/dmitrymomot/mvc/middleware"
)

type note struct {
	ID    int      `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

type listQuery struct {
	Tag   string `query:"tag"`
	Limit int    `query:"limit"`
}

type notesController struct {
	mu    sync.RWMutex
	notes []note
}

func newNotesController() *notesController {
	return &notesController{notes: []note{
		{ID: 1, Title: "decorators", Tags: []string{"go", "mvc"}},
		{ID: 2, Title: "headers", Tags: []string{"http"}},
	}}
}

func (c *notesController) List(q listQuery) []note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]note, 0, len(c.notes))
	for _, n := range c.notes {
		if q.Tag != "" && !hasTag(n, q.Tag) {
			continue
		}
		out = append(out, n)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}

func (c *notesController) Show(id int, trace string) (note, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, n := range c.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return note{}, response.ErrNotFound.WithMessage(fmt.Sprintf("note %d not found (trace %q)", id, trace))
}

func (c *notesController) Export(ctx handler.Context) handler.Response {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	b.WriteString("id,title\n")
	for _, n := range c.notes {
		fmt.Fprintf(&b, "%d,%s\n", n.ID, n.Title)
	}
	return response.String(b.String())
}

func hasTag(n note, tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

var traceID = regexp.MustCompile(`^[a-zA-Z0-9-]{1,64}$`)

// routes mounts the notes endpoints on mux.
func routes(app *mvc.App, mux *http.ServeMux, notes *notesController) error {
	requestID := mvc.UseAfter(middleware.RequestID(middleware.RequestIDConfig{UseExisting: true}))

	list, err := app.Endpoint(notes, "List",
		mvc.OnMethod(requestID, middleware.Cache(30*time.Second)),
		mvc.OnParam(0, mvc.QueryParams("")),
	)
	if err != nil {
		return err
	}

	show, err := app.Endpoint(notes, "Show",
		mvc.OnMethod(requestID, middleware.SecurityHeaders(middleware.BalancedSecurity)),
		mvc.OnParam(0, mvc.PathParams("id", mvc.Required())),
		mvc.OnParam(1, mvc.HeaderParams("X-Trace", mvc.Match(traceID))),
	)
	if err != nil {
		return err
	}

	export, err := app.Endpoint(notes, "Export",
		mvc.OnMethod(
			requestID,
			mvc.Header("Content-Type", "text/csv; charset=utf-8"),
			mvc.Header(mvc.Fields{
				{Name: "Content-Disposition", Value: `attachment; filename="notes.csv"`},
				{Name: "Cache-Control", Value: "no-store"},
			}),
		),
	)
	if err != nil {
		return err
	}

	mux.Handle("GET /notes", list)
	mux.Handle("GET /notes/{id}", show)
	mux.Handle("GET /notes/export", export)
	return nil
}
