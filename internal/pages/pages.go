// Package pages holds the application's route table: an ordered list of
// paths, each bound to a named view. Lookup is exact match on the path
// relative to the application base path.
package pages

import (
	"fmt"
	"path"
	"strings"

	"github.com/JaimeStill/loyalty-lab/pkg/web"
)

// Route binds a path to a named view.
type Route struct {
	Path string
	Name string
	View web.ViewDef
}

// Pattern returns the ServeMux pattern matching Path exactly.
func (r Route) Pattern() string {
	if r.Path == "/" {
		return "/{$}"
	}
	return r.Path
}

// Table is an immutable, ordered set of routes with unique paths.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewTable validates routes and builds a Table in declaration order.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}

	for _, r := range routes {
		if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, r.Path)
		}

		p := clean(r.Path)
		if _, exists := t.byPath[p]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, p)
		}

		r.Path = p
		r.View.Route = r.Pattern()

		t.byPath[p] = len(t.routes)
		if _, named := t.byName[r.Name]; !named && r.Name != "" {
			t.byName[r.Name] = len(t.routes)
		}
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Resolve returns the route declared for path. An empty path resolves as "/"
// and a trailing slash is ignored.
func (t *Table) Resolve(p string) (Route, error) {
	i, ok := t.byPath[clean(p)]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return t.routes[i], nil
}

// Named returns the first route declared with name.
func (t *Table) Named(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Views returns the view of every route in declaration order.
func (t *Table) Views() []web.ViewDef {
	views := make([]web.ViewDef, len(t.routes))
	for i, r := range t.routes {
		views[i] = r.View
	}
	return views
}

func clean(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
