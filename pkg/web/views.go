// Package web provides infrastructure for serving web pages with Go templates.
// Templates are parsed once at startup and views are declared as data,
// which keeps route registration a loop over a table.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

// ViewDef defines a view with its route, template file, title, and bundle name.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ url "/path" }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates keyed by view template name.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts once and clones them for each view.
// Any parse failure is returned at startup rather than on first request.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(Funcs(basePath)).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path the set was built with.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ErrorHandler returns an HTTP handler that renders view with the given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Execute(w, layout, view, status, nil); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// Execute renders view inside layout with status and data.
func (ts *TemplateSet) Execute(w http.ResponseWriter, layout string, view ViewDef, status int, data any) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return t.ExecuteTemplate(w, layout, ViewData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		Data:     data,
	})
}

// Funcs returns the template functions bound to basePath.
func Funcs(basePath string) template.FuncMap {
	return template.FuncMap{
		"url": func(path string) string {
			return JoinPath(basePath, path)
		},
	}
}

// JoinPath joins a base path and a route path. The root route maps to the base path itself.
func JoinPath(basePath, path string) string {
	base := strings.TrimRight(basePath, "/")
	if path == "" || path == "/" {
		if base == "" {
			return "/"
		}
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
