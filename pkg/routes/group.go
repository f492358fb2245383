// Package routes declares HTTP routes as data, registers them on a ServeMux,
// and records their OpenAPI operations.
package routes

import (
	"net/http"

	"github.com/JaimeStill/loyalty-lab/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Route is an HTTP route. Pattern is appended to the enclosing group prefix.
// Routes without OpenAPI are served but left out of the document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// AddToSpec records the group's operations and schemas under basePath.
// Operations without tags inherit the group's tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, nil, spec)
}

func (g *Group) addToSpec(parent string, parentTags []string, spec *openapi.Spec) {
	prefix := parent + g.Prefix
	tags := g.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		op := *r.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		spec.AddOperation(prefix+r.Pattern, r.Method, &op)
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for i := range g.Children {
		g.Children[i].addToSpec(prefix, tags, spec)
	}
}

// Register adds every route in groups to mux and records each group in spec
// under basePath, the external mount point of mux. spec may be nil.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		register(mux, "", g)
		if spec != nil {
			g.AddToSpec(basePath, spec)
		}
	}
}

func register(mux *http.ServeMux, parent string, g Group) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		register(mux, prefix, child)
	}
}
