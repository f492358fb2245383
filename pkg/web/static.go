package web

import (
	"io/fs"
	"net/http"
	"path"
)

// PublicRoute is a GET route serving one file from an embedded public directory.
type PublicRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// PublicFile serves a single file from fsys/dir.
func PublicFile(fsys fs.FS, dir, name string) http.HandlerFunc {
	filePath := path.Join(dir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, fsys, filePath)
	}
}

// PublicFileRoutes builds a root-level GET route for each named file.
func PublicFileRoutes(fsys fs.FS, dir string, files ...string) []PublicRoute {
	routes := make([]PublicRoute, 0, len(files))
	for _, f := range files {
		routes = append(routes, PublicRoute{
			Method:  "GET",
			Pattern: "/" + f,
			Handler: PublicFile(fsys, dir, f),
		})
	}
	return routes
}
