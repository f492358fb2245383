package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/loyalty-lab/pkg/openapi"
	"github.com/JaimeStill/loyalty-lab/pkg/routes"
)

func text(s string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(s))
	}
}

func testGroup() routes.Group {
	return routes.Group{
		Prefix: "/items",
		Tags:   []string{"Items"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: text("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: text("find"), OpenAPI: &openapi.Operation{Summary: "Find", Tags: []string{"Custom"}}},
			{Method: "POST", Pattern: "/hidden", Handler: text("hidden")},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/notes",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: text("notes"), OpenAPI: &openapi.Operation{Summary: "Notes"}},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"Item": {Type: "object"},
		},
	}
}

func TestRegister_Routes(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, testGroup())

	tests := []struct {
		method string
		target string
		body   string
	}{
		{"GET", "/items", "list"},
		{"GET", "/items/42", "find"},
		{"POST", "/items/hidden", "hidden"},
		{"GET", "/items/42/notes", "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
			if w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestRegister_Spec(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	routes.Register(http.NewServeMux(), "/api", spec, testGroup())

	list := spec.Paths["/api/items"]
	if list == nil || list.Get == nil {
		t.Fatal("missing GET /api/items")
	}
	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Items" {
		t.Errorf("list tags = %v, want inherited [Items]", list.Get.Tags)
	}

	find := spec.Paths["/api/items/{id}"]
	if find == nil || find.Get == nil || find.Get.Tags[0] != "Custom" {
		t.Error("explicit tags should be kept")
	}

	notes := spec.Paths["/api/items/{id}/notes"]
	if notes == nil || notes.Get == nil || notes.Get.Tags[0] != "Items" {
		t.Error("child group should inherit parent tags")
	}

	if _, ok := spec.Paths["/api/items/hidden"]; ok {
		t.Error("routes without OpenAPI should not be documented")
	}

	if _, ok := spec.Components.Schemas["Item"]; !ok {
		t.Error("group schemas not added to components")
	}
}
