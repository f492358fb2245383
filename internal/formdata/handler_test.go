package formdata_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/loyalty-lab/internal/formdata"
	"github.com/JaimeStill/loyalty-lab/pkg/routes"
)

func TestHandler_Find(t *testing.T) {
	sessions := formdata.NewSessions(time.Minute, 0, testLogger())
	id, st, _ := sessions.Create()
	st.SetPhoneNumber("555-0100")
	st.SetName("Ada")

	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, formdata.NewHandler(sessions, "sid", testLogger()).Routes())

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id.String()})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var got map[string]any
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got["phone_number"] != "555-0100" {
		t.Errorf("phone_number = %v, want %q", got["phone_number"], "555-0100")
	}
	reg, ok := got["registration_data"].(map[string]any)
	if !ok {
		t.Fatal("registration_data is not an object")
	}
	if reg["name"] != "Ada" {
		t.Errorf("registration_data.name = %v, want %q", reg["name"], "Ada")
	}
}

func TestHandler_Find_NoSession(t *testing.T) {
	sessions := formdata.NewSessions(time.Minute, 0, testLogger())

	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, formdata.NewHandler(sessions, "sid", testLogger()).Routes())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if sessions.Len() != 0 {
		t.Error("Find should not create a session")
	}
}
