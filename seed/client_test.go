package seed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeAPI mimics the server side of a sync run: it issues a token on
// login and answers creates with 201 the first time and 409 after.
type fakeAPI struct {
	sections map[string]bool
	staff    map[string]bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{sections: map[string]bool{}, staff: map[string]bool{}}
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "test-token"})
	})

	mux.HandleFunc("/content", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad section payload: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if f.sections[req.ID] {
			w.WriteHeader(http.StatusConflict)
			return
		}
		f.sections[req.ID] = true
		w.WriteHeader(http.StatusCreated)
	})

	mux.HandleFunc("/staff", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad staff payload: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if f.staff[req.Email] {
			w.WriteHeader(http.StatusConflict)
			return
		}
		f.staff[req.Email] = true
		w.WriteHeader(http.StatusCreated)
	})

	return mux
}

func siteRecordCounts(site Site) (sections, staff int) {
	for _, p := range site.Pages {
		sections += len(p.Sections)
	}
	return sections, len(site.Staff)
}

func TestSync_FreshServerCreatesEverything(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Login("admin", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	site := DefaultSite()
	secN, staffN := siteRecordCounts(site)

	summary := c.Sync(site)
	if summary.Created != secN+staffN {
		t.Errorf("created = %d, want %d", summary.Created, secN+staffN)
	}
	if summary.Skipped != 0 || summary.Failed != 0 {
		t.Errorf("unexpected skips/failures on fresh server: %+v", summary)
	}
}

func TestSync_RerunSkipsEverythingWithZeroNetChange(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Login("admin", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	site := DefaultSite()
	c.Sync(site)
	before := len(api.sections) + len(api.staff)

	summary := c.Sync(site)
	secN, staffN := siteRecordCounts(site)
	if summary.Skipped != secN+staffN {
		t.Errorf("skipped = %d, want %d", summary.Skipped, secN+staffN)
	}
	if summary.Created != 0 || summary.Failed != 0 {
		t.Errorf("rerun should only skip: %+v", summary)
	}
	if after := len(api.sections) + len(api.staff); after != before {
		t.Errorf("rerun changed server state: %d -> %d", before, after)
	}
}

func TestSync_ServerErrorsCountAsFailuresNotSkips(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	site := Site{
		Pages: []PageSeed{{ID: "home", Name: "Home", Path: "/", Sections: []SectionSeed{
			{ID: "welcome_en", Type: "text", Label: "Welcome", Content: "hi"},
		}}},
	}

	summary := c.Sync(site)
	if summary.Failed != 1 || summary.Created != 0 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want exactly one failure", summary)
	}
}

func TestLogin_RejectedCredentialsSurfaceAsError(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Login("admin", "wrong"); err == nil {
		t.Fatal("expected error for rejected credentials")
	}
}
