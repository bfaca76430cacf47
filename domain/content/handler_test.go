package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"school-cms/pkg/testsupport"

	"github.com/labstack/echo/v4"
)

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func mustCreateSection(t *testing.T, body string) {
	t.Helper()
	c, rec := newContext(t, http.MethodPost, "/content", body)
	if err := CreateSectionHandler(c); err != nil {
		t.Fatalf("create section returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("create section: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateSection_DuplicateIDConflicts(t *testing.T) {
	testsupport.NewTestDB(t)

	mustCreateSection(t, `{"id":"hero-title_en","type":"text","label":"Hero title","content":"Welcome","page_id":"home"}`)

	c, rec := newContext(t, http.MethodPost, "/content", `{"id":"hero-title_en","type":"text","label":"Hero title","content":"Welcome again","page_id":"home"}`)
	if err := CreateSectionHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 on duplicate id, got %d", rec.Code)
	}
}

func TestCreateSection_InvalidTypeRejected(t *testing.T) {
	testsupport.NewTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/content", `{"id":"x_en","type":"video","label":"X","content":"","page_id":"home"}`)
	if err := CreateSectionHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid type, got %d", rec.Code)
	}
}

func TestCreateSection_MissingFieldsRejected(t *testing.T) {
	testsupport.NewTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/content", `{"id":"x_en","type":"text","content":"no label or page"}`)
	if err := CreateSectionHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestGetPageSections_OrderedAndActiveOnly(t *testing.T) {
	testsupport.NewTestDB(t)

	mustCreateSection(t, `{"id":"second_en","type":"text","label":"Second","content":"b","page_id":"home","position":2}`)
	mustCreateSection(t, `{"id":"first_en","type":"text","label":"First","content":"a","page_id":"home","position":1}`)
	mustCreateSection(t, `{"id":"hidden_en","type":"text","label":"Hidden","content":"c","page_id":"home","position":3,"is_active":false}`)
	mustCreateSection(t, `{"id":"other_en","type":"text","label":"Other page","content":"d","page_id":"about","position":0}`)

	c, rec := newContext(t, http.MethodGet, "/content/page/home", "")
	c.SetParamNames("page_id")
	c.SetParamValues("home")
	if err := GetPageSectionsHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var resp struct {
		Sections []Section `json:"sections"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Sections) != 2 {
		t.Fatalf("expected 2 active sections on home, got %d", len(resp.Sections))
	}
	if resp.Sections[0].ID != "first_en" || resp.Sections[1].ID != "second_en" {
		t.Errorf("wrong ordering: %q, %q", resp.Sections[0].ID, resp.Sections[1].ID)
	}
}

func TestUpdateSection(t *testing.T) {
	testsupport.NewTestDB(t)

	mustCreateSection(t, `{"id":"hero-title_bg","type":"text","label":"Hero title","content":"Добре дошли","page_id":"home"}`)

	c, rec := newContext(t, http.MethodPut, "/content/hero-title_bg", `{"content":"Здравейте"}`)
	c.SetParamNames("id")
	c.SetParamValues("hero-title_bg")
	if err := UpdateSectionHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var s Section
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if s.Content != "Здравейте" {
		t.Errorf("content not updated: %q", s.Content)
	}
	if s.Label != "Hero title" || s.Type != "text" {
		t.Errorf("omitted fields must keep their values: %+v", s)
	}
	if s.PageID != "home" {
		t.Errorf("page binding must not change: %q", s.PageID)
	}
}

func TestUpdateSection_OmittedContentPreserved(t *testing.T) {
	testsupport.NewTestDB(t)

	mustCreateSection(t, `{"id":"welcome_en","type":"text","label":"Welcome","content":"Hello","page_id":"home"}`)

	// A payload without content must not wipe the stored payload
	c, rec := newContext(t, http.MethodPut, "/content/welcome_en", `{"label":"Greeting","is_active":false}`)
	c.SetParamNames("id")
	c.SetParamValues("welcome_en")
	if err := UpdateSectionHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var s Section
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if s.Content != "Hello" {
		t.Errorf("omitted content was overwritten: %q", s.Content)
	}
	if s.Label != "Greeting" || s.IsActive {
		t.Errorf("supplied fields not applied: %+v", s)
	}

	// An explicit empty string still clears it
	c, rec = newContext(t, http.MethodPut, "/content/welcome_en", `{"content":""}`)
	c.SetParamNames("id")
	c.SetParamValues("welcome_en")
	if err := UpdateSectionHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if s.Content != "" {
		t.Errorf("explicit empty content not applied: %q", s.Content)
	}
}

func TestUpdateSection_NotFound(t *testing.T) {
	testsupport.NewTestDB(t)

	c, rec := newContext(t, http.MethodPut, "/content/ghost_en", `{"content":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("ghost_en")
	if err := UpdateSectionHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSectionLocale(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"hero-title_en", "en"},
		{"hero-title_bg", "bg"},
		{"some_value_en", "en"},
		{"no-suffix", ""},
		{"weird_fr", ""},
	}
	for _, tc := range cases {
		s := Section{ID: tc.id}
		if got := s.Locale(); got != tc.want {
			t.Errorf("Locale(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
