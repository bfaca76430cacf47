package seed

import (
	"testing"

	"school-cms/pkg/testsupport"

	"github.com/jmoiron/sqlx"
)

func counts(t *testing.T, db *sqlx.DB) (pages, sections int) {
	t.Helper()
	if err := db.Get(&pages, "SELECT COUNT(*) FROM pages"); err != nil {
		t.Fatalf("count pages: %v", err)
	}
	if err := db.Get(&sections, "SELECT COUNT(*) FROM content_sections"); err != nil {
		t.Fatalf("count sections: %v", err)
	}
	return pages, sections
}

func TestReseed_TwiceYieldsIdenticalCounts(t *testing.T) {
	db := testsupport.NewTestDB(t)
	site := DefaultSite()

	first, err := Reseed(db, site)
	if err != nil {
		t.Fatalf("first reseed: %v", err)
	}
	p1, s1 := counts(t, db)
	if p1 != first.Pages || s1 != first.Sections {
		t.Fatalf("stats disagree with store: stats=%+v counts=(%d,%d)", first, p1, s1)
	}

	second, err := Reseed(db, site)
	if err != nil {
		t.Fatalf("second reseed: %v", err)
	}
	p2, s2 := counts(t, db)

	if p1 != p2 || s1 != s2 {
		t.Errorf("reseed not idempotent: first=(%d,%d) second=(%d,%d)", p1, s1, p2, s2)
	}
	if first != second {
		t.Errorf("stats differ between runs: %+v vs %+v", first, second)
	}
}

func TestReseed_LeavesEventsAlone(t *testing.T) {
	db := testsupport.NewTestDB(t)

	if _, err := db.Exec(`
		INSERT INTO events (title, description, date, start_time, end_time, type, location, locale, created_at, updated_at)
		VALUES ('Open Day', '', '2024-03-15', '10:00', '12:00', 'academic', '', 'en', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`); err != nil {
		t.Fatalf("insert event: %v", err)
	}

	if _, err := Reseed(db, DefaultSite()); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM events"); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 1 {
		t.Errorf("reseed touched the events table: %d rows", n)
	}
}

func TestReseed_InvalidDefinitionRejectedBeforeWrite(t *testing.T) {
	db := testsupport.NewTestDB(t)

	if _, err := Reseed(db, DefaultSite()); err != nil {
		t.Fatalf("initial reseed: %v", err)
	}
	p1, s1 := counts(t, db)

	// Child declared before its parent
	bad := Site{Pages: []PageSeed{
		{ID: "child", Name: "Child", Path: "/c", ParentID: "parent"},
		{ID: "parent", Name: "Parent", Path: "/p"},
	}}
	if _, err := Reseed(db, bad); err == nil {
		t.Fatal("expected validation error for parent declared after child")
	}

	p2, s2 := counts(t, db)
	if p1 != p2 || s1 != s2 {
		t.Errorf("failed reseed modified the store: (%d,%d) -> (%d,%d)", p1, s1, p2, s2)
	}
}

func TestReseed_FailureRollsBackWholesale(t *testing.T) {
	db := testsupport.NewTestDB(t)

	if _, err := Reseed(db, DefaultSite()); err != nil {
		t.Fatalf("initial reseed: %v", err)
	}
	p1, s1 := counts(t, db)

	// Invalid section type trips the CHECK constraint mid-run; the earlier
	// deletes and inserts must all roll back.
	bad := Site{Pages: []PageSeed{
		{ID: "home", Name: "Home", Path: "/", Sections: []SectionSeed{
			{ID: "broken_en", Type: "video", Label: "Broken", Content: "x"},
		}},
	}}
	if _, err := Reseed(db, bad); err == nil {
		t.Fatal("expected storage error for invalid section type")
	}

	p2, s2 := counts(t, db)
	if p1 != p2 || s1 != s2 {
		t.Errorf("partial application after failed reseed: (%d,%d) -> (%d,%d)", p1, s1, p2, s2)
	}
}

func TestDefaultSite_SectionsComeInLocalePairs(t *testing.T) {
	site := DefaultSite()

	seen := map[string]map[string]bool{}
	for _, p := range site.Pages {
		for _, s := range p.Sections {
			var base, locale string
			switch {
			case len(s.ID) > 3 && s.ID[len(s.ID)-3:] == "_en":
				base, locale = s.ID[:len(s.ID)-3], "en"
			case len(s.ID) > 3 && s.ID[len(s.ID)-3:] == "_bg":
				base, locale = s.ID[:len(s.ID)-3], "bg"
			default:
				t.Errorf("section %q does not follow the <slug>_<locale> convention", s.ID)
				continue
			}
			if seen[base] == nil {
				seen[base] = map[string]bool{}
			}
			seen[base][locale] = true
		}
	}

	for base, locales := range seen {
		if !locales["en"] || !locales["bg"] {
			t.Errorf("field %q is missing one locale edition: %v", base, locales)
		}
	}
}
