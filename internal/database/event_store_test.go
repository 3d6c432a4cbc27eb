package database

import (
	"reflect"
	"testing"

	"github.com/jobtrail/jobtrail/internal/models"
)

func newTestStore(t *testing.T) *EventStore {
	t.Helper()
	db, err := Connect(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	s := NewEventStore(db)
	if err := s.InitSchema(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return s
}

func insertEvent(t *testing.T, s *EventStore, company string, stack []string) *models.JobEvent {
	t.Helper()
	ev := &models.JobEvent{
		JobTitle:       "Engineer",
		CompanyName:    company,
		JobDescription: "desc",
		TechStack:      models.JoinTechStack(stack),
	}
	if _, err := s.Insert(ev); err != nil {
		t.Fatalf("insert: %v", err)
	}
	return ev
}

func TestInitSchemaIdempotent(t *testing.T) {
	s := newTestStore(t)
	insertEvent(t, s, "Acme", nil)

	if err := s.InitSchema(); err != nil {
		t.Fatalf("second InitSchema: %v", err)
	}

	events, err := s.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Errorf("re-running InitSchema lost rows: got %d, want 1", len(events))
	}
}

func TestInsertAssignsIDAndDateCreated(t *testing.T) {
	s := newTestStore(t)

	ev := insertEvent(t, s, "Acme", nil)
	if ev.ID == 0 {
		t.Error("insert did not assign an id")
	}
	if ev.DateCreated.IsZero() {
		t.Error("insert did not populate date_created")
	}

	second := insertEvent(t, s, "Globex", nil)
	if second.ID <= ev.ID {
		t.Errorf("ids should grow with insertion order: %d then %d", ev.ID, second.ID)
	}
}

func TestTechStackRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ev := insertEvent(t, s, "Acme", []string{"Python", "Go"})

	got, err := s.GetByID(ev.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("row vanished")
	}
	if got.TechStack == nil || *got.TechStack != "Python,Go" {
		t.Fatalf("stored tech_stack = %v, want \"Python,Go\"", got.TechStack)
	}
	if want := []string{"Python", "Go"}; !reflect.DeepEqual(models.SplitTechStack(got.TechStack), want) {
		t.Errorf("re-split = %v, want %v", models.SplitTechStack(got.TechStack), want)
	}
}

func TestTechStackNullVsEmptyDistinguishable(t *testing.T) {
	s := newTestStore(t)
	noList := insertEvent(t, s, "Acme", nil)
	emptyList := insertEvent(t, s, "Globex", []string{})

	gotNoList, err := s.GetByID(noList.ID)
	if err != nil {
		t.Fatal(err)
	}
	gotEmpty, err := s.GetByID(emptyList.ID)
	if err != nil {
		t.Fatal(err)
	}

	if gotNoList.TechStack != nil {
		t.Errorf("no-list marker should round-trip as NULL, got %q", *gotNoList.TechStack)
	}
	if gotEmpty.TechStack == nil || *gotEmpty.TechStack != "" {
		t.Errorf("empty list should round-trip as empty string, got %v", gotEmpty.TechStack)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetByID(999)
	if err != nil {
		t.Fatalf("absent id should not error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent id, got %+v", got)
	}
}

func TestDeleteByIDIdempotent(t *testing.T) {
	s := newTestStore(t)
	ev := insertEvent(t, s, "Acme", nil)

	if err := s.DeleteByID(ev.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.DeleteByID(ev.ID); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	if err := s.DeleteByID(12345); err != nil {
		t.Fatalf("deleting a never-existing id should be a no-op: %v", err)
	}

	got, err := s.GetByID(ev.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("row survived deletion")
	}
}

func TestCountByCompany(t *testing.T) {
	s := newTestStore(t)
	insertEvent(t, s, "Acme", nil)
	insertEvent(t, s, "Acme", nil)
	insertEvent(t, s, "Globex", nil)

	rows, err := s.CountByCompany()
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.CompanyName] = r.Count
	}
	if counts["Acme"] != 2 || counts["Globex"] != 1 {
		t.Errorf("unexpected company counts: %v", counts)
	}
}

func TestCountByDay(t *testing.T) {
	s := newTestStore(t)
	insertEvent(t, s, "Acme", nil)
	insertEvent(t, s, "Globex", nil)

	rows, err := s.CountByDay()
	if err != nil {
		t.Fatal(err)
	}
	// The two inserts happen back to back, so they land in one bucket, or
	// two when the test straddles midnight.
	if len(rows) == 0 || len(rows) > 2 {
		t.Fatalf("expected one or two day buckets, got %d", len(rows))
	}
	total := 0
	for _, r := range rows {
		if r.Day == "" {
			t.Error("bucket day should not be empty")
		}
		total += r.Count
	}
	if total != 2 {
		t.Errorf("total across buckets = %d, want 2", total)
	}
}

func TestTechStacksSkipsNullAndEmpty(t *testing.T) {
	s := newTestStore(t)
	insertEvent(t, s, "Acme", []string{"Go", "SQL"})
	insertEvent(t, s, "Globex", nil)
	insertEvent(t, s, "Initech", []string{})

	stacks, err := s.TechStacks()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Go,SQL"}; !reflect.DeepEqual(stacks, want) {
		t.Errorf("TechStacks = %v, want %v", stacks, want)
	}
}
