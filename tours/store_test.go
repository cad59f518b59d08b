package tours

import (
	"bytes"
	"context"
	"reflect"
	"testing"
	"time"

	"tourcab/idgen"
	"tourcab/models"
	"tourcab/store"
)

var fixedNow = time.Date(2025, time.March, 1, 10, 30, 0, 0, time.UTC)

func newStore(t *testing.T, backend store.Backend) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), store.Deps{
		Backend: backend,
		IDs:     idgen.Prefixed{Prefix: "tour", Counter: idgen.NewCounter(100)},
		Now:     func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestAddAssignsIDAndCreatedAt(t *testing.T) {
	s := newStore(t, store.NewMemoryBackend())
	before := len(s.List())

	in := models.Tour{Title: "Lonar Crater", Description: "Meteor lake", Price: 2800, Duration: "8 hours", Location: "Lonar"}
	got, err := s.Add(context.Background(), in)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != "tour-100" {
		t.Errorf("id = %q", got.ID)
	}
	if !got.CreatedAt.Equal(fixedNow) {
		t.Errorf("createdAt = %v", got.CreatedAt)
	}

	list := s.List()
	if len(list) != before+1 {
		t.Fatalf("len = %d, want %d", len(list), before+1)
	}
	want := in
	want.ID = got.ID
	want.CreatedAt = fixedNow
	if !reflect.DeepEqual(list[len(list)-1], want) {
		t.Errorf("appended = %+v", list[len(list)-1])
	}
}

func TestReopenRoundTrip(t *testing.T) {
	backend := store.NewMemoryBackend()
	s := newStore(t, backend)
	if _, err := s.Add(context.Background(), models.Tour{Title: "Paithan", Price: 1200}); err != nil {
		t.Fatal(err)
	}

	reopened := newStore(t, backend)
	if !reflect.DeepEqual(reopened.List(), s.List()) {
		t.Error("reopened list differs")
	}
}

func TestUpdatePatchesOneField(t *testing.T) {
	s := newStore(t, store.NewMemoryBackend())
	before := s.List()

	price := 4000.0
	found, err := s.Update(context.Background(), "tour-ajanta", models.TourPatch{Price: &price})
	if err != nil || !found {
		t.Fatalf("Update = %v, %v", found, err)
	}

	after := s.List()
	for i := range before {
		want := before[i]
		if want.ID == "tour-ajanta" {
			want.Price = 4000
		}
		if !reflect.DeepEqual(after[i], want) {
			t.Errorf("record %d = %+v, want %+v", i, after[i], want)
		}
	}
}

func TestUpdateAndDeleteUnknownID(t *testing.T) {
	backend := store.NewMemoryBackend()
	s := newStore(t, backend)
	ctx := context.Background()
	raw, _, _ := backend.Get(ctx, store.SlotTours)

	title := "x"
	if found, err := s.Update(ctx, "missing", models.TourPatch{Title: &title}); found || err != nil {
		t.Errorf("Update = %v, %v", found, err)
	}
	if found, err := s.Delete(ctx, "missing"); found || err != nil {
		t.Errorf("Delete = %v, %v", found, err)
	}
	after, _, _ := backend.Get(ctx, store.SlotTours)
	if !bytes.Equal(raw, after) {
		t.Error("slot changed")
	}
}

func TestToggleFeaturedAndStats(t *testing.T) {
	s := newStore(t, store.NewMemoryBackend())
	ctx := context.Background()

	st := s.Stats()
	if st.Total != 4 || st.Featured != 2 {
		t.Fatalf("stats = %+v", st)
	}
	if st.AveragePrice != (3500+2200+1500+1800)/4.0 {
		t.Errorf("averagePrice = %v", st.AveragePrice)
	}

	if _, err := s.ToggleFeatured(ctx, "tour-city"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Featured()); got != 3 {
		t.Errorf("featured = %d", got)
	}
	if got := s.ByLocation("ellora"); len(got) != 1 || got[0].ID != "tour-ellora" {
		t.Errorf("ByLocation = %+v", got)
	}
}

func TestDeleteManyKeepsOrder(t *testing.T) {
	s := newStore(t, store.NewMemoryBackend())
	n, err := s.DeleteMany(context.Background(), []string{"tour-ellora", "tour-daulatabad", "nope"})
	if err != nil || n != 2 {
		t.Fatalf("DeleteMany = %d, %v", n, err)
	}
	list := s.List()
	if len(list) != 2 || list[0].ID != "tour-ajanta" || list[1].ID != "tour-city" {
		t.Errorf("remaining = %+v", list)
	}
}
