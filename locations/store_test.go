package locations

import (
	"context"
	"testing"

	"tourcab/models"
	"tourcab/store"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), store.Deps{Backend: store.NewMemoryBackend()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestCoordinatesReplacedWhole(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	coords := models.Coordinates{Lat: 20.1}
	found, err := s.Update(ctx, "loc-ajanta", models.LocationPatch{Coordinates: &coords})
	if err != nil || !found {
		t.Fatalf("Update = %v, %v", found, err)
	}
	got, _ := s.Get("loc-ajanta")
	if got.Coordinates != coords {
		t.Errorf("coordinates = %+v, want %+v", got.Coordinates, coords)
	}
	if got.Name != "Ajanta Caves" {
		t.Errorf("name changed to %q", got.Name)
	}
}

func TestToggleStatusAndStats(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	st := s.Stats()
	if st.Total != 6 || st.Active != 5 || st.Inactive != 1 || st.ByType[models.LocationCave] != 2 {
		t.Fatalf("stats = %+v", st)
	}

	if _, err := s.ToggleStatus(ctx, "loc-aurangabad"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Active()); got != 6 {
		t.Errorf("active = %d", got)
	}
	if _, err := s.ToggleStatus(ctx, "loc-ellora"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.ByType(models.LocationCave)); got != 2 {
		t.Errorf("caves = %d", got)
	}
	if got := len(s.Active()); got != 5 {
		t.Errorf("active after = %d", got)
	}
}

func TestAddDefaultsToActive(t *testing.T) {
	s := newStore(t)
	l, err := s.Add(context.Background(), models.Location{Name: "Lonar Lake", Type: models.LocationHeritage})
	if err != nil {
		t.Fatal(err)
	}
	if l.ID == "" || l.Status != models.LocationActive {
		t.Errorf("added = %+v", l)
	}
}
