package cars

import (
	"context"
	"reflect"
	"testing"

	"tourcab/idgen"
	"tourcab/models"
	"tourcab/store"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), store.Deps{
		Backend: store.NewMemoryBackend(),
		IDs:     idgen.Prefixed{Prefix: "car", Counter: idgen.NewCounter(7)},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestAddThenToggleAvailability(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	added, err := s.Add(ctx, models.Car{
		Name:         "Test",
		PricePerDay:  10,
		Seats:        4,
		Transmission: models.TransmissionManual,
		Fuel:         models.FuelPetrol,
		Image:        "",
		Available:    true,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	before := s.List()

	found, err := s.ToggleAvailability(ctx, added.ID)
	if err != nil || !found {
		t.Fatalf("ToggleAvailability = %v, %v", found, err)
	}

	after := s.List()
	for i := range before {
		want := before[i]
		if want.ID == added.ID {
			want.Available = false
		}
		if !reflect.DeepEqual(after[i], want) {
			t.Errorf("car %s = %+v, want %+v", want.ID, after[i], want)
		}
	}
}

func TestStats(t *testing.T) {
	s := newStore(t)
	st := s.Stats()
	if st.Total != 5 || st.Available != 4 || st.Unavailable != 1 {
		t.Errorf("stats = %+v", st)
	}
	if st.ByType["suv"] != 2 {
		t.Errorf("byType = %v", st.ByType)
	}
	if got := s.ByType("SUV"); len(got) != 2 {
		t.Errorf("ByType = %d", len(got))
	}
}

func TestUpdateUnknownCar(t *testing.T) {
	s := newStore(t)
	seats := 9
	found, err := s.Update(context.Background(), "car-missing", models.CarPatch{Seats: &seats})
	if found || err != nil {
		t.Errorf("Update = %v, %v", found, err)
	}
}
