package seatmap

import (
	"reflect"
	"testing"
)

func newTestStore(t *testing.T, total int, occupied, reserved []int) *Store {
	t.Helper()
	s := New(NewPassengerStore())
	if err := s.Initialize(total, occupied, reserved); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return s
}

func TestInitializeStatuses(t *testing.T) {
	s := newTestStore(t, 60, []int{5, 13}, []int{60})

	counts := s.CountByStatus()
	if counts[StatusAvailable] != 57 || counts[StatusOccupied] != 2 || counts[StatusReserved] != 1 {
		t.Fatalf("counts = %v, want 57 available, 2 occupied, 1 reserved", counts)
	}
	for seat, want := range map[int]Status{5: StatusOccupied, 13: StatusOccupied, 60: StatusReserved, 1: StatusAvailable} {
		if st, ok := s.Status(seat); !ok || st != want {
			t.Errorf("Status(%d) = %v,%v, want %v", seat, st, ok, want)
		}
	}
}

func TestInitializeOccupiedWinsOverReserved(t *testing.T) {
	s := newTestStore(t, 10, []int{4}, []int{4})
	if st, _ := s.Status(4); st != StatusOccupied {
		t.Fatalf("Status(4) = %v, want occupied", st)
	}
}

func TestInitializeIgnoresOutOfRangeSeats(t *testing.T) {
	s := newTestStore(t, 10, []int{0, 11, -3}, []int{99})
	if got := s.CountByStatus()[StatusAvailable]; got != 10 {
		t.Fatalf("available = %d, want 10", got)
	}
}

func TestInitializeRejectsInvalidCapacity(t *testing.T) {
	s := New(NewPassengerStore())
	if err := s.Initialize(0, nil, nil); err == nil {
		t.Fatal("Initialize(0) should fail")
	}
}

func TestInitializeIsIdempotentAndClearsSelection(t *testing.T) {
	s := newTestStore(t, 10, []int{2}, []int{9})
	s.Toggle(1)
	s.Passengers().SetName(1, "Ana")

	if err := s.Initialize(10, []int{2}, []int{9}); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}
	if st, _ := s.Status(1); st != StatusAvailable {
		t.Errorf("Status(1) = %v after re-initialize, want available", st)
	}
	if s.Passengers().Len() != 0 {
		t.Errorf("passenger records = %d after re-initialize, want 0", s.Passengers().Len())
	}
	want := map[Status]int{StatusAvailable: 8, StatusOccupied: 1, StatusReserved: 1}
	if got := s.CountByStatus(); !reflect.DeepEqual(got, want) {
		t.Errorf("counts = %v, want %v", got, want)
	}
}

func TestToggleKeepsPassengerStoreInLockstep(t *testing.T) {
	s := newTestStore(t, 10, nil, nil)

	if st, ok := s.Toggle(3); !ok || st != StatusSelected {
		t.Fatalf("Toggle(3) = %v,%v, want selected,true", st, ok)
	}
	if _, ok := s.Passengers().Get(3); !ok {
		t.Fatal("selecting a seat must create its passenger record")
	}

	if st, ok := s.Toggle(3); !ok || st != StatusAvailable {
		t.Fatalf("second Toggle(3) = %v,%v, want available,true", st, ok)
	}
	if _, ok := s.Passengers().Get(3); ok {
		t.Fatal("deselecting a seat must drop its passenger record")
	}
}

func TestToggleRejectsServerOwnedAndUnknownSeats(t *testing.T) {
	s := newTestStore(t, 10, []int{2}, []int{9})

	for _, seat := range []int{2, 9, 0, 11} {
		if _, ok := s.Toggle(seat); ok {
			t.Errorf("Toggle(%d) applied, want rejected", seat)
		}
	}
	if st, _ := s.Status(2); st != StatusOccupied {
		t.Errorf("Status(2) = %v after rejected toggle, want occupied", st)
	}
	if st, _ := s.Status(9); st != StatusReserved {
		t.Errorf("Status(9) = %v after rejected toggle, want reserved", st)
	}
}

func TestResetClearsOnlyTheSelection(t *testing.T) {
	s := newTestStore(t, 10, []int{2}, []int{9})
	s.Toggle(1)
	s.Toggle(4)
	s.Passengers().SetName(1, "Ana Torres")

	s.Reset()

	if got := s.SelectionCount(); got != 0 {
		t.Errorf("selection = %d after reset, want 0", got)
	}
	if s.Passengers().Len() != 0 {
		t.Errorf("passenger records = %d after reset, want 0", s.Passengers().Len())
	}
	if st, _ := s.Status(2); st != StatusOccupied {
		t.Errorf("Status(2) = %v after reset, want occupied", st)
	}
	if st, _ := s.Status(9); st != StatusReserved {
		t.Errorf("Status(9) = %v after reset, want reserved", st)
	}
}

func TestSelectionDerivation(t *testing.T) {
	s := newTestStore(t, 10, nil, nil)
	s.Toggle(7)
	s.Toggle(3)
	s.Toggle(5)
	s.Toggle(5) // deselect again

	if got := s.SelectedSeats(); !reflect.DeepEqual(got, []int{3, 7}) {
		t.Errorf("SelectedSeats = %v, want [3 7]", got)
	}
	if got := s.SelectionCount(); got != 2 {
		t.Errorf("SelectionCount = %d, want 2", got)
	}
	if got := s.SelectionTotal(95); got != 190 {
		t.Errorf("SelectionTotal(95) = %v, want 190", got)
	}
}
