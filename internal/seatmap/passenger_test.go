package seatmap

import (
	"reflect"
	"testing"
)

func TestPassengerSettersGateOnSelection(t *testing.T) {
	s := newTestStore(t, 10, nil, nil)
	p := s.Passengers()

	if p.SetName(3, "Ana Torres") {
		t.Error("SetName on an unselected seat must report false")
	}
	if p.SetDocument(3, "45678912") {
		t.Error("SetDocument on an unselected seat must report false")
	}

	s.Toggle(3)
	if !p.SetName(3, "Ana Torres") || !p.SetDocument(3, "45678912") {
		t.Fatal("setters on a selected seat must apply")
	}
	rec, ok := p.Get(3)
	if !ok || rec.FullName != "Ana Torres" || rec.PassengerDoc != "45678912" {
		t.Fatalf("Get(3) = %+v,%v", rec, ok)
	}
}

func TestRecordsAreOrderedBySeat(t *testing.T) {
	s := newTestStore(t, 20, nil, nil)
	for _, seat := range []int{17, 2, 9} {
		s.Toggle(seat)
	}

	if got := s.Passengers().Seats(); !reflect.DeepEqual(got, []int{2, 9, 17}) {
		t.Fatalf("Seats = %v, want [2 9 17]", got)
	}
	recs := s.Passengers().Records()
	for i, want := range []int{2, 9, 17} {
		if recs[i].SeatNumber != want {
			t.Errorf("Records[%d].SeatNumber = %d, want %d", i, recs[i].SeatNumber, want)
		}
	}
}

func TestInvalidFlagsIncompleteRecords(t *testing.T) {
	s := newTestStore(t, 10, nil, nil)
	p := s.Passengers()
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)
	s.Toggle(4)

	p.SetName(1, "Ana Torres")
	p.SetDocument(1, "45678912") // complete

	p.SetName(2, "Luis Paredes")
	p.SetDocument(2, "1234") // too short

	p.SetName(3, "Rosa Flores")
	p.SetDocument(3, "abcdefgh") // not numeric

	p.SetDocument(4, "87654321") // missing name

	if got := p.Invalid(); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Fatalf("Invalid = %v, want [2 3 4]", got)
	}
}

func TestRecordsReturnsCopies(t *testing.T) {
	s := newTestStore(t, 10, nil, nil)
	s.Toggle(5)
	s.Passengers().SetName(5, "Ana Torres")

	recs := s.Passengers().Records()
	recs[0].FullName = "overwritten"

	rec, _ := s.Passengers().Get(5)
	if rec.FullName != "Ana Torres" {
		t.Fatalf("record mutated through Records copy: %q", rec.FullName)
	}
}
