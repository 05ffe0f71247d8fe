package domain

import (
	"errors"
	"testing"
)

func TestNewLocationValid(t *testing.T) {
	loc, err := NewLocation("src", 12.935192, 77.624481)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.ID != "src" || loc.Lat != 12.935192 || loc.Lon != 77.624481 {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestNewLocationBoundaries(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"north pole", 90, 0},
		{"south pole", -90, 0},
		{"date line east", 0, 180},
		{"date line west", 0, -180},
	}

	for _, tc := range cases {
		if _, err := NewLocation(tc.name, tc.lat, tc.lon); err != nil {
			t.Errorf("%s: boundary coordinates rejected: %v", tc.name, err)
		}
	}
}

func TestNewLocationRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		id   string
		lat  float64
		lon  float64
		want error
	}{
		{"empty id", "", 0, 0, ErrEmptyLocationID},
		{"lat too high", "a", 90.0001, 0, ErrInvalidLatitude},
		{"lat too low", "a", -91, 0, ErrInvalidLatitude},
		{"lon too high", "a", 0, 180.5, ErrInvalidLongitude},
		{"lon too low", "a", 0, -181, ErrInvalidLongitude},
	}

	for _, tc := range cases {
		_, err := NewLocation(tc.id, tc.lat, tc.lon)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNewOrderPrepTime(t *testing.T) {
	r, _ := NewLocation("r1", 12.927923, 77.627106)
	c, _ := NewLocation("c1", 12.930060, 77.629738)

	if _, err := NewOrder(r, c, 0); err != nil {
		t.Fatalf("zero prep time rejected: %v", err)
	}

	_, err := NewOrder(r, c, -1)
	if !errors.Is(err, ErrNegativePrepTime) {
		t.Fatalf("err = %v, want ErrNegativePrepTime", err)
	}
}
