package domain

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	hamburg := Coordinates{Lat: 53.5511, Lon: 9.9937}
	berlin := Coordinates{Lat: 52.5200, Lon: 13.4050}

	got := HaversineKm(hamburg, berlin)
	if math.Abs(got-255.0) > 5.0 {
		t.Fatalf("Hamburg-Berlin distance = %.1f km, want ~255 km", got)
	}

	if d := HaversineKm(hamburg, hamburg); d != 0 {
		t.Fatalf("zero distance = %f, want 0", d)
	}
}
