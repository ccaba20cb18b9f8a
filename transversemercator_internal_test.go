package osgrid

import (
	"errors"
	"math"
	"testing"
)

func TestFootpointLatitudeIterationCap(t *testing.T) {
	const northing = 313177.270
	if _, err := footpointLatitude(northing, 1); !errors.Is(err, ErrNotConverged) {
		t.Fatalf("expected ErrNotConverged with a single iteration, got %v", err)
	}
	lat, err := footpointLatitude(northing, maxArcIterations)
	if err != nil {
		t.Fatalf("expected convergence, got %s", err)
	}
	if r := math.Abs(northing - falseNorthing - meridionalArc(lat)); r >= arcTolerance {
		t.Fatalf("expected residual below %g, got %g", arcTolerance, r)
	}
}

func TestFootpointLatitudeConvergesQuickly(t *testing.T) {
	for n := 0.0; n <= 1300000; n += 50000 {
		if _, err := footpointLatitude(n, 8); err != nil {
			t.Fatalf("expected convergence within 8 iterations at northing %f, got %s", n, err)
		}
	}
}

func TestMeridionalArcAtTrueOrigin(t *testing.T) {
	if m := meridionalArc(trueOriginLat); m != 0 {
		t.Fatalf("expected zero arc at the true origin, got %g", m)
	}
}

func TestSquareLettersInvertible(t *testing.T) {
	for e := 0; e <= maxSquareEasting; e++ {
		for n := 0; n <= maxSquareNorthing; n++ {
			letters := squareLetters(e, n)
			e2, n2, err := squareFromLetters(letters[0], letters[1])
			if err != nil {
				t.Fatalf("error decoding %s: %s", letters, err)
			}
			if e2 != e || n2 != n {
				t.Fatalf("%s: expected square (%d, %d), got (%d, %d)", letters, e, n, e2, n2)
			}
		}
	}
}
