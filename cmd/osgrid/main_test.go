package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tzneal/osgrid"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		env  string
		args []string
		want string
	}{
		{"default digits", "", []string{"52.65757031", "1.71792158"}, "TG\n51409 13177\n"},
		{"digits flag", "", []string{"-digits", "6", "52.65757031", "1.71792158"}, "TG\n514 131\n"},
		{"digits from env", "4", []string{"52.65757031", "1.71792158"}, "TG\n51 13\n"},
		{"flag overrides env", "4", []string{"-digits", "8", "52.65757031", "1.71792158"}, "TG\n5140 1317\n"},
		{"unparsable env", "six", []string{"52.65757031", "1.71792158"}, "TG\n51409 13177\n"},
		{"reverse", "", []string{"-reverse", "TG", "51409", "13177"}, "52.657568 1.717908\n"},
		{"reverse one word", "", []string{"-reverse", "nn166712"}, "56.796270 -5.003489\n"},
		{"reverse en", "", []string{"-reverse", "-en", "651409.903", "313177.270"}, "52.657570 1.717922\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OSGRID_DIGITS", tc.env)
			var buf bytes.Buffer
			if err := run(tc.args, &buf); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		err  error
	}{
		{"outside grid", []string{"40", "-2"}, osgrid.ErrOutsideGrid},
		{"bad digits", []string{"-digits", "5", "52.65757031", "1.71792158"}, osgrid.ErrInvalidDigits},
		{"bad digits outside grid", []string{"-digits", "5", "40", "-2"}, osgrid.ErrInvalidDigits},
		{"bad grid reference", []string{"-reverse", "ZZ", "12", "34"}, osgrid.ErrOutsideGrid},
		{"not converged", []string{"-reverse", "-en", "400000", "1e12"}, osgrid.ErrNotConverged},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OSGRID_DIGITS", "")
			var buf bytes.Buffer
			err := run(tc.args, &buf)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if buf.Len() != 0 {
				t.Fatalf("expected no output, got %q", buf.String())
			}
		})
	}

	for _, args := range [][]string{
		{},
		{"52.6"},
		{"north", "1.7"},
		{"-reverse"},
		{"-reverse", "-en", "651409"},
		{"-reverse", "-en", "651409", "north"},
	} {
		if err := run(args, &bytes.Buffer{}); err == nil {
			t.Errorf("%q: expected an error", args)
		}
	}
}

func TestRunGeoJSON(t *testing.T) {
	t.Setenv("OSGRID_DIGITS", "")
	var buf bytes.Buffer
	if err := run([]string{"-geojson", "52.65757031", "1.71792158"}, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := geojson.UnmarshalFeature(buf.Bytes())
	if err != nil {
		t.Fatalf("error decoding feature: %v", err)
	}
	p, ok := f.Geometry.(orb.Point)
	if !ok {
		t.Fatalf("expected a point, got %T", f.Geometry)
	}
	if p != (orb.Point{1.71792158, 52.65757031}) {
		t.Fatalf("expected [1.71792158 52.65757031], got %v", p)
	}
	if got := f.Properties.MustString("gridref"); got != "TG 51409 13177" {
		t.Fatalf("expected TG 51409 13177, got %q", got)
	}

	buf.Reset()
	if err := run([]string{"-reverse", "-geojson", "TG 51409 13177"}, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err = geojson.UnmarshalFeature(buf.Bytes())
	if err != nil {
		t.Fatalf("error decoding feature: %v", err)
	}
	if got := f.Properties.MustFloat64("easting"); got != 651409 {
		t.Fatalf("expected easting 651409, got %f", got)
	}
	if got := f.Properties.MustFloat64("northing"); got != 313177 {
		t.Fatalf("expected northing 313177, got %f", got)
	}
}
