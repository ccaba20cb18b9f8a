// Command osgrid converts OSGB36 latitude/longitude to British National Grid
// references and back.
//
//	osgrid [-digits N] [-geojson] <lat> <lon>
//	osgrid -reverse [-geojson] <gridref>
//	osgrid -reverse -en [-geojson] <easting> <northing>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/paulmach/orb/geojson"
	"github.com/tzneal/osgrid"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("osgrid: ")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("error loading .env: %v", err)
	}

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

// run parses args and writes the conversion to w.
func run(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("osgrid", flag.ContinueOnError)
	digits := flags.Int("digits", envInt("OSGRID_DIGITS", osgrid.DefaultDigits),
		"grid reference resolution: 4, 6, 8 or 10 (env OSGRID_DIGITS)")
	reverse := flags.Bool("reverse", false, "convert a grid reference to latitude/longitude")
	en := flags.Bool("en", false, "with -reverse, read an easting and northing in metres")
	asGeoJSON := flags.Bool("geojson", false, "write a GeoJSON feature")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: osgrid [flags] <lat> <lon>\n       osgrid -reverse [flags] <gridref>\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *reverse {
		return toGeodetic(w, flags.Args(), *en, *asGeoJSON)
	}
	return fromGeodetic(w, flags.Args(), *digits, *asGeoJSON)
}

func fromGeodetic(w io.Writer, args []string, digits int, asGeoJSON bool) error {
	if len(args) != 2 {
		return fmt.Errorf("expected latitude and longitude, got %d arguments", len(args))
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", args[0], err)
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q: %w", args[1], err)
	}

	geo := osgrid.GeodeticCoordinate{Latitude: lat, Longitude: lng}
	grid := osgrid.ConvertFromGeodetic(geo)
	numbers, err := grid.Numbers(digits)
	if err != nil {
		return err
	}
	letters, err := grid.Letters()
	if err != nil {
		return err
	}

	if asGeoJSON {
		f := geojson.NewFeature(geo.Point())
		f.Properties["gridref"] = letters + " " + numbers
		f.Properties["easting"] = grid.Easting
		f.Properties["northing"] = grid.Northing
		return writeFeature(w, f)
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", letters, numbers)
	return err
}

func toGeodetic(w io.Writer, args []string, en, asGeoJSON bool) error {
	var grid osgrid.GridCoordinate
	var gridRef string
	if en {
		if len(args) != 2 {
			return fmt.Errorf("expected easting and northing, got %d arguments", len(args))
		}
		var err error
		if grid.Easting, err = strconv.ParseFloat(args[0], 64); err != nil {
			return fmt.Errorf("invalid easting %q: %w", args[0], err)
		}
		if grid.Northing, err = strconv.ParseFloat(args[1], 64); err != nil {
			return fmt.Errorf("invalid northing %q: %w", args[1], err)
		}
	} else {
		if len(args) == 0 {
			return errors.New("expected a grid reference")
		}
		gridRef = strings.Join(args, " ")
		var err error
		if grid, _, err = osgrid.ParseGridRef(gridRef); err != nil {
			return err
		}
	}

	geo, err := osgrid.ConvertToGeodetic(grid)
	if err != nil {
		return err
	}

	if asGeoJSON {
		f := geojson.NewFeature(geo.Point())
		if gridRef != "" {
			f.Properties["gridref"] = strings.ToUpper(gridRef)
		}
		f.Properties["easting"] = grid.Easting
		f.Properties["northing"] = grid.Northing
		return writeFeature(w, f)
	}
	_, err = fmt.Fprintf(w, "%.6f %.6f\n", geo.Latitude, geo.Longitude)
	return err
}

func writeFeature(w io.Writer, f *geojson.Feature) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return i
}
