// Package osgrid converts between OSGB36 latitude/longitude, British National
// Grid eastings and northings, and lettered grid references.
package osgrid

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// GeodeticCoordinate is a latitude and longitude in degrees on the OSGB36
// datum (Airy 1830 ellipsoid). Coordinates from a GPS receiver are WGS84 and
// must be shifted to OSGB36 before use; this package does not do that.
type GeodeticCoordinate struct {
	Latitude  float64
	Longitude float64
}

// LatitudeRadians returns the latitude in radians.
func (g GeodeticCoordinate) LatitudeRadians() float64 {
	return (s1.Angle(g.Latitude) * s1.Degree).Radians()
}

// LongitudeRadians returns the longitude in radians.
func (g GeodeticCoordinate) LongitudeRadians() float64 {
	return (s1.Angle(g.Longitude) * s1.Degree).Radians()
}

// LatLng returns the coordinate as an s2.LatLng.
func (g GeodeticCoordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(g.Latitude, g.Longitude)
}

// Point returns the coordinate as an orb.Point, longitude first.
func (g GeodeticCoordinate) Point() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}

func (g GeodeticCoordinate) String() string {
	return fmt.Sprintf("%.8f, %.8f", g.Latitude, g.Longitude)
}

// GeodeticFromLatLng converts an s2.LatLng to a GeodeticCoordinate.
func GeodeticFromLatLng(ll s2.LatLng) GeodeticCoordinate {
	return GeodeticCoordinate{Latitude: ll.Lat.Degrees(), Longitude: ll.Lng.Degrees()}
}

// GeodeticFromPoint converts an orb.Point (longitude, latitude) to a
// GeodeticCoordinate.
func GeodeticFromPoint(p orb.Point) GeodeticCoordinate {
	return GeodeticCoordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// geodeticFromRadians builds a coordinate from radian values.
func geodeticFromRadians(lat, lng float64) GeodeticCoordinate {
	return GeodeticCoordinate{
		Latitude:  s1.Angle(lat).Degrees(),
		Longitude: s1.Angle(lng).Degrees(),
	}
}

// GridCoordinate is an easting and northing in metres from the National Grid
// false origin.
type GridCoordinate struct {
	Easting  float64
	Northing float64
}

// Point returns the coordinate as an orb.Point, easting first.
func (g GridCoordinate) Point() orb.Point {
	return orb.Point{g.Easting, g.Northing}
}

func (g GridCoordinate) String() string {
	return fmt.Sprintf("E %.3f N %.3f", g.Easting, g.Northing)
}
