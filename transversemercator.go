package osgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// ErrNotConverged is returned when the meridional arc solve in
// ConvertToGeodetic does not reach its tolerance.
var ErrNotConverged = errors.New("latitude did not converge")

const (
	arcTolerance     = 1e-5 // metres, ie 0.01mm
	maxArcIterations = 30
)

// ToGrid is the forward projection as an orb.Projection, mapping
// (longitude, latitude) in degrees to (easting, northing) in metres.
var ToGrid orb.Projection = func(p orb.Point) orb.Point {
	return ConvertFromGeodetic(GeodeticFromPoint(p)).Point()
}

// ProjectGeometry returns a copy of g, given in OSGB36 longitude/latitude
// degrees, projected onto the National Grid.
func ProjectGeometry(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), ToGrid)
}

// ConvertFromGeodetic converts an OSGB36 latitude and longitude to a National
// Grid easting and northing using the Redfearn transverse Mercator series.
func ConvertFromGeodetic(geodeticCoordinates GeodeticCoordinate) GridCoordinate {
	lat := geodeticCoordinates.LatitudeRadians()
	lng := geodeticCoordinates.LongitudeRadians()

	sinLat, cosLat := math.Sincos(lat)
	nu, rho, eta2 := curvature(sinLat)
	m := meridionalArc(lat)

	cos3Lat := cosLat * cosLat * cosLat
	cos5Lat := cos3Lat * cosLat * cosLat
	tanLat := math.Tan(lat)
	tan2Lat := tanLat * tanLat
	tan4Lat := tan2Lat * tan2Lat

	i := m + falseNorthing
	ii := (nu / 2) * sinLat * cosLat
	iii := (nu / 24) * sinLat * cos3Lat * (5 - tan2Lat + 9*eta2)
	iiiA := (nu / 720) * sinLat * cos5Lat * (61 - 58*tan2Lat + tan4Lat)
	iv := nu * cosLat
	v := (nu / 6) * cos3Lat * (nu/rho - tan2Lat)
	vi := (nu / 120) * cos5Lat * (5 - 18*tan2Lat + tan4Lat + 14*eta2 - 58*tan2Lat*eta2)

	dLng := lng - trueOriginLng
	dLng2 := dLng * dLng
	dLng3 := dLng2 * dLng
	dLng4 := dLng3 * dLng
	dLng5 := dLng4 * dLng
	dLng6 := dLng5 * dLng

	return GridCoordinate{
		Easting:  falseEasting + iv*dLng + v*dLng3 + vi*dLng5,
		Northing: i + ii*dLng2 + iii*dLng4 + iiiA*dLng6,
	}
}

// ConvertToGeodetic converts a National Grid easting and northing to an OSGB36
// latitude and longitude. It fails with ErrNotConverged if the footpoint
// latitude cannot be found, which only happens far outside the grid.
func ConvertToGeodetic(gridCoordinates GridCoordinate) (GeodeticCoordinate, error) {
	easting := gridCoordinates.Easting
	northing := gridCoordinates.Northing

	lat, err := footpointLatitude(northing, maxArcIterations)
	if err != nil {
		return GeodeticCoordinate{}, err
	}

	sinLat, cosLat := math.Sincos(lat)
	nu, rho, eta2 := curvature(sinLat)

	tanLat := math.Tan(lat)
	tan2Lat := tanLat * tanLat
	tan4Lat := tan2Lat * tan2Lat
	tan6Lat := tan4Lat * tan2Lat
	secLat := 1 / cosLat
	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	vii := tanLat / (2 * rho * nu)
	viii := tanLat / (24 * rho * nu3) * (5 + 3*tan2Lat + eta2 - 9*tan2Lat*eta2)
	ix := tanLat / (720 * rho * nu5) * (61 + 90*tan2Lat + 45*tan4Lat)
	x := secLat / nu
	xi := secLat / (6 * nu3) * (nu/rho + 2*tan2Lat)
	xii := secLat / (120 * nu5) * (5 + 28*tan2Lat + 24*tan4Lat)
	xiiA := secLat / (5040 * nu7) * (61 + 662*tan2Lat + 1320*tan4Lat + 720*tan6Lat)

	dE := easting - falseEasting
	dE2 := dE * dE
	dE3 := dE2 * dE
	dE4 := dE2 * dE2
	dE5 := dE3 * dE2
	dE6 := dE4 * dE2
	dE7 := dE5 * dE2

	latitude := lat - vii*dE2 + viii*dE4 - ix*dE6
	longitude := trueOriginLng + x*dE - xi*dE3 + xii*dE5 - xiiA*dE7
	return geodeticFromRadians(latitude, longitude), nil
}

// footpointLatitude solves meridionalArc(lat) = northing - N0 by fixed point
// iteration, giving up after maxIter steps or once lat leaves [-90°, 90°].
func footpointLatitude(northing float64, maxIter int) (float64, error) {
	lat := trueOriginLat
	m := 0.0
	for n := 0; n < maxIter; n++ {
		lat += (northing - falseNorthing - m) / aF0
		if math.Abs(lat) > math.Pi/2 {
			return 0, fmt.Errorf("%w: northing %g puts latitude beyond the pole", ErrNotConverged, northing)
		}
		m = meridionalArc(lat)
		if math.Abs(northing-falseNorthing-m) < arcTolerance {
			return lat, nil
		}
	}
	return 0, fmt.Errorf("%w: northing %g after %d iterations", ErrNotConverged, northing, maxIter)
}
