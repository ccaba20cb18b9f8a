package osgrid

import "math"

// National Grid projection parameters on the Airy 1830 ellipsoid. Both
// projectors read these; nothing else defines them.
const (
	semiMajorAxis = 6377563.396  // a, metres
	semiMinorAxis = 6356256.910  // b, metres
	scaleFactor   = 0.9996012717 // F0 on the central meridian

	trueOriginLat = 49.0 * (math.Pi / 180.0) // φ0, 49°N in radians
	trueOriginLng = -2.0 * (math.Pi / 180.0) // λ0, 2°W in radians

	falseEasting  = 400000.0  // E0 of the true origin, metres
	falseNorthing = -100000.0 // N0 of the true origin, metres
)

// Derived ellipsoid shape.
const (
	eccentricitySq = 1 - (semiMinorAxis*semiMinorAxis)/(semiMajorAxis*semiMajorAxis)

	helmertN  = (semiMajorAxis - semiMinorAxis) / (semiMajorAxis + semiMinorAxis)
	helmertN2 = helmertN * helmertN
	helmertN3 = helmertN2 * helmertN

	aF0 = semiMajorAxis * scaleFactor
	bF0 = semiMinorAxis * scaleFactor
)

// Meridional arc series coefficients.
const (
	arcMa = 1 + helmertN + (5.0/4.0)*helmertN2 + (5.0/4.0)*helmertN3
	arcMb = 3*helmertN + 3*helmertN2 + (21.0/8.0)*helmertN3
	arcMc = (15.0/8.0)*helmertN2 + (15.0/8.0)*helmertN3
	arcMd = (35.0 / 24.0) * helmertN3
)

// meridionalArc returns the distance in metres along the central meridian,
// scaled by F0, from the true origin latitude to lat (radians).
func meridionalArc(lat float64) float64 {
	dLat := lat - trueOriginLat
	sLat := lat + trueOriginLat
	ma := arcMa * dLat
	mb := arcMb * math.Sin(dLat) * math.Cos(sLat)
	mc := arcMc * math.Sin(2*dLat) * math.Cos(2*sLat)
	md := arcMd * math.Sin(3*dLat) * math.Cos(3*sLat)
	return bF0 * (ma - mb + mc - md)
}

// curvature returns the transverse radius of curvature nu, the meridional
// radius of curvature rho (both scaled by F0) and eta² = nu/rho - 1 at the
// latitude whose sine is sinLat.
func curvature(sinLat float64) (nu, rho, eta2 float64) {
	t := 1 - eccentricitySq*sinLat*sinLat
	nu = aF0 / math.Sqrt(t)
	rho = aF0 * (1 - eccentricitySq) / math.Pow(t, 1.5)
	eta2 = nu/rho - 1
	return nu, rho, eta2
}
