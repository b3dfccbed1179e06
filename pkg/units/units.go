// Package units converts between the measurement systems the card
// pipeline deals in: centimeters and millimeters for card geometry,
// points for font sizes and PDF dimensions, and device pixels for
// on-screen display at a given resolution.
//
// Conversions are exact; no rounding happens here. Callers round only at
// final display or render boundaries.
package units

const (
	// MmPerInch is the metric definition of the inch.
	MmPerInch = 25.4
	// CmPerInch is MmPerInch expressed in centimeters.
	CmPerInch = 2.54
	// PointsPerInch is the PostScript point density.
	PointsPerInch = 72.0
)

// CmToPixels converts centimeters to device pixels at the given dpi.
func CmToPixels(cm, dpi float64) float64 {
	return cm / CmPerInch * dpi
}

// MmToPixels converts millimeters to device pixels at the given dpi.
func MmToPixels(mm, dpi float64) float64 {
	return mm / MmPerInch * dpi
}

// PixelsToMm converts device pixels at the given dpi back to millimeters.
// It is the inverse of MmToPixels within floating-point tolerance.
func PixelsToMm(px, dpi float64) float64 {
	return px * MmPerInch / dpi
}

// MmToPoints converts millimeters to PostScript points.
func MmToPoints(mm float64) float64 {
	return mm / MmPerInch * PointsPerInch
}

// PointsToMm converts PostScript points to millimeters.
func PointsToMm(pt float64) float64 {
	return pt / PointsPerInch * MmPerInch
}
