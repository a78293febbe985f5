package main

import "math"

func roundToInt(f float64) int {
	return int(math.Round(f))
}

// clampCoord keeps a world coordinate inside [0, limit].
func clampCoord(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

// shortRef truncates long refs (base64 data URIs run to kilobytes) for log
// lines.
func shortRef(ref string) string {
	const keep = 48
	if len(ref) <= keep {
		return ref
	}
	return ref[:keep] + "..."
}
