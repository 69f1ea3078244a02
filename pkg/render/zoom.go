package render

import (
	"math"
	"strconv"
)

// Zoom is the on-screen scale of the preview page.
type Zoom float64

const (
	DefaultZoom Zoom = 0.7
	MinZoom     Zoom = 0.4
	MaxZoom     Zoom = 1.2
	zoomStep         = 0.1
)

func (z Zoom) In() Zoom  { return ClampZoom(z + zoomStep) }
func (z Zoom) Out() Zoom { return ClampZoom(z - zoomStep) }

func (z Zoom) Percent() int {
	return int(math.Round(float64(z) * 100))
}

// ClampZoom rounds z to two decimals and bounds it to [MinZoom, MaxZoom].
func ClampZoom(z Zoom) Zoom {
	z = Zoom(math.Round(float64(z)*100) / 100)
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// ParseZoom parses a zoom factor, falling back to DefaultZoom.
func ParseZoom(s string) Zoom {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultZoom
	}
	return ClampZoom(Zoom(v))
}
