package game

import (
	"fmt"
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// snap rounds v to the nearest lo + k*step and clamps it to [lo, hi].
func snap(v, lo, hi, step float64) float64 {
	if step > 0 {
		v = lo + math.Round((v-lo)/step)*step
		// keep two-decimal steps free of float noise
		v = math.Round(v*1e9) / 1e9
	}

	return math.Min(hi, math.Max(lo, v))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
