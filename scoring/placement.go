package scoring

import (
	"fmt"
	"time"
)

// Placement returns the player's position in the race: one plus the number of opponents ahead
func Placement(playerY float64, opponentYs []float64) int {
	place := 1
	for _, y := range opponentYs {
		if y < playerY {
			place++
		}
	}
	return place
}

// Ordinal formats a position as "1st", "2nd", "3rd", "4th", ...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// FormatElapsed renders a race time as H:MM:SS.mmm
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d:%02d.%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
