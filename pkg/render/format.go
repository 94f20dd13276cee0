package render

import (
	"fmt"
	"strconv"

	"ai-travelmate-be/pkg/store"
)

// FormatDuration renders a minute count the way tickets print it: "3h 15min",
// "1h", "45min". Zero and negative both come out as "0min".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0min"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dmin", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dmin", m)
	}
}

// FormatPrice renders a fare in rupees without trailing decimal noise:
// ₹450, ₹450.5.
func FormatPrice(p float64) string {
	return "₹" + strconv.FormatFloat(p, 'f', -1, 64)
}

// formatFare is the bare number used inside aligned tables, where the rupee
// sign's multi-byte width would break column padding.
func formatFare(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func formatTravelDate(d *store.TravelDate) string {
	if d == nil {
		return ""
	}
	stamp := d.Date.Format("Mon, 2 Jan")
	if d.Phrase != "" {
		return fmt.Sprintf("%s (%s)", d.Phrase, stamp)
	}
	return stamp
}

func formatTimePreference(tp *store.TimePreference) string {
	if tp == nil {
		return ""
	}
	if tp.Kind == store.TimeKindAnchor {
		return fmt.Sprintf("%s %02d:%02d", tp.Relation, tp.Hour, tp.Minute)
	}
	return tp.Label
}

func modeNoun(mode string) string {
	switch mode {
	case store.ModeBus:
		return "buses"
	case store.ModeTrain:
		return "trains"
	default:
		return "buses or trains"
	}
}
