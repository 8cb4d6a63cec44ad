package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOption is one selectable wall-clock hour, with its 12-hour display label.
type TimeOption struct {
	Value   string `json:"value"`   // "14:00"
	Display string `json:"display"` // "02:00 PM"
	Past    bool   `json:"past,omitempty"`
}

// GenerateTimeOptions lists every whole hour in the operating window.
// When the booking date is today, hours at or before now are marked past.
func GenerateTimeOptions(w Window, bookingDate string, now time.Time) []TimeOption {
	isToday := bookingDate == now.Format(dateLayout)
	opts := make([]TimeOption, 0, w.CloseHour-w.OpenHour+1)
	for h := w.OpenHour; h <= w.CloseHour; h++ {
		value := fmt.Sprintf("%02d:00", h)
		opts = append(opts, TimeOption{
			Value:   value,
			Display: Format24HourTo12Hour(value),
			Past:    isToday && h <= now.Hour(),
		})
	}
	return opts
}

// EndTimeOptions restricts the option list to values strictly later than
// the chosen start time.
func EndTimeOptions(opts []TimeOption, startTime string) []TimeOption {
	startHour, err := parseHour(startTime)
	if err != nil {
		return nil
	}
	var out []TimeOption
	for _, o := range opts {
		if h, err := parseHour(o.Value); err == nil && h > startHour {
			o.Past = false
			out = append(out, o)
		}
	}
	return out
}

// Format24HourTo12Hour converts "HH:MM" to a 12-hour clock label.
// Malformed input is returned unchanged.
func Format24HourTo12Hour(time24 string) string {
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return time24
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return time24
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%s %s", h12, parts[1], ampm)
}

// DefaultHourlyTimes picks starting defaults for an hourly draft: the next
// full hour (clamped to the window) and one hour after it, mirroring what
// a walk-in customer would pick.
func DefaultHourlyTimes(w Window, now time.Time) (string, string) {
	h := now.Hour()
	if now.Minute() > 0 {
		h++
	}
	if h < w.OpenHour {
		h = w.OpenHour
	}
	if h > w.CloseHour-1 {
		h = w.CloseHour - 1
	}
	end := h + 1
	if end > w.CloseHour {
		end = w.CloseHour
	}
	return fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:00", end)
}
