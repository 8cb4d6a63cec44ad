package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"vayuhu/models"
)

const dateLayout = "2006-01-02"

// Window is the operating window for hourly bookings, in whole hours.
type Window struct {
	OpenHour  int
	CloseHour int
}

// Range is the resolved recurrence of a draft.
type Range struct {
	EndDate     string
	Days        int
	HoursPerDay int
}

// ResolveRange derives end date, day count and per-day hour count for a
// plan category and chosen start date.
//
// Monthly terms run one calendar month minus one day: a Jan-15 start ends
// Feb-14. When the same day does not exist in the next month (Jan-31), the
// term ends on that month's last day instead of spilling over.
// Daily and hourly bookings are single-day; multi-day daily recurrence is
// resolved separately via ResolveManualEnd.
func ResolveRange(plan models.PlanCategory, startDate, startTime, endTime string, w Window) (Range, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return Range{}, newValidationError("startDate", err.Error())
	}

	switch plan {
	case models.PlanMonthly:
		end := addOneMonthMinusDay(start)
		return Range{
			EndDate: end.Format(dateLayout),
			Days:    wholeDaysInclusive(start, end),
		}, nil

	case models.PlanDaily:
		return Range{EndDate: startDate, Days: 1}, nil

	case models.PlanHourly:
		hours, err := resolveHours(startTime, endTime, w)
		if err != nil {
			return Range{}, err
		}
		return Range{EndDate: startDate, Days: 1, HoursPerDay: hours}, nil
	}

	return Range{}, newValidationError("plan", fmt.Sprintf("unknown plan category %q", plan))
}

// ResolveManualEnd recomputes the day count for a manually chosen end date
// on a multi-day daily recurrence. An end date before the start yields 0
// days, which blocks wizard progression.
func ResolveManualEnd(startDate, endDate string) (int, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return 0, newValidationError("startDate", err.Error())
	}
	end, err := parseDate(endDate)
	if err != nil {
		return 0, newValidationError("endDate", err.Error())
	}
	if end.Before(start) {
		return 0, nil
	}
	return wholeDaysInclusive(start, end), nil
}

// addOneMonthMinusDay is the monthly term arithmetic. time.AddDate
// normalizes Jan-31 +1 month into March, so the day is clamped to the
// target month's length before subtracting the final day.
func addOneMonthMinusDay(start time.Time) time.Time {
	y, m, d := start.Date()
	firstOfNext := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfNext := firstOfNext.AddDate(0, 1, -1).Day()
	if d > lastOfNext {
		// Same day absent next month: term ends on its last day.
		return time.Date(y, m+1, lastOfNext, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(y, m+1, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

func wholeDaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24+0.5) + 1
}

func resolveHours(startTime, endTime string, w Window) (int, error) {
	startHour, err := parseHour(startTime)
	if err != nil {
		return 0, newValidationError("startTime", err.Error())
	}
	endHour, err := parseHour(endTime)
	if err != nil {
		return 0, newValidationError("endTime", err.Error())
	}
	if startHour < w.OpenHour || endHour > w.CloseHour {
		return 0, newValidationError("time", fmt.Sprintf("outside operating window %02d:00-%02d:00", w.OpenHour, w.CloseHour))
	}
	hours := endHour - startHour
	if hours <= 0 {
		return 0, newValidationError("endTime", "must be later than start time")
	}
	return hours, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

func parseHour(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	return h, nil
}

// ValidateStartDate enforces the booking horizon: no past dates (unless
// the policy allows), and at most two months ahead.
func ValidateStartDate(startDate string, now time.Time, allowPast bool) error {
	start, err := parseDate(startDate)
	if err != nil {
		return newValidationError("startDate", err.Error())
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !allowPast && start.Before(today) {
		return newValidationError("startDate", "must not be in the past")
	}
	if start.After(today.AddDate(0, 2, 0)) {
		return newValidationError("startDate", "must be within the next 2 months")
	}
	return nil
}

var dayAbbreviations = map[time.Weekday]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

// workingOrder is Mon-Sat; Sunday is a non-working day and never appears
// in a monthly summary.
var workingOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// SummarizeDays renders the human-readable recurrence summary shown at
// review time. Monthly plans list the working weekdays covered by the
// interval, rotated to begin on the start date's weekday; single-day
// bookings show one abbreviation; multi-day daily plans show a count.
func SummarizeDays(plan models.PlanCategory, startDate, endDate string, days int) string {
	if plan == models.PlanMonthly {
		return workingDaysInRange(startDate, endDate)
	}
	if days == 1 {
		if start, err := parseDate(startDate); err == nil {
			return dayAbbreviations[start.Weekday()]
		}
		return ""
	}
	if days > 1 {
		return fmt.Sprintf("%d Days Recurrence", days)
	}
	return ""
}

func workingDaysInRange(startDate, endDate string) string {
	start, err := parseDate(startDate)
	if err != nil {
		return ""
	}
	end, err := parseDate(endDate)
	if err != nil || end.Before(start) {
		return ""
	}

	found := make(map[time.Weekday]bool)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if cur.Weekday() != time.Sunday {
			found[cur.Weekday()] = true
		}
		if len(found) == len(workingOrder) {
			break
		}
	}
	if len(found) == 0 {
		return ""
	}

	var present []time.Weekday
	for _, d := range workingOrder {
		if found[d] {
			present = append(present, d)
		}
	}

	// Rotate so the listing starts on the start date's weekday.
	startIdx := -1
	for i, d := range present {
		if d == start.Weekday() {
			startIdx = i
			break
		}
	}
	if startIdx > 0 {
		present = append(present[startIdx:], present[:startIdx]...)
	}

	abbrs := make([]string, len(present))
	for i, d := range present {
		abbrs[i] = dayAbbreviations[d]
	}
	return strings.Join(abbrs, ", ")
}
