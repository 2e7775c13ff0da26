// Package timeutil parses the due-date windows used to narrow task listings.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is used when no window is given.
	DefaultWindow = "1w"

	day  = 24 * time.Hour
	week = 7 * day
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":     day,
		"day":   day,
		"days":  day,
		"w":     week,
		"wk":    week,
		"wks":   week,
		"week":  week,
		"weeks": week,
	}
	named = map[string]time.Duration{
		"today":    0,
		"tomorrow": day,
	}
)

// ParseWindow parses "today", "tomorrow" or a sum of day and week segments
// such as "3d" or "1w2d". It returns the duration and its canonical form.
// Empty input yields DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		lower = DefaultWindow
	}
	if d, ok := named[lower]; ok {
		return d, lower, nil
	}

	var total time.Duration
	for remaining := lower; len(remaining) > 0; {
		m := windowPattern.FindStringSubmatch(remaining)
		if len(m) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		unit, ok := unitMap[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q, use d or w", m[2])
		}
		total += time.Duration(n) * unit
		remaining = remaining[len(m[0]):]
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d in weeks and days, rounding down to whole days.
func FormatWindow(d time.Duration) string {
	days := int(d / day)
	if days <= 0 {
		return "today"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if r := days % 7; r > 0 {
		fmt.Fprintf(&b, "%dd", r)
	}
	return b.String()
}
