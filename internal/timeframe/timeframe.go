// Package timeframe converts between the clock-duration strings accepted by
// the API ("H:MM" or "H:MM:SS") and the number of seconds stored per task.
package timeframe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	SecondsPerHour = 3600

	// MaxHours bounds one entry so sums over many tasks stay far from int64 overflow.
	MaxHours = 100000
)

var (
	ErrEmpty       = errors.New("time frame is required")
	ErrFormat      = errors.New("time frame must be H:MM or H:MM:SS")
	ErrNotPositive = errors.New("time frame must be greater than zero")
	ErrTooLarge    = fmt.Errorf("time frame must be below %d hours", MaxHours)
)

// Parse converts "H:MM" or "H:MM:SS" into seconds. Hours are unbounded,
// minutes and seconds must be two digits in 00-59.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrFormat
	}

	hours, err := parseField(parts[0], -1)
	if err != nil {
		return 0, err
	}
	if hours >= MaxHours {
		return 0, ErrTooLarge
	}

	total := hours * SecondsPerHour
	for i, unit := range []int64{60, 1}[:len(parts)-1] {
		v, err := parseField(parts[i+1], 59)
		if err != nil {
			return 0, err
		}
		total += v * unit
	}

	if total <= 0 {
		return 0, ErrNotPositive
	}
	return total, nil
}

// Format renders seconds as "H:MM", or "H:MM:SS" when seconds are not zero.
func Format(seconds int64) string {
	if seconds < 0 {
		return "-" + Format(-seconds)
	}
	h := seconds / SecondsPerHour
	m := seconds % SecondsPerHour / 60
	sec := seconds % 60
	if sec != 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", h, m)
}

// Hours converts seconds to fractional hours.
func Hours(seconds int64) float64 {
	return float64(seconds) / SecondsPerHour
}

// parseField parses a non-negative integer. A max of -1 means unbounded,
// otherwise the field must be exactly two digits.
func parseField(s string, max int64) (int64, error) {
	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, ErrFormat
	}
	if max >= 0 && len(s) != 2 {
		return 0, ErrFormat
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrFormat
	}
	if max >= 0 && v > max {
		return 0, ErrFormat
	}
	return v, nil
}
