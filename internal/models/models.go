package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ClockTime is a wall-clock time of day without a date component.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// Minutes returns the time of day as fractional minutes since midnight.
func (c ClockTime) Minutes() float64 {
	return float64(c.Hour*60+c.Minute) + float64(c.Second)/60
}

// String formats the clock time as HH:MM:SS.
func (c ClockTime) String() string {
	return pad2(c.Hour) + ":" + pad2(c.Minute) + ":" + pad2(c.Second)
}

// ClockOf extracts the time of day from t.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseClock parses an HH:MM:SS time of day.
func ParseClock(text string) (ClockTime, error) {
	h, m, s, err := splitHMS(text)
	if err != nil {
		return ClockTime{}, errors.Wrapf(err, "parse time of day %q", text)
	}
	if h > 23 || m > 59 || s > 59 {
		return ClockTime{}, errors.Newf("parse time of day %q: field out of range", text)
	}
	return ClockTime{Hour: h, Minute: m, Second: s}, nil
}

// ParseDuration parses an HH:MM:SS run duration. Hours are not capped at 23.
func ParseDuration(text string) (time.Duration, error) {
	h, m, s, err := splitHMS(text)
	if err != nil {
		return 0, errors.Wrapf(err, "parse duration %q", text)
	}
	if m > 59 || s > 59 {
		return 0, errors.Newf("parse duration %q: field out of range", text)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, nil
}

func splitHMS(text string) (h, m, s int, err error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Newf("expected 3 fields, got %d", len(parts))
	}
	values := make([]int, 3)
	for i, part := range parts {
		v, convErr := strconv.Atoi(part)
		if convErr != nil {
			return 0, 0, 0, errors.Wrapf(convErr, "field %d", i+1)
		}
		if v < 0 {
			return 0, 0, 0, errors.Newf("field %d is negative", i+1)
		}
		values[i] = v
	}
	return values[0], values[1], values[2], nil
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// JobRunRecord is one historical execution of a job, decoded at the data-source boundary.
type JobRunRecord struct {
	JobName        string        `json:"job_name"`
	RunDate        string        `json:"run_date"`
	ScheduledStart ClockTime     `json:"scheduled_start"`
	Duration       time.Duration `json:"duration"`
	Status         Status        `json:"status"`
	NextRunDate    string        `json:"next_run_date,omitempty"`
	NextRunTime    string        `json:"next_run_time,omitempty"`
}
