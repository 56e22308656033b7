package models

import (
	"strings"
	"time"
)

// FechaLayout is the wire and storage format for calendar dates.
const FechaLayout = time.DateOnly

// ParseFecha parses a YYYY-MM-DD date at midnight UTC.
func ParseFecha(s string) (time.Time, error) {
	return time.ParseInLocation(FechaLayout, strings.TrimSpace(s), time.UTC)
}

// Hoy returns today's calendar date at midnight UTC, comparable with
// anything produced by ParseFecha.
func Hoy() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
