// Package edidate produces the fixed-width date and time tokens required by
// the interchange, functional group, and transaction headers. Callers pass the
// moment to format; defaulting to the wall clock is the responsibility of the
// outermost boundary, never of this package.
package edidate

import "time"

// YYMMDD returns the 6-digit date token used by the interchange header.
func YYMMDD(t time.Time) string {
	return t.Format("060102")
}

// CCYYMMDD returns the 8-digit date token used by the group and transaction
// headers and by service dates.
func CCYYMMDD(t time.Time) string {
	return t.Format("20060102")
}

// HHMM returns the 4-digit time token.
func HHMM(t time.Time) string {
	return t.Format("1504")
}

// DateRange renders a from/to pair as CCYYMMDD-CCYYMMDD.
func DateRange(from, to time.Time) string {
	return CCYYMMDD(from) + "-" + CCYYMMDD(to)
}
