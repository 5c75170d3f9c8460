// Package airac provides calculations on AIRAC cycle identifiers and
// effective dates.
//
// Regular, planned Aeronautical Information Publications (AIP) as defined by
// the International Civil Aviation Organization (ICAO) are published and
// become effective at fixed dates, on a 28 day cycle. This package implements
// the AIRAC cycle schedule as published in the ICAO Aeronautical Information
// Services Manual (DOC 8126; AN/872; 6th Edition; 2003), which includes the
// effective date 29 January 1998.
//
// A Cycle is an immutable value and safe to share between goroutines. All
// calculations use UTC. Cycles are assumed effective from the effective date
// at 00:00:00 UTC until 27 days later at 23:59:59 UTC. (DOC 8126 paragraph
// 2.6.4 actually specifies 00:01 UTC as the switch-over time; deviating from
// midnight here would only confuse users.)
//
// Values corresponding to years between roughly 1901 and 2200 are plausible;
// instants far outside that range yield best-effort results. Identifiers
// cover the years 1964 through 2063.
package airac

import (
	"errors"
	"fmt"
	"time"
)

// cycleDuration is the fixed length of every AIRAC cycle.
const cycleDuration = 28 * 24 * time.Hour

// epoch is the effective instant of the cycle with serial 0. It predates the
// first officially published cycle of the current schedule (29 January 1998)
// by an exact multiple of 28 days, so serial arithmetic stays consistent back
// to 1901 without changing any documented effective date.
var epoch = time.Date(1901, time.January, 10, 0, 0, 0, 0, time.UTC)

// Errors returned by FromIdentifier. Use errors.Is to distinguish a
// malformed identifier from a well-formed one that denotes no real cycle.
var (
	ErrInvalidFormat = errors.New("airac: identifier must be four digits (YYOO)")
	ErrNoSuchCycle   = errors.New("airac: no such cycle")
)

// Cycle represents one AIRAC cycle. The zero value is the cycle effective at
// the package epoch; obtain meaningful values through FromInstant or
// FromIdentifier. Cycle is comparable: == and map keys agree with Compare.
type Cycle struct {
	// serial counts 28 day cycles relative to epoch. Negative before it.
	serial int
}

// FromInstant returns the cycle that was current at instant t, i.e. the
// unique cycle whose effective window contains t. The window is closed at the
// effective instant and open at the next cycle's effective instant.
//
// Instants before the epoch yield negative serials; the arithmetic stays
// valid, but no AIRAC schedule existed back then.
func FromInstant(t time.Time) Cycle {
	seconds := t.Unix() - epoch.Unix()
	return Cycle{serial: int(floorDiv(seconds, int64(cycleDuration/time.Second)))}
}

// FromIdentifier returns the cycle denoted by the identifier yyoo, the last
// two digits of the year followed by the two-digit ordinal, both zero padded.
//
// The two-digit year is windowed onto 1964 through 2063: "6401" through
// "9913" map to the years 1964 through 1999, "0001" through "6313" to the
// years 2000 through 2063.
//
// FromIdentifier returns ErrInvalidFormat if yyoo is not exactly four ASCII
// digits, and ErrNoSuchCycle if the decoded year has no cycle with that
// ordinal (most years have 13 cycles, some 14).
func FromIdentifier(yyoo string) (Cycle, error) {
	if len(yyoo) != 4 {
		return Cycle{}, fmt.Errorf("%w: %q", ErrInvalidFormat, yyoo)
	}
	for i := 0; i < 4; i++ {
		if yyoo[i] < '0' || yyoo[i] > '9' {
			return Cycle{}, fmt.Errorf("%w: %q", ErrInvalidFormat, yyoo)
		}
	}

	yy := int(yyoo[0]-'0')*10 + int(yyoo[1]-'0')
	ordinal := int(yyoo[2]-'0')*10 + int(yyoo[3]-'0')

	year := 2000 + yy
	if yy >= 64 {
		year = 1900 + yy
	}

	// Anchor on the last cycle effective in the preceding year, then step
	// forward by the ordinal. Recomputing the year catches ordinals past the
	// end of the target year (a 14th cycle in a 13 cycle year rolls over into
	// January).
	endOfPreviousYear := time.Date(year-1, time.December, 31, 23, 59, 59, 0, time.UTC)
	candidate := Cycle{serial: FromInstant(endOfPreviousYear).serial + ordinal}
	if candidate.Year() != year {
		return Cycle{}, fmt.Errorf("%w: year %d has no cycle %d", ErrNoSuchCycle, year, ordinal)
	}

	return candidate, nil
}

// Effective returns the instant this cycle becomes effective, at 00:00:00
// UTC on the cycle's effective date.
//
// Day arithmetic instead of a duration multiply: a time.Duration holds
// nanoseconds and overflows 290 years out, well inside the supported range.
// In UTC every day is exactly 86400 seconds, so the results agree.
func (c Cycle) Effective() time.Time {
	return epoch.AddDate(0, 0, c.serial*28)
}

// Year returns the calendar year (UTC) of this cycle's effective date.
func (c Cycle) Year() int {
	return c.Effective().Year()
}

// Ordinal returns the 1-based position of this cycle within its year.
func (c Cycle) Ordinal() int {
	return (c.Effective().YearDay()-1)/28 + 1
}

// Next returns the cycle effective 28 days after this one.
func (c Cycle) Next() Cycle {
	return Cycle{serial: c.serial + 1}
}

// Previous returns the cycle effective 28 days before this one.
func (c Cycle) Previous() Cycle {
	return Cycle{serial: c.serial - 1}
}

// Compare returns a negative number if c is effective before other, zero if
// they are the same cycle, and a positive number otherwise. It is consistent
// with ==.
func (c Cycle) Compare(other Cycle) int {
	switch {
	case c.serial < other.serial:
		return -1
	case c.serial > other.serial:
		return 1
	}
	return 0
}

// String returns the short identifier of this cycle, as in "2001".
func (c Cycle) String() string {
	return fmt.Sprintf("%02d%02d", c.Year()%100, c.Ordinal())
}

// LongString returns a verbose representation of this cycle, as in
// "2001 (effective: 2020-01-02; expires: 2020-01-29)".
func (c Cycle) LongString() string {
	return fmt.Sprintf("%s (effective: %s; expires: %s)",
		c,
		c.Effective().Format("2006-01-02"),
		c.Next().Effective().Add(-time.Second).Format("2006-01-02"))
}

// floorDiv divides a by b rounding toward negative infinity. Plain integer
// division truncates toward zero, which would map instants just before the
// epoch onto serial 0 instead of -1.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
