package org

import (
	"strconv"
	"time"
)

// TimeUnit is the unit suffix of a repeater or warning-delay cookie
// ("h", "d", "w", "m", "y"). Grounded on
// original_source/src/ast/timestamp.rs::TimeUnit.
type TimeUnit int

const (
	TimeUnitHour TimeUnit = iota
	TimeUnitDay
	TimeUnitWeek
	TimeUnitMonth
	TimeUnitYear
)

func (u TimeUnit) String() string {
	switch u {
	case TimeUnitHour:
		return "h"
	case TimeUnitDay:
		return "d"
	case TimeUnitWeek:
		return "w"
	case TimeUnitMonth:
		return "m"
	case TimeUnitYear:
		return "y"
	}
	return ""
}

func timeUnitFromByte(b byte) (TimeUnit, bool) {
	switch b {
	case 'h':
		return TimeUnitHour, true
	case 'd':
		return TimeUnitDay, true
	case 'w':
		return TimeUnitWeek, true
	case 'm':
		return TimeUnitMonth, true
	case 'y':
		return TimeUnitYear, true
	}
	return 0, false
}

// RepeaterType is the repeater marker's shape: "+" (cumulative), "++"
// (catch-up), or ".+" (restart).
type RepeaterType int

const (
	RepeaterCumulative RepeaterType = iota
	RepeaterCatchUp
	RepeaterRestart
)

func repeaterTypeFromMark(s string) (RepeaterType, bool) {
	switch s {
	case "+":
		return RepeaterCumulative, true
	case "++":
		return RepeaterCatchUp, true
	case ".+":
		return RepeaterRestart, true
	}
	return 0, false
}

// DelayType is the warning marker's shape: "-" (all occurrences) or
// "--" (first occurrence only).
type DelayType int

const (
	DelayAll DelayType = iota
	DelayFirst
)

func delayTypeFromMark(s string) (DelayType, bool) {
	switch s {
	case "-":
		return DelayAll, true
	case "--":
		return DelayFirst, true
	}
	return 0, false
}

// Timestamp is the typed overlay of a TIMESTAMP_ACTIVE, TIMESTAMP_INACTIVE,
// or TIMESTAMP_DIARY node (spec.md §4.8). It does not use the
// generic cast machinery — three distinct kinds can all become a
// Timestamp — so FirstTimestamp below is timestamp-specific rather than
// a FirstNode[Timestamp] instantiation.
//
// Grounded on original_source/src/ast/timestamp.rs.
type Timestamp struct {
	syntax *RedNode
}

func (t *Timestamp) Kind() Kind       { return t.syntax.Kind() }
func (t *Timestamp) Syntax() *RedNode { return t.syntax }

func timestampFromNode(n *RedNode) (*Timestamp, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case TIMESTAMP_ACTIVE, TIMESTAMP_INACTIVE, TIMESTAMP_DIARY:
		return &Timestamp{syntax: n}, true
	}
	return nil, false
}

// FirstTimestamp returns the first descendant timestamp of n.
func FirstTimestamp(n *RedNode) (*Timestamp, bool) {
	var found *Timestamp
	n.Descendants(func(d *RedNode) bool {
		if found != nil {
			return false
		}
		if v, ok := timestampFromNode(d); ok {
			found = v
			return false
		}
		return true
	})
	return found, found != nil
}

func (t *Timestamp) IsActive() bool   { return t.syntax.Kind() == TIMESTAMP_ACTIVE }
func (t *Timestamp) IsInactive() bool { return t.syntax.Kind() == TIMESTAMP_INACTIVE }
func (t *Timestamp) IsDiary() bool    { return t.syntax.Kind() == TIMESTAMP_DIARY }

// IsRange reports whether this timestamp spans a range: either an
// inline time-range ("09:00-10:00") or a "BODY--BODY" outer range.
// Grounded on timestamp.rs's MINUS-token count (> 2): a plain dated
// timestamp already contributes 2 MINUS tokens from its own
// "YYYY-MM-DD" date separators, so the threshold only trips once an
// actual range is present.
func (t *Timestamp) IsRange() bool {
	return len(t.syntax.ChildTokens(MINUS)) > 2
}

// RepeaterType, RepeaterValue, RepeaterUnit report the repeater cookie,
// if any (e.g. "+1w").
func (t *Timestamp) RepeaterType() (RepeaterType, bool) {
	mark := t.syntax.ChildToken(TIMESTAMP_REPEATER_MARK)
	if mark == nil {
		return 0, false
	}
	return repeaterTypeFromMark(mark.Text())
}

func (t *Timestamp) RepeaterValue() (int, bool) {
	if t.syntax.ChildToken(TIMESTAMP_REPEATER_MARK) == nil {
		return 0, false
	}
	return repeaterOrWarningValue(t.syntax, TIMESTAMP_REPEATER_MARK)
}

func (t *Timestamp) RepeaterUnit() (TimeUnit, bool) {
	return repeaterOrWarningUnit(t.syntax, TIMESTAMP_REPEATER_MARK)
}

// WarningType, WarningValue, WarningUnit report the deadline/scheduled
// warning cookie, if any (e.g. "-3d").
func (t *Timestamp) WarningType() (DelayType, bool) {
	mark := t.syntax.ChildToken(TIMESTAMP_DELAY_MARK)
	if mark == nil {
		return 0, false
	}
	return delayTypeFromMark(mark.Text())
}

func (t *Timestamp) WarningValue() (int, bool) {
	if t.syntax.ChildToken(TIMESTAMP_DELAY_MARK) == nil {
		return 0, false
	}
	return repeaterOrWarningValue(t.syntax, TIMESTAMP_DELAY_MARK)
}

func (t *Timestamp) WarningUnit() (TimeUnit, bool) {
	return repeaterOrWarningUnit(t.syntax, TIMESTAMP_DELAY_MARK)
}

// repeaterOrWarningValue/Unit find the TIMESTAMP_VALUE/TIMESTAMP_UNIT
// tokens immediately following the given mark kind among direct
// children, matching the fixed-offset sibling layout the parser emits
// (parser_timestamp.go's parseTimestampRepeater/parseTimestampWarning:
// mark, value, unit, always three consecutive children).
func repeaterOrWarningValue(n *RedNode, markKind Kind) (int, bool) {
	children := n.ChildrenWithTokens()
	for i, c := range children {
		if c.Kind() == markKind && i+1 < len(children) {
			if v, err := strconv.Atoi(children[i+1].Text()); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func repeaterOrWarningUnit(n *RedNode, markKind Kind) (TimeUnit, bool) {
	children := n.ChildrenWithTokens()
	for i, c := range children {
		if c.Kind() == markKind && i+2 < len(children) {
			if len(children[i+2].Text()) == 1 {
				return timeUnitFromByte(children[i+2].Text()[0])
			}
		}
	}
	return 0, false
}

// StartToChrono parses the timestamp's first date/time into a
// time.Time in UTC (org timestamps carry no timezone offset of their
// own). The dayname, if present, is not validated against the date.
func (t *Timestamp) StartToChrono() (time.Time, bool) {
	return timestampDateTime(dateTimeValues(t.syntax), 0)
}

// dateTimeValues returns n's TIMESTAMP_VALUE tokens other than the
// amounts that follow a repeater or warning mark.
func dateTimeValues(n *RedNode) []*RedToken {
	var out []*RedToken
	prev := TEXT
	for _, c := range n.ChildrenWithTokens() {
		if c.Kind() == TIMESTAMP_VALUE && prev != TIMESTAMP_REPEATER_MARK && prev != TIMESTAMP_DELAY_MARK {
			out = append(out, c.(*RedToken))
		}
		prev = c.Kind()
	}
	return out
}

// EndToChrono parses the second date/time of a range, dispatching on
// the count of date/time values (repeater and warning amounts are not
// counted) of the few common shapes: single time-range, outer range of
// two timed bodies, outer range where one or both bodies have their own
// time-range. A date-only outer range isn't one of those shapes and
// returns false. For a plain
// inline time-range it reuses the start date with the second HH:MM; for
// an outer BODY--BODY range the second body carries its own date too.
func (t *Timestamp) EndToChrono() (time.Time, bool) {
	values := dateTimeValues(t.syntax)
	switch len(values) {
	case 5: // single body, single time: year month day hour minute — no end
		return time.Time{}, false
	case 7: // single body, time-range: year month day hour1 minute1 hour2 minute2
		return timestampDateTimeFrom(values[0], values[1], values[2], values[5], values[6])
	case 10: // outer range of two plain dated-timed bodies
		return timestampDateTime(values[5:], 0)
	case 12: // outer range where one body has a time-range
		if len(values[5].Text()) == 4 { // values[5] is a year: the second body starts there and has the time-range
			return timestampDateTimeFrom(values[5], values[6], values[7], values[10], values[11])
		}
		return timestampDateTime(values[7:], 0)
	case 14: // outer range where both bodies have a time-range
		return timestampDateTimeFrom(values[7], values[8], values[9], values[12], values[13])
	}
	return time.Time{}, false
}

func timestampDateTime(values []*RedToken, offset int) (time.Time, bool) {
	if len(values) < offset+5 {
		if len(values) >= offset+3 {
			return timestampDateOnly(values[offset], values[offset+1], values[offset+2])
		}
		return time.Time{}, false
	}
	return timestampDateTimeFrom(values[offset], values[offset+1], values[offset+2], values[offset+3], values[offset+4])
}

func timestampDateOnly(year, month, day *RedToken) (time.Time, bool) {
	y, err1 := strconv.Atoi(year.Text())
	m, err2 := strconv.Atoi(month.Text())
	d, err3 := strconv.Atoi(day.Text())
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

func timestampDateTimeFrom(year, month, day, hour, minute *RedToken) (time.Time, bool) {
	y, err1 := strconv.Atoi(year.Text())
	m, err2 := strconv.Atoi(month.Text())
	d, err3 := strconv.Atoi(day.Text())
	hh, err4 := strconv.Atoi(hour.Text())
	mm, err5 := strconv.Atoi(minute.Text())
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, hh, mm, 0, 0, time.UTC), true
}
