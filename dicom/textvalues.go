// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Precision is the most significant component present in a partial date or time value.
type Precision int

// Precisions in order of increasing detail.
const (
	PrecisionYear Precision = iota
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
	PrecisionFraction
)

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	case PrecisionHour:
		return "hour"
	case PrecisionMinute:
		return "minute"
	case PrecisionSecond:
		return "second"
	case PrecisionFraction:
		return "fraction"
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// Date is a DA value. Components below Precision are zero.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#table_6.2-1
type Date struct {
	Year, Month, Day int
	Precision        Precision
}

// ParseDate parses YYYY, YYYYMM and YYYYMMDD values. The ACR-NEMA form YYYY.MM.DD is accepted.
func ParseDate(s string) (Date, error) {
	s = strings.TrimRight(s, " ")
	if len(s) == 10 && s[4] == '.' && s[7] == '.' {
		s = s[0:4] + s[5:7] + s[8:10]
	}

	var d Date
	var err error
	switch len(s) {
	case 8:
		d.Precision = PrecisionDay
		if d.Day, err = parseDigits(s[6:8], 1, 31); err != nil {
			return Date{}, dateError("DA", s, err)
		}
		fallthrough
	case 6:
		if d.Precision < PrecisionMonth {
			d.Precision = PrecisionMonth
		}
		if d.Month, err = parseDigits(s[4:6], 1, 12); err != nil {
			return Date{}, dateError("DA", s, err)
		}
		fallthrough
	case 4:
		if d.Year, err = parseDigits(s[0:4], 0, 9999); err != nil {
			return Date{}, dateError("DA", s, err)
		}
	default:
		return Date{}, dateError("DA", s, fmt.Errorf("unexpected length %d", len(s)))
	}

	if d.Precision == PrecisionDay && d.Day > daysIn(d.Year, d.Month) {
		return Date{}, dateError("DA", s, fmt.Errorf("day %d out of range", d.Day))
	}
	return d, nil
}

func (d Date) String() string {
	switch d.Precision {
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%04d%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
	}
}

// Time returns the first instant of the date in loc, missing components default to 1.
func (d Date) Time(loc *time.Location) time.Time {
	month, day := time.Month(max(d.Month, 1)), max(d.Day, 1)
	return time.Date(d.Year, month, day, 0, 0, 0, 0, loc)
}

// Time is a TM value. Components below Precision are zero.
type Time struct {
	Hour, Minute, Second int

	// Nanosecond holds the fractional seconds, FractionDigits how many digits were present
	Nanosecond     int
	FractionDigits int

	Precision Precision
}

// ParseTime parses HH, HHMM, HHMMSS and HHMMSS.FFFFFF values with 1 to 6 fraction digits.
// The ACR-NEMA form HH:MM:SS is accepted.
func ParseTime(s string) (Time, error) {
	s = strings.TrimRight(s, " ")
	if len(s) >= 8 && s[2] == ':' && s[5] == ':' {
		s = s[0:2] + s[3:5] + s[6:]
	}

	var t Time
	whole, frac, hasFrac := strings.Cut(s, ".")
	var err error
	switch len(whole) {
	case 6:
		t.Precision = PrecisionSecond
		if t.Second, err = parseDigits(whole[4:6], 0, 60); err != nil {
			return Time{}, dateError("TM", s, err)
		}
		fallthrough
	case 4:
		if t.Precision < PrecisionMinute {
			t.Precision = PrecisionMinute
		}
		if t.Minute, err = parseDigits(whole[2:4], 0, 59); err != nil {
			return Time{}, dateError("TM", s, err)
		}
		fallthrough
	case 2:
		if t.Precision < PrecisionHour {
			t.Precision = PrecisionHour
		}
		if t.Hour, err = parseDigits(whole[0:2], 0, 23); err != nil {
			return Time{}, dateError("TM", s, err)
		}
	default:
		return Time{}, dateError("TM", s, fmt.Errorf("unexpected length %d", len(whole)))
	}

	if hasFrac {
		if t.Precision != PrecisionSecond || len(frac) == 0 || len(frac) > 6 {
			return Time{}, dateError("TM", s, fmt.Errorf("misplaced fraction %q", frac))
		}
		f, err := parseDigits(frac, 0, 999999)
		if err != nil {
			return Time{}, dateError("TM", s, err)
		}
		t.FractionDigits = len(frac)
		t.Nanosecond = f * pow10(9-len(frac))
		t.Precision = PrecisionFraction
	}
	return t, nil
}

func (t Time) String() string {
	switch t.Precision {
	case PrecisionHour:
		return fmt.Sprintf("%02d", t.Hour)
	case PrecisionMinute:
		return fmt.Sprintf("%02d%02d", t.Hour, t.Minute)
	case PrecisionFraction:
		frac := t.Nanosecond / pow10(9-t.FractionDigits)
		return fmt.Sprintf("%02d%02d%02d.%0*d", t.Hour, t.Minute, t.Second, t.FractionDigits, frac)
	default:
		return fmt.Sprintf("%02d%02d%02d", t.Hour, t.Minute, t.Second)
	}
}

// DateTime is a DT value: a date, an optional time and an optional UTC offset.
type DateTime struct {
	Date Date
	Time Time

	// Precision is the precision of the combined value.
	Precision Precision

	// HasOffset is true when a &ZZXX suffix was present; Offset is then east of UTC.
	HasOffset bool
	Offset    time.Duration
}

// ParseDateTime parses YYYY[MM[DD[HH[MM[SS[.F{1-6}]]]]]][&ZZXX] values.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimRight(s, " ")
	var dt DateTime

	if i := strings.IndexAny(s, "+-"); i >= 0 {
		offset := s[i:]
		if len(offset) != 5 {
			return DateTime{}, dateError("DT", s, fmt.Errorf("malformed offset %q", offset))
		}
		hh, err := parseDigits(offset[1:3], 0, 14)
		if err != nil {
			return DateTime{}, dateError("DT", s, err)
		}
		mm, err := parseDigits(offset[3:5], 0, 59)
		if err != nil {
			return DateTime{}, dateError("DT", s, err)
		}
		dt.HasOffset = true
		dt.Offset = time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute
		if offset[0] == '-' {
			dt.Offset = -dt.Offset
		}
		s = s[:i]
	}

	datePart := s
	if len(s) > 8 {
		datePart = s[:8]
	}
	d, err := ParseDate(datePart)
	if err != nil {
		return DateTime{}, fmt.Errorf("DT value %q: %w", s, err)
	}
	dt.Date, dt.Precision = d, d.Precision

	if len(s) > 8 {
		t, err := ParseTime(s[8:])
		if err != nil {
			return DateTime{}, fmt.Errorf("DT value %q: %w", s, err)
		}
		dt.Time, dt.Precision = t, t.Precision
	}
	return dt, nil
}

func (dt DateTime) String() string {
	s := dt.Date.String()
	if dt.Precision >= PrecisionHour {
		s += dt.Time.String()
	}
	if dt.HasOffset {
		sign, off := '+', dt.Offset
		if off < 0 {
			sign, off = '-', -off
		}
		s += fmt.Sprintf("%c%02d%02d", sign, int(off/time.Hour), int(off%time.Hour/time.Minute))
	}
	return s
}

// PersonNameGroup holds the five components of one PN component group.
type PersonNameGroup struct {
	FamilyName, GivenName, MiddleName, NamePrefix, NameSuffix string
}

// PersonName is a PN value split into its alphabetic, ideographic and phonetic groups.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2.1
type PersonName struct {
	Alphabetic, Ideographic, Phonetic PersonNameGroup

	raw string
}

// ParsePersonName splits a single PN value on the "=" group and "^" component delimiters.
func ParsePersonName(s string) PersonName {
	s = strings.TrimRight(s, " ")
	p := PersonName{raw: s}
	groups := strings.SplitN(s, "=", 3)
	targets := []*PersonNameGroup{&p.Alphabetic, &p.Ideographic, &p.Phonetic}
	for i, g := range groups {
		c := append(strings.SplitN(g, "^", 5), "", "", "", "", "")
		*targets[i] = PersonNameGroup{c[0], c[1], c[2], c[3], c[4]}
	}
	return p
}

// Components returns the components of the alphabetic group as written, without trailing
// empty components.
func (p PersonName) Components() []string {
	alphabetic, _, _ := strings.Cut(p.raw, "=")
	if alphabetic == "" {
		return []string{}
	}
	return strings.Split(strings.TrimRight(alphabetic, "^"), "^")
}

func (p PersonName) String() string {
	return p.raw
}

// Strings returns the values of a text element, or nil if the element is not text.
func (e *DataElement) Strings() []string {
	s, _ := e.ValueField.([]string)
	return s
}

// Ints parses the values of an IS element.
func (e *DataElement) Ints() ([]int64, error) {
	ret := make([]int64, 0, len(e.Strings()))
	for _, s := range e.Strings() {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer string %q: %v", ErrInvalidValue, s, err)
		}
		ret = append(ret, i)
	}
	return ret, nil
}

// Floats parses the values of a DS element.
func (e *DataElement) Floats() ([]float64, error) {
	ret := make([]float64, 0, len(e.Strings()))
	for _, s := range e.Strings() {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: decimal string %q: %v", ErrInvalidValue, s, err)
		}
		ret = append(ret, f)
	}
	return ret, nil
}

// PersonNames parses the values of a PN element.
func (e *DataElement) PersonNames() []PersonName {
	ret := make([]PersonName, 0, len(e.Strings()))
	for _, s := range e.Strings() {
		ret = append(ret, ParsePersonName(s))
	}
	return ret
}

// validateTemporal checks the grammar of DA, TM and DT values. Empty values are valid.
func validateTemporal(e *DataElement) error {
	var parse func(string) error
	switch e.VR {
	case DAVR:
		parse = func(s string) error { _, err := ParseDate(s); return err }
	case TMVR:
		parse = func(s string) error { _, err := ParseTime(s); return err }
	case DTVR:
		parse = func(s string) error { _, err := ParseDateTime(s); return err }
	default:
		return nil
	}
	for _, s := range e.Strings() {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if err := parse(s); err != nil {
			return err
		}
	}
	return nil
}

func parseDigits(s string, lo, hi int) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit in %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d out of range [%d, %d]", n, lo, hi)
	}
	return n, nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

func dateError(vr, s string, err error) error {
	return fmt.Errorf("%w: %s value %q: %v", ErrInvalidValue, vr, s, err)
}
