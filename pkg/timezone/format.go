package timezone

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kass/matchmap/pkg/models"
)

// TimeFormat selects the clock convention
type TimeFormat string

const (
	Format12Hour TimeFormat = "12hour"
	Format24Hour TimeFormat = "24hour"
)

const (
	// Unavailable is rendered when a date cannot be formatted at all
	Unavailable = "Time unavailable"
	// TBD fills both placeholder fields for undated fixtures
	TBD = "TBD"
)

const (
	layout12Hour      = "03:04 PM"
	layout24Hour      = "15:04"
	layoutDate        = "Mon, Jan 2"
	layoutDateAndYear = "Mon, Jan 2, 2006"
)

// FormatOptions controls FormatMatchTime. Start from DefaultFormatOptions.
type FormatOptions struct {
	ShowTimezone bool       `mapstructure:"show_timezone" json:"showTimezone"`
	ShowDate     bool       `mapstructure:"show_date" json:"showDate"`
	ShowYear     bool       `mapstructure:"show_year" json:"showYear"`
	TimeFormat   TimeFormat `mapstructure:"time_format" json:"timeFormat"`
}

// DefaultFormatOptions shows zone and date, no year, 12-hour clock
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		ShowTimezone: true,
		ShowDate:     true,
		TimeFormat:   Format12Hour,
	}
}

// Placeholder is the shape returned for fixtures without a date
type Placeholder struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Display is the result of FormatMatchTime: either rendered text or, for
// undated fixtures, the TBD placeholder. The two are distinct shapes and
// encode to JSON as a string and an object respectively.
type Display struct {
	Text    string
	Pending *Placeholder
}

func pending() Display {
	return Display{Pending: &Placeholder{Date: TBD, Time: TBD}}
}

// IsPending reports whether the fixture had no date
func (d Display) IsPending() bool {
	return d.Pending != nil
}

func (d Display) String() string {
	if d.Pending != nil {
		return d.Pending.Date + " " + d.Pending.Time
	}
	return d.Text
}

// MarshalJSON encodes text as a JSON string and the placeholder as an object
func (d Display) MarshalJSON() ([]byte, error) {
	if d.Pending != nil {
		return json.Marshal(d.Pending)
	}
	return json.Marshal(d.Text)
}

// dateLayouts are the kick-off formats accepted from upstream. Values
// without an offset are taken as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatMatchTime renders the kick-off in the venue's zone, e.g.
// "Sat, Mar 15 at 07:00 PM (GMT (London))". An empty date yields the TBD
// placeholder; an unparsable date yields "Time unavailable".
func (r *Resolver) FormatMatchTime(date string, f *models.Fixture, opts FormatOptions) Display {
	if date == "" {
		return pending()
	}
	text, err := r.formatMatchTime(date, f, opts)
	if err != nil {
		r.logger.WithError(err).WithField("date", date).Debug("match time unavailable")
		return Display{Text: Unavailable}
	}
	return Display{Text: text}
}

func (r *Resolver) formatMatchTime(date string, f *models.Fixture, opts FormatOptions) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}

	zone := r.Resolve(f).ZoneID
	if !IsRecognized(zone) {
		zone = DefaultZone
	}
	// a nil location selects the zone-naive rendering below
	loc, err := location(zone)
	if err != nil {
		r.logger.WithError(err).Debug("rendering without zone")
	}

	clock, err := formatClock(t, loc, opts.TimeFormat)
	if err != nil {
		r.logger.WithError(err).Debug("zone-aware time failed, using UTC rendering")
		clock = formatNaive(t, clockLayout(opts.TimeFormat))
	}

	var b strings.Builder
	if opts.ShowDate {
		day, err := formatDay(t, loc, opts.ShowYear)
		if err != nil {
			r.logger.WithError(err).Debug("zone-aware date failed, using UTC rendering")
			day = formatNaive(t, dayLayout(opts.ShowYear))
		}
		b.WriteString(day)
		b.WriteString(" at ")
	}
	b.WriteString(clock)

	if opts.ShowTimezone {
		fmt.Fprintf(&b, " (%s)", r.Label(zone, t, f.VenueCity()))
	}
	return b.String(), nil
}

func clockLayout(tf TimeFormat) string {
	if tf == Format24Hour {
		return layout24Hour
	}
	return layout12Hour
}

func dayLayout(withYear bool) string {
	if withYear {
		return layoutDateAndYear
	}
	return layoutDate
}

func formatClock(t time.Time, loc *time.Location, tf TimeFormat) (string, error) {
	if loc == nil {
		return "", ErrUnknownZone
	}
	return t.In(loc).Format(clockLayout(tf)), nil
}

func formatDay(t time.Time, loc *time.Location, withYear bool) (string, error) {
	if loc == nil {
		return "", ErrUnknownZone
	}
	return t.In(loc).Format(dayLayout(withYear)), nil
}

func formatNaive(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}

// Label renders a zone for display, e.g. "BST (London)". UTC is shown as
// "UTC" or "UTC (city)".
func (r *Resolver) Label(zoneID string, at time.Time, venueCity string) string {
	if zoneID == DefaultZone {
		if venueCity != "" {
			return "UTC (" + venueCity + ")"
		}
		return "UTC"
	}

	abbr, err := abbreviation(zoneID, at)
	if err != nil {
		r.logger.WithError(err).WithField("zone", zoneID).Debug("using curated abbreviation")
		abbr = fallbackAbbreviation(zoneID)
	}
	return fmt.Sprintf("%s (%s)", abbr, labelCity(zoneID, venueCity))
}

// abbreviation returns the DST-aware short name of zoneID at the given
// instant. Zones the tz database only knows by numeric offset ("+03")
// count as having no abbreviation.
func abbreviation(zoneID string, at time.Time) (string, error) {
	loc, err := location(zoneID)
	if err != nil {
		return "", err
	}
	name, _ := at.In(loc).Zone()
	if name == "" || name[0] == '+' || name[0] == '-' {
		return "", fmt.Errorf("%w: %s is %q", ErrNoAbbreviation, zoneID, name)
	}
	return name, nil
}

func fallbackAbbreviation(zoneID string) string {
	if abbr, ok := fallbackAbbreviations[zoneID]; ok {
		return abbr
	}
	return DefaultZone
}

func labelCity(zoneID, venueCity string) string {
	if venueCity != "" {
		return venueCity
	}
	if city, ok := zoneCities[zoneID]; ok {
		return city
	}
	segment := zoneID[strings.LastIndex(zoneID, "/")+1:]
	return strings.ReplaceAll(segment, "_", " ")
}

// RelativeTime describes the kick-off relative to now, e.g. "in 3 hours"
// or "2 days ago". It returns "" when the date cannot be interpreted.
func (r *Resolver) RelativeTime(date string, f *models.Fixture) string {
	s, err := r.relativeTime(date, f)
	if err != nil {
		r.logger.WithError(err).WithField("date", date).Debug("relative time unavailable")
		return ""
	}
	return s
}

func (r *Resolver) relativeTime(date string, f *models.Fixture) (string, error) {
	if date == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}
	if loc, err := location(r.Resolve(f).ZoneID); err == nil {
		t = t.In(loc)
	}

	diff := t.Sub(r.now())
	past := diff < 0
	if past {
		diff = -diff
	}

	n, unit := int(diff/time.Hour), "hour"
	if diff >= 24*time.Hour {
		n, unit = int(diff/(24*time.Hour)), "day"
	}
	if n != 1 {
		unit += "s"
	}

	if past {
		return fmt.Sprintf("%d %s ago", n, unit), nil
	}
	return fmt.Sprintf("in %d %s", n, unit), nil
}

// FormatMatchTime formats with the default resolver
func FormatMatchTime(date string, f *models.Fixture, opts FormatOptions) Display {
	return Default().FormatMatchTime(date, f, opts)
}

// Label labels a zone with the default resolver
func Label(zoneID string, at time.Time, venueCity string) string {
	return Default().Label(zoneID, at, venueCity)
}

// RelativeTime describes a kick-off with the default resolver
func RelativeTime(date string, f *models.Fixture) string {
	return Default().RelativeTime(date, f)
}
