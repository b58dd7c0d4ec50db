package obix

import "testing"

func TestFields_epochDecomposition(t *testing.T) {
	a := FromMillis(0, UTC)

	type want struct {
		name string
		got  int
		want int
	}
	for _, w := range []want{
		{`year`, a.Year(), 1970},
		{`month`, a.Month(), 1},
		{`day`, a.Day(), 1},
		{`hour`, a.Hour(), 0},
		{`minute`, a.Minute(), 0},
		{`second`, a.Second(), 0},
		{`millisecond`, a.Millisecond(), 0},
		{`weekday`, a.Weekday(), Thursday},
	} {
		if w.got != w.want {
			t.Fatalf("%s failed [%s]:\n\twant: %d\n\tgot:  %d",
				t.Name(), w.name, w.want, w.got)
		}
	}
	if a.InDaylightTime() {
		t.Fatalf("%s failed [dst]: UTC can never be in DST", t.Name())
	}
}

func TestFields_roundTripThroughConstructor(t *testing.T) {
	a, err := FromFields(2005, 4, 27, 14, 30, 5, 250, UTC)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if a.Year() != 2005 || a.Month() != 4 || a.Day() != 27 ||
		a.Hour() != 14 || a.Minute() != 30 || a.Second() != 5 ||
		a.Millisecond() != 250 {
		t.Fatalf("%s failed [field cmp.]: got %s", t.Name(), a.String())
	}
	if a.Weekday() != Wednesday {
		t.Fatalf("%s failed [weekday]:\n\twant: %s\n\tgot:  %s",
			t.Name(), WeekdayNames[Wednesday], WeekdayNames[a.Weekday()])
	}
}

func TestFields_timeOfDayMillis(t *testing.T) {
	a, _ := FromFields(2005, 4, 27, 1, 0, 0, 0, UTC)
	if a.TimeOfDayMillis() != 3600000 {
		t.Fatalf("%s failed: want 3600000, got %d", t.Name(), a.TimeOfDayMillis())
	}

	b, _ := FromFields(2005, 4, 27, 23, 59, 59, 999, UTC)
	want := 23*millisPerHour + 59*millisPerMinute + 59*millisPerSecond + 999
	if b.TimeOfDayMillis() != want {
		t.Fatalf("%s failed: want %d, got %d", t.Name(), want, b.TimeOfDayMillis())
	}
}

func TestFields_cacheLifecycle(t *testing.T) {
	a := FromMillis(0, UTC)
	if a.fields != nil {
		t.Fatalf("%s failed [pre]: cache populated before first access", t.Name())
	}

	_ = a.Year()
	if a.fields == nil {
		t.Fatalf("%s failed [fill]: cache empty after access", t.Name())
	}

	// repeated access must be stable
	if a.Year() != a.Year() {
		t.Fatalf("%s failed [idempotence]", t.Name())
	}

	a.Set(86400000, UTC)
	if a.fields != nil {
		t.Fatalf("%s failed [set]: cache survived Set", t.Name())
	}
	if a.Day() != 2 {
		t.Fatalf("%s failed [recompute]: want day 2, got %d", t.Name(), a.Day())
	}
}

func TestFields_zoneView(t *testing.T) {
	// 1970-01-01T00:00:00Z viewed at +01:00 is 01:00 the same day
	a := FromMillis(0, FixedZone(int(millisPerHour)))
	if a.Hour() != 1 || a.Day() != 1 {
		t.Fatalf("%s failed [+01:00 view]: got %s", t.Name(), a.String())
	}

	// and viewed at -01:00 it is 23:00 the previous day
	b := FromMillis(0, FixedZone(-int(millisPerHour)))
	if b.Hour() != 23 || b.Day() != 31 || b.Year() != 1969 {
		t.Fatalf("%s failed [-01:00 view]: got %s", t.Name(), b.String())
	}
}

func TestFields_dstFlag(t *testing.T) {
	zone, err := LoadZone(`America/New_York`)
	if err != nil {
		t.Skipf("%s skipped: %v", t.Name(), err)
	}

	summer, _ := FromFields(2024, 7, 1, 12, 0, 0, 0, zone)
	if !summer.InDaylightTime() {
		t.Fatalf("%s failed [summer]: expected DST", t.Name())
	}
	if summer.ZoneOffsetMillis() != -4*int(millisPerHour) {
		t.Fatalf("%s failed [summer offset]: got %d", t.Name(), summer.ZoneOffsetMillis())
	}

	winter, _ := FromFields(2024, 1, 15, 12, 0, 0, 0, zone)
	if winter.InDaylightTime() {
		t.Fatalf("%s failed [winter]: expected standard time", t.Name())
	}
	if winter.ZoneOffsetMillis() != -5*int(millisPerHour) {
		t.Fatalf("%s failed [winter offset]: got %d", t.Name(), winter.ZoneOffsetMillis())
	}
}
