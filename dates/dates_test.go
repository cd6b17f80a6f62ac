package dates_test

import (
	"sort"
	"testing"
	"time"

	"github.com/deixis/chromologger/dates"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 9, 4, 5, 12345000, time.Local)

	expect := "2024-05-01 09:04:05.012345"
	if got := dates.Format(ts); got != expect {
		t.Errorf("expect %s, but got %s", expect, got)
	}

	ts = time.Date(2024, time.May, 1, 9, 4, 5, 0, time.Local)
	expect = "2024-05-01 09:04:05.000000"
	if got := dates.Format(ts); got != expect {
		t.Errorf("expect %s, but got %s", expect, got)
	}
}

func TestClock_NeverGoesBackwards(t *testing.T) {
	base := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)
	readings := []time.Time{
		base,
		base.Add(time.Second),
		base.Add(-time.Hour), // wall clock adjusted
		base.Add(2 * time.Second),
	}
	i := 0
	clock := dates.NewClock(func() time.Time {
		r := readings[i]
		i++
		return r
	})

	var stamps []string
	for range readings {
		stamps = append(stamps, clock.Stamp())
	}

	if !sort.StringsAreSorted(stamps) {
		t.Fatalf("expect sorted timestamps, but got %v", stamps)
	}
	if stamps[2] != stamps[1] {
		t.Errorf("expect backwards reading to repeat %s, but got %s", stamps[1], stamps[2])
	}
	expect := dates.Format(base.Add(2 * time.Second))
	if stamps[3] != expect {
		t.Errorf("expect %s, but got %s", expect, stamps[3])
	}
}

func TestClock_DefaultsToNow(t *testing.T) {
	fixed := time.Date(2030, time.January, 2, 3, 4, 5, 6000, time.Local)
	now := dates.Now
	dates.Now = func() time.Time { return fixed }
	defer func() { dates.Now = now }()

	clock := dates.NewClock(nil)
	expect := "2030-01-02 03:04:05.000006"
	if got := clock.Stamp(); got != expect {
		t.Errorf("expect %s, but got %s", expect, got)
	}
}
