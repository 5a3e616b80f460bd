package domain

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, 0, 0, time.UTC)
}

func TestClassify_OnTimeWithoutCheckOut(t *testing.T) {
	status, hours := Classify(at(8, 59), nil)
	if status != StatusPresent {
		t.Fatalf("expected %s, got %s", StatusPresent, status)
	}
	if hours != 0 {
		t.Fatalf("expected 0 hours, got %v", hours)
	}
}

func TestClassify_CutoffBoundary(t *testing.T) {
	// 09:15 exactly is still on time, 09:16 is late.
	if status, _ := Classify(at(9, 15), nil); status != StatusPresent {
		t.Fatalf("09:15 should be present, got %s", status)
	}
	if status, _ := Classify(at(9, 16), nil); status != StatusLate {
		t.Fatalf("09:16 should be late, got %s", status)
	}
}

func TestClassify_ShortShiftBecomesHalfDay(t *testing.T) {
	checkIn := at(9, 0)
	checkOut := checkIn.Add(3*time.Hour + 30*time.Minute)

	status, hours := Classify(checkIn, &checkOut)
	if status != StatusHalfDay {
		t.Fatalf("expected %s, got %s", StatusHalfDay, status)
	}
	if hours != 3.5 {
		t.Fatalf("expected 3.5 hours, got %v", hours)
	}
}

func TestClassify_LateTakesPrecedenceOverHalfDay(t *testing.T) {
	checkIn := at(9, 20)
	checkOut := checkIn.Add(3 * time.Hour)

	status, hours := Classify(checkIn, &checkOut)
	if status != StatusLate {
		t.Fatalf("late short shift should stay late, got %s", status)
	}
	if hours != 3.0 {
		t.Fatalf("expected 3.0 hours, got %v", hours)
	}
}

func TestClassify_LateFullShift(t *testing.T) {
	checkIn := at(9, 20)
	checkOut := checkIn.Add(8 * time.Hour)

	status, hours := Classify(checkIn, &checkOut)
	if status != StatusLate {
		t.Fatalf("expected %s, got %s", StatusLate, status)
	}
	if hours != 8.0 {
		t.Fatalf("expected 8.0 hours, got %v", hours)
	}
}

func TestClassify_ExactFourHoursIsPresent(t *testing.T) {
	checkIn := at(9, 0)
	checkOut := checkIn.Add(4 * time.Hour)

	status, hours := Classify(checkIn, &checkOut)
	if status != StatusPresent {
		t.Fatalf("exactly 4 hours should be present, got %s", status)
	}
	if hours != 4.0 {
		t.Fatalf("expected 4.0 hours, got %v", hours)
	}
}

func TestClassify_HoursRoundedToTwoDecimals(t *testing.T) {
	checkIn := at(9, 0)
	checkOut := checkIn.Add(7*time.Hour + 37*time.Minute) // 7.616666...

	_, hours := Classify(checkIn, &checkOut)
	if hours != 7.62 {
		t.Fatalf("expected 7.62 hours, got %v", hours)
	}
}

func TestReclassify_RecomputesDerivedFields(t *testing.T) {
	rec := &AttendanceRecord{CheckInTime: at(9, 0)}
	rec.Reclassify()
	if rec.Status != StatusPresent || rec.TotalHours != 0 {
		t.Fatalf("open record: got %s / %v", rec.Status, rec.TotalHours)
	}

	out := at(17, 30)
	rec.CheckOutTime = &out
	rec.Reclassify()
	if rec.Status != StatusPresent || rec.TotalHours != 8.5 {
		t.Fatalf("closed record: got %s / %v", rec.Status, rec.TotalHours)
	}
}

func TestValidStatus_ExcludesAbsent(t *testing.T) {
	for _, s := range []Status{StatusPresent, StatusLate, StatusHalfDay} {
		if !ValidStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidStatus(StatusAbsent) {
		t.Fatal("absent must never be a storable status")
	}
	if ValidStatus("vacation") {
		t.Fatal("unknown status should be invalid")
	}
}

func TestDayWindow(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, time.March, 9, 14, 42, 11, 0, loc)

	start, end := DayWindow(now)
	if !start.Equal(time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("window should span 24h, got %v", end.Sub(start))
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2026, time.February, time.UTC)
	if !start.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", end)
	}
}
