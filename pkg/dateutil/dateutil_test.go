package dateutil

import (
	"testing"
	"time"
)

func TestParseLocalDate_Valid(t *testing.T) {
	d, ok := ParseLocalDate("2026-03-15")
	if !ok {
		t.Fatal("合法日期应解析成功")
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("解析结果不正确: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("应归一化到零点: %v", d)
	}
}

func TestParseLocalDate_Invalid(t *testing.T) {
	cases := []string{"", "not-a-date", "2026/03/15", "2026-13-01", "2026-02-30"}
	for _, c := range cases {
		if _, ok := ParseLocalDate(c); ok {
			t.Errorf("非法日期 %q 不应解析成功", c)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	b := time.Date(2026, 3, 12, 0, 1, 0, 0, time.Local)

	if got := DaysBetween(a, b); got != 2 {
		t.Errorf("期望 2 天，实际 %d", got)
	}
	if got := DaysBetween(b, a); got != -2 {
		t.Errorf("期望 -2 天，实际 %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("同日期望 0 天，实际 %d", got)
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

	if d, ok := DaysUntil(today, "2026-03-11"); !ok || d != 1 {
		t.Errorf("期望 (1, true)，实际 (%d, %v)", d, ok)
	}
	if d, ok := DaysUntil(today, "2026-03-03"); !ok || d != -7 {
		t.Errorf("期望 (-7, true)，实际 (%d, %v)", d, ok)
	}
	if _, ok := DaysUntil(today, "garbage"); ok {
		t.Error("非法日期应返回 ok=false")
	}
}
