package numeric

import "testing"

// ── RoundHalfUp 测试 ──

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{9.5, 10},
		{9.49, 9},
		{9.51, 10},
		{0, 0},
		{0.5, 1},
		{19.5, 20},
		{10.0, 10},
	}
	for _, c := range cases {
		if got := RoundHalfUp(c.in); got != c.want {
			t.Errorf("RoundHalfUp(%v) 期望 %d，实际 %d", c.in, c.want, got)
		}
	}
}

// ── Clamp 测试 ──

func TestClamp(t *testing.T) {
	if got := Clamp(20.4, 0, 20); got != 20 {
		t.Errorf("超出上限应截断为 20，实际 %v", got)
	}
	if got := Clamp(-1, 0, 20); got != 0 {
		t.Errorf("低于下限应截断为 0，实际 %v", got)
	}
	if got := Clamp(13.5, 0, 20); got != 13.5 {
		t.Errorf("区间内应原样返回，实际 %v", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(21, 0, 20); got != 20 {
		t.Errorf("期望 20，实际 %d", got)
	}
	if got := ClampInt(15, 0, 20); got != 15 {
		t.Errorf("期望 15，实际 %d", got)
	}
}

// ── ParseDecimal 测试 ──

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3,5", 3.5, true},
		{"3.5", 3.5, true},
		{" 15,75 ", 15.75, true},
		{"1.234,5", 1234.5, true},
		{"1,234.5", 1234.5, true},
		{"1,234,567", 1234567, true},
		{"12", 12, true},
		{"", 0, false},
		{"abc", 0, false},
		{"3,5a", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseDecimal(c.in)
		if ok != c.ok {
			t.Errorf("ParseDecimal(%q) ok 期望 %v，实际 %v", c.in, c.ok, ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ParseDecimal(%q) 期望 %v，实际 %v", c.in, c.want, got)
		}
	}
}
