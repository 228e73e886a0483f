package version

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.1", "1.0", 1},
		{"1.9", "1.10", -1},
		{"1.10", "2.0", -1},
		{"0.9.1", "0.10.0", -1},
		{"v1.2", "v1.10", -1},
		{"1.0", "1.0.1", -1},
		{"007", "7", 0},
		{"1.0-rc1", "1.0-rc2", -1},
		{"HEAD", "1.0", 1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestMaxMin(t *testing.T) {
	if got := Max("1.0", "1.1"); got != "1.1" {
		t.Errorf("Max = %q, want 1.1", got)
	}
	if got := Max("", "1.1"); got != "1.1" {
		t.Errorf("Max with empty = %q, want 1.1", got)
	}
	if got := Min("1.0", "1.1"); got != "1.0" {
		t.Errorf("Min = %q, want 1.0", got)
	}
	if got := Min("1.0", ""); got != "1.0" {
		t.Errorf("Min with empty = %q, want 1.0", got)
	}
}
