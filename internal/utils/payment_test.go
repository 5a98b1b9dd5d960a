package utils

import "testing"

func TestMaskCardNumber(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"4111111111111234", "1234"},
		{"4111 1111 1111 1234", "1234"},
		{"4111-1111-1111-1234", "1234"},
		{"123", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := MaskCardNumber(c.in); got != c.want {
			t.Fatalf("MaskCardNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 6 || d.Day() != 1 {
		t.Fatalf("unexpected date: %v", d)
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}
	if _, err := ParseDate("06/01/2024"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}
