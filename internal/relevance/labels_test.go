package relevance

import "testing"

func TestFormatAge(t *testing.T) {
	cases := map[int]string{
		0:  "Newborn",
		1:  "1 Months",
		11: "11 Months",
		12: "1 Year",
		15: "1 Year 3m",
		24: "2 Years",
		71: "5 Years 11m",
	}
	for months, want := range cases {
		if got := FormatAge(months); got != want {
			t.Fatalf("FormatAge(%d) = %q, want %q", months, got, want)
		}
	}
}

func TestOffsetLabel(t *testing.T) {
	if got := OffsetLabel(0); got != "NEW THIS MONTH" {
		t.Fatalf("unexpected label for 0: %q", got)
	}
	if got := OffsetLabel(-2); got != "2m ago" {
		t.Fatalf("unexpected label for -2: %q", got)
	}
	if got := OffsetLabel(3); got != "Coming in 3m" {
		t.Fatalf("unexpected label for 3: %q", got)
	}
}

func TestStartLabel(t *testing.T) {
	if got := StartLabel(0); got != "Birth" {
		t.Fatalf("expected Birth, got %q", got)
	}
	if got := StartLabel(8); got != "8mo" {
		t.Fatalf("expected 8mo, got %q", got)
	}
}
