package tui

import (
	"reflect"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapWords(t *testing.T) {
	got := wrapWords("Small chunks of avocado, banana, etc.", 16)
	want := []string{"Small chunks of", "avocado, banana,", "etc."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected wrap: %q", got)
	}
	for _, line := range got {
		if runewidth.StringWidth(line) > 16 {
			t.Fatalf("line too wide: %q", line)
		}
	}
}

func TestWrapWordsSplitsLongWords(t *testing.T) {
	got := wrapWords("abcdefghij kl", 4)
	want := []string{"abcd", "efgh", "ij", "kl"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapWordsEmpty(t *testing.T) {
	if got := wrapWords("   ", 10); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
	if got := wrapWords("a b", 0); !reflect.DeepEqual(got, []string{"a b"}) {
		t.Fatalf("unexpected unbounded wrap: %q", got)
	}
}

func TestFitAndTruncateLines(t *testing.T) {
	out := fitLines("ab\ncd\nef", 3, 2)
	if out != "ab \ncd " {
		t.Fatalf("unexpected fit: %q", out)
	}
	if got := truncateLine("Developmental", 8); got != "Devel..." {
		t.Fatalf("unexpected truncate: %q", got)
	}
	if got := truncateLine("🧸🧸🧸", 4); runewidth.StringWidth(got) > 4 {
		t.Fatalf("truncate ignored cell width: %q", got)
	}
}
