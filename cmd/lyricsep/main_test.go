package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSnippetTruncatesOnRunes(t *testing.T) {
	long := strings.Repeat("歌", 300)
	got := snippet(long)
	if !utf8.ValidString(got) {
		t.Errorf("snippet produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("歌", 200) + "..."; got != want {
		t.Errorf("snippet = %q, want 200 runes plus ellipsis", got)
	}

	short := strings.Repeat("词", 200)
	if got := snippet(short); got != short {
		t.Errorf("snippet(%d runes) = %q, want unchanged", 200, got)
	}
}

func TestDisplayPreviewIsUntruncated(t *testing.T) {
	long := strings.Repeat("[00:01.00]夢の歌\n", 50)
	if got := display(long, true); got != long {
		t.Errorf("preview display truncated: %d chars, want %d", len(got), len(long))
	}
	if got := display(long, false); len([]rune(got)) != 203 {
		t.Errorf("non-preview display = %d runes, want 203", len([]rune(got)))
	}
}
