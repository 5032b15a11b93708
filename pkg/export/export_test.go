package export

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	processed := "[ti:歌名]\n" +
		"[00:01.50]第一句\n" +
		"[00:03.456]second line\n" +
		"untimed line\n" +
		"[00:05.00]\n" +
		"[00:06.00]最后一句"
	entries := Parse(processed)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}
	want := []Entry{
		{1500 * time.Millisecond, "第一句"},
		{3456 * time.Millisecond, "second line"},
		{6 * time.Second, "最后一句"},
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestSubtitles(t *testing.T) {
	entries := []Entry{
		{1 * time.Second, "心が踊るよ"},
		{1 * time.Second, "这首歌真好听"},
		{4 * time.Second, "next line"},
	}
	s := Subtitles(entries)
	if len(s.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(s.Items))
	}
	first := s.Items[0]
	if len(first.Lines) != 2 {
		t.Errorf("shared-timestamp entries not grouped: %d lines", len(first.Lines))
	}
	if first.StartAt != 1*time.Second || first.EndAt != 4*time.Second {
		t.Errorf("first item %v-%v, want 1s-4s", first.StartAt, first.EndAt)
	}
	last := s.Items[1]
	if last.EndAt != 7*time.Second {
		t.Errorf("last item ends at %v, want start+3s", last.EndAt)
	}
}

func TestSubtitlesEmpty(t *testing.T) {
	if s := Subtitles(nil); len(s.Items) != 0 {
		t.Errorf("got %d items, want 0", len(s.Items))
	}
}
