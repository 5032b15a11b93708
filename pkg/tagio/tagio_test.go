package tagio

import (
	"errors"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.flac", true},
		{"song.MP3", true},
		{"dir/song.m4a", true},
		{"song.mp4", true},
		{"song.ogg", true},
		{"song.lrc", false},
		{"song.wav", false},
		{"song", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestUnsupportedErrors(t *testing.T) {
	if _, err := ReadLyrics("song.wav"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ReadLyrics: got %v, want ErrUnsupported", err)
	}
	if err := WriteLyrics("song.wav", "text"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("WriteLyrics: got %v, want ErrUnsupported", err)
	}
}
