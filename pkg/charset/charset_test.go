package charset

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestAnyToUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"utf8 chinese passthrough", []byte("这是一首美丽的歌，歌词来自某张专辑。"), []byte("这是一首美丽的歌，歌词来自某张专辑。")},
		{"utf8 japanese passthrough", []byte("今日もいい天気だね、空がとても青いです。"), []byte("今日もいい天気だね、空がとても青いです。")},
		{"bom stripped", append([]byte{0xef, 0xbb, 0xbf}, []byte("[00:01.00]hello")...), []byte("[00:01.00]hello")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyToUTF8(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("AnyToUTF8(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnyToUTF8GBK(t *testing.T) {
	// "这是一首美丽的歌，献给远方的朋友们。" in GBK
	in := []byte{
		0xd5, 0xe2, 0xca, 0xc7, 0xd2, 0xbb, 0xca, 0xd7, 0xc3, 0xc0, 0xc0, 0xf6,
		0xb5, 0xc4, 0xb8, 0xe8, 0xa3, 0xac, 0xcf, 0xd7, 0xb8, 0xf8, 0xd4, 0xb6,
		0xb7, 0xbd, 0xb5, 0xc4, 0xc5, 0xf3, 0xd3, 0xd1, 0xc3, 0xc7, 0xa1, 0xa3,
	}
	want := "这是一首美丽的歌，献给远方的朋友们。"
	if got := AnyToUTF8(in); string(got) != want {
		t.Errorf("AnyToUTF8(gbk) = %q, want %q", got, want)
	}
}

func TestAnyToUTF8AlwaysValid(t *testing.T) {
	inputs := [][]byte{
		{0xff, 0xfe, 0xfd},
		append([]byte("half valid "), 0x80, 0x81),
	}
	for _, in := range inputs {
		got := AnyToUTF8(in)
		if !utf8.Valid(got) {
			t.Errorf("AnyToUTF8(%v) produced invalid UTF-8: %v", in, got)
		}
	}
}

func TestJianfanCountCht(t *testing.T) {
	j := NewJianfan()
	tests := []struct {
		in   string
		want int
	}{
		{"愛與夢", 3},
		{"爱与梦", 0},
		{"這是一首美麗的歌", 2},
		{"hello world", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := j.CountCht(tt.in); got != tt.want {
			t.Errorf("CountCht(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
