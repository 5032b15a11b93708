package tagio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.senan.xyz/taglib"

	"github.com/yahayao/lyrics-separate/pkg/charset"
)

var (
	ErrNoLyrics    = errors.New("no lyrics tag")
	ErrUnsupported = errors.New("unsupported audio format")
)

var supportedExts = map[string]bool{
	".flac": true,
	".mp3":  true,
	".ogg":  true,
	".m4a":  true,
	".mp4":  true,
}

// 各容器常见的歌词字段名，按优先级排列。taglib 把 ID3v2 的 USLT
// 和 MP4 的 ©lyr 统一映射到 LYRICS。
var lyricsKeys = []string{
	taglib.Lyrics,
	"UNSYNCED LYRICS",
	"UNSYNCEDLYRICS",
}

// Supported reports whether the file extension is an audio container
// this package can read lyrics tags from.
func Supported(path string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(path))]
}

// ReadLyrics returns the lyrics field of an audio file. A file without
// any lyrics field returns ErrNoLyrics.
func ReadLyrics(path string) (string, error) {
	if !Supported(path) {
		return "", ErrUnsupported
	}
	tags, err := taglib.ReadTags(path)
	if err != nil {
		return "", fmt.Errorf("read tags %s: %w", path, err)
	}
	for _, key := range lyricsKeys {
		vals := tags[key]
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		text := vals[0]
		if !utf8.ValidString(text) {
			text = string(charset.AnyToUTF8([]byte(text)))
		}
		return text, nil
	}
	return "", ErrNoLyrics
}

// WriteLyrics stores lyrics under the canonical LYRICS key and clears
// the alternate fields so only one copy survives.
func WriteLyrics(path, lyrics string) error {
	if !Supported(path) {
		return ErrUnsupported
	}
	tags := map[string][]string{
		taglib.Lyrics:     {lyrics},
		"UNSYNCED LYRICS": {},
		"UNSYNCEDLYRICS":  {},
	}
	if err := taglib.WriteTags(path, tags, 0); err != nil {
		return fmt.Errorf("write tags %s: %w", path, err)
	}
	return nil
}
