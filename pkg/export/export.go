package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
)

// Entry is one timed lyric line of a processed LRC blob.
type Entry struct {
	Start time.Duration
	Text  string
}

var timedRe = regexp.MustCompile(`^\[(\d{2}):(\d{2})\.(\d{2,3})\](.*)$`)

// 最后一句没有后继时间戳，持续 3 秒
const tailDuration = 3 * time.Second

// Parse collects the timed lines of a processed lyrics blob, in file
// order. Header tags and untimed lines are skipped.
func Parse(processed string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(processed, "\n") {
		m := timedRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[4])
		if text == "" {
			continue
		}
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		frac, _ := strconv.Atoi(m[3])
		ms := frac * 10
		if len(m[3]) == 3 {
			ms = frac
		}
		entries = append(entries, Entry{
			Start: time.Duration(minutes)*time.Minute +
				time.Duration(seconds)*time.Second +
				time.Duration(ms)*time.Millisecond,
			Text: text,
		})
	}
	return entries
}

// Subtitles builds a subtitle document from timed entries. Entries
// sharing one start time become separate lines of a single item; each
// item ends where the next one starts.
func Subtitles(entries []Entry) *astisub.Subtitles {
	s := astisub.NewSubtitles()
	for i := 0; i < len(entries); {
		j := i
		for j < len(entries) && entries[j].Start == entries[i].Start {
			j++
		}
		item := &astisub.Item{StartAt: entries[i].Start}
		if j < len(entries) {
			item.EndAt = entries[j].Start
		} else {
			item.EndAt = entries[i].Start + tailDuration
		}
		for k := i; k < j; k++ {
			item.Lines = append(item.Lines, astisub.Line{
				Items: []astisub.LineItem{{Text: entries[k].Text}},
			})
		}
		s.Items = append(s.Items, item)
		i = j
	}
	return s
}

// WriteSRT writes the processed lyrics next to the source file as .srt.
func WriteSRT(processed, sourcePath string) error {
	return write(processed, sourcePath, ".srt", (*astisub.Subtitles).WriteToSRT)
}

// WriteASS writes the processed lyrics next to the source file as .ass.
func WriteASS(processed, sourcePath string) error {
	return write(processed, sourcePath, ".ass", (*astisub.Subtitles).WriteToSSA)
}

func write(processed, sourcePath, ext string, writeTo func(*astisub.Subtitles, io.Writer) error) error {
	entries := Parse(processed)
	if len(entries) == 0 {
		return fmt.Errorf("no timed lines to export from %s", sourcePath)
	}
	name := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ext
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeTo(Subtitles(entries), f)
}
