package lyrics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yahayao/lyrics-separate/pkg/script"
)

// Line is one logical line of an LRC blob.
type Line struct {
	Raw       string // trimmed original line
	Timestamp string // verbatim [mm:ss.xx] tag, or ""
	Content   string // Raw with the timestamp stripped, trimmed
	Metadata  bool
}

var (
	timestampRe = regexp.MustCompile(`^\[\d{2}:\d{2}\.\d{2,3}\]`)
	headerRe    = regexp.MustCompile(`^\[(?i:by|ar|ti|al|offset|re|ve|length):.*\]$`)
)

// 带时间戳的制作信息行，例如 [00:00.00]作词:xxx
var creditLabels = []string{"制作人", "作词", "作曲", "编曲", "演唱", "歌手", "专辑", "发行", "词", "曲"}

// Split cuts a lyrics blob into lines and classifies each one.
func Split(text string) []Line {
	var lines []Line
	for _, seg := range strings.Split(text, "\n") {
		seg = strings.TrimSpace(seg)
		l := Line{Raw: seg}
		if seg == "" {
			lines = append(lines, l)
			continue
		}
		if tag := timestampRe.FindString(seg); tag != "" {
			l.Timestamp = tag
			l.Content = strings.TrimSpace(seg[len(tag):])
		} else {
			l.Content = seg
		}
		l.Metadata = isMetadata(l)
		lines = append(lines, l)
	}
	return lines
}

func isMetadata(l Line) bool {
	if headerRe.MatchString(l.Raw) {
		return true
	}
	if l.Timestamp == "" {
		return false
	}
	for _, label := range creditLabels {
		rest, ok := strings.CutPrefix(l.Content, label)
		if !ok {
			continue
		}
		if strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, "：") {
			return true
		}
	}
	return false
}

// Process rewrites a lyrics blob, separating every mixed-script lyric
// line into sibling lines sharing the source line's timestamp.
// Metadata and blank lines pass through untouched.
func Process(text string) string {
	var out []string
	for _, l := range Split(text) {
		if l.Metadata || l.Content == "" {
			out = append(out, l.Raw)
			continue
		}
		parts := script.Separate(l.Content)
		if len(parts) == 1 {
			out = append(out, l.Raw)
			continue
		}
		emitted := 0
		for _, p := range parts {
			if strings.TrimSpace(p) == "" {
				continue
			}
			out = append(out, l.Timestamp+p)
			emitted++
		}
		if emitted == 0 {
			out = append(out, l.Raw)
		}
	}
	return strings.Join(out, "\n")
}

var looseTimestampRe = regexp.MustCompile(`\[(\d+):(\d+)[.:](\d{1,3})\]`)

// NormalizeTimestamps rewrites loose LRC tags to the [mm:ss.xx] form.
func NormalizeTimestamps(text string) string {
	return looseTimestampRe.ReplaceAllStringFunc(text, func(match string) string {
		parts := looseTimestampRe.FindStringSubmatch(match)
		minutes, _ := strconv.Atoi(parts[1])
		seconds, _ := strconv.Atoi(parts[2])
		frac := parts[3]
		centis := 0
		switch len(frac) {
		case 1:
			centis, _ = strconv.Atoi(frac)
			centis *= 10
		case 2:
			centis, _ = strconv.Atoi(frac)
		default:
			centis, _ = strconv.Atoi(frac[:2])
		}
		return fmt.Sprintf("[%02d:%02d.%02d]", minutes, seconds, centis)
	})
}
