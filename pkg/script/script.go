package script

import (
	"strings"
	"unicode"
)

type category uint8

const (
	unassigned category = iota
	japanese
	english
	chinese
)

func isHiragana(r rune) bool { return r >= 0x3040 && r <= 0x309f }
func isKatakana(r rune) bool { return r >= 0x30a0 && r <= 0x30ff }
func isKana(r rune) bool     { return isHiragana(r) || isKatakana(r) }
func isHan(r rune) bool      { return r >= 0x4e00 && r <= 0x9fff }

func isASCIILetter(r rune) bool { return r < 128 && unicode.IsLetter(r) }
func isASCIIWord(r rune) bool   { return r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)) }

// Separate 将一行混合语言的歌词拆成语言统一的行。
// Returns the input unchanged as a single element when no split applies.
func Separate(content string) []string {
	var hasKana, hasHan, hasLetter bool
	for _, r := range content {
		switch {
		case isKana(r):
			hasKana = true
		case isHan(r):
			hasHan = true
		case isASCIILetter(r):
			hasLetter = true
		}
	}
	if hasKana {
		return separateKanaContext(content)
	}
	if hasLetter && hasHan {
		return separateLatinHan(content)
	}
	return []string{content}
}

// separateKanaContext handles lines that contain kana. Han characters
// inherit Japanese from kana within the same space-delimited word;
// a word with no kana is taken as Chinese, even inside an otherwise
// Japanese sentence.
func separateKanaContext(content string) []string {
	runes := []rune(content)
	tags := make([]category, len(runes))

	for i, r := range runes {
		if isKana(r) {
			tags[i] = japanese
		}
	}

	start := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != ' ' {
			continue
		}
		wordCat := chinese
		for j := start; j < i; j++ {
			if isKana(runes[j]) {
				wordCat = japanese
				break
			}
		}
		for j := start; j < i; j++ {
			if tags[j] == unassigned && isHan(runes[j]) {
				tags[j] = wordCat
			}
		}
		start = i + 1
	}

	for i, r := range runes {
		if tags[i] == unassigned && isASCIILetter(r) {
			tags[i] = english
		}
	}

	for i, r := range runes {
		if tags[i] != unassigned {
			continue
		}
		switch {
		case unicode.IsSpace(r):
			prev, next := unassigned, unassigned
			if i > 0 {
				prev = tags[i-1]
			}
			if i < len(runes)-1 {
				next = tags[i+1]
			}
			switch {
			case prev == english || next == english:
				tags[i] = english
			case prev == japanese || next == japanese:
				tags[i] = japanese
			default:
				tags[i] = chinese
			}
		case r == '「' || r == '」':
			tags[i] = japanese
		case strings.ContainsRune(`'"`+"‘’“”", r):
			tags[i] = english
		case strings.ContainsRune("!?。！？", r):
			if c := precedingNonSpace(runes, tags, i); c != unassigned {
				tags[i] = c
			} else {
				tags[i] = chinese
			}
		default:
			if c := preceding(tags, i); c != unassigned {
				tags[i] = c
			} else if c := following(tags, i); c != unassigned {
				tags[i] = c
			} else {
				tags[i] = chinese
			}
		}
	}

	var ja, en, zh []rune
	for i, r := range runes {
		switch tags[i] {
		case japanese:
			ja = append(ja, r)
		case english:
			en = append(en, r)
		default:
			zh = append(zh, r)
		}
	}
	jaText := collapse(string(ja))
	enText := collapse(string(en))
	zhText := collapse(string(zh))

	// 只把中文移到第二行，日英保持原位不拆
	if zhText != "" && (jaText != "" || enText != "") {
		first := jaText
		if enText != "" {
			if first != "" {
				first += " "
			}
			first += enText
		}
		return []string{first, zhText}
	}
	return []string{content}
}

// separateLatinHan handles lines with ASCII letters and Han characters
// but no kana. No word grouping, just a per-rune pass.
func separateLatinHan(content string) []string {
	var en, zh []rune
	for _, r := range content {
		switch {
		case isASCIIWord(r):
			en = append(en, r)
		case isHan(r):
			zh = append(zh, r)
		case strings.ContainsRune(" \t\n\r.,!?;:'\"()[]{}", r):
			if strings.ContainsRune(` '".,!?()[]`, r) {
				en = append(en, r)
			} else {
				zh = append(zh, r)
			}
		default:
			zh = append(zh, r)
		}
	}
	enText := collapse(string(en))
	zhText := collapse(string(zh))

	if zhText != "" && len([]rune(enText)) > 1 {
		return []string{enText, zhText}
	}
	return []string{content}
}

// precedingNonSpace walks left to the nearest assigned non-space slot.
func precedingNonSpace(runes []rune, tags []category, i int) category {
	for j := i - 1; j >= 0; j-- {
		if unicode.IsSpace(runes[j]) {
			continue
		}
		if tags[j] != unassigned {
			return tags[j]
		}
	}
	return unassigned
}

func preceding(tags []category, i int) category {
	for j := i - 1; j >= 0; j-- {
		if tags[j] != unassigned {
			return tags[j]
		}
	}
	return unassigned
}

func following(tags []category, i int) category {
	for j := i + 1; j < len(tags); j++ {
		if tags[j] != unassigned {
			return tags[j]
		}
	}
	return unassigned
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
