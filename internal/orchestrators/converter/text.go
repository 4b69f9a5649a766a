package converter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var inputReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u00a0", " ",
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", `"`,
	"\u201d", `"`,
)

// normalizeInput cleans up characters that creep in when copying from a PDF
func normalizeInput(text string) string {
	return inputReplacer.Replace(text)
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// coalesceLines rejoins paragraphs that were hard-wrapped in the source
func coalesceLines(lines []string) []string {
	var entries []string
	for _, line := range lines {
		if n := len(entries); n > 0 && !endsSentence(entries[n-1]) {
			entries[n-1] += " " + line
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

func endsSentence(line string) bool {
	if line == "" {
		return true
	}
	switch line[len(line)-1] {
	case '.', '!', '?', ':', ')':
		return true
	}
	return false
}

var minorWords = map[string]bool{
	"of": true, "the": true, "a": true, "an": true, "and": true, "or": true,
	"in": true, "on": true, "to": true, "with": true, "for": true,
}

// titleCase gives "flame tongue of the north" as "Flame Tongue of the North"
func titleCase(name string) string {
	words := strings.Fields(cases.Title(language.English).String(strings.ToLower(name)))
	for i, w := range words {
		if i > 0 && minorWords[strings.ToLower(w)] {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}
