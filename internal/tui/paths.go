package tui

import (
	"net/url"
	"strings"
)

// parseDroppedPaths splits text pasted by a terminal drag-and-drop into file
// paths. Terminals differ: some quote each path, some escape spaces with a
// backslash, some send file:// URIs one per line.
func parseDroppedPaths(text string) []string {
	var paths []string
	for _, line := range strings.Split(text, "\n") {
		for _, word := range splitWords(strings.TrimSpace(line)) {
			if p := fromFileURI(word); p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// splitWords splits a line on unquoted blanks. A backslash escapes only a
// blank or a quote, so Windows and UNC paths pass through intact.
func splitWords(line string) []string {
	var (
		words  []string
		cur    strings.Builder
		quote  rune
		inWord bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && quote != '\'' && i+1 < len(runes) && isEscapable(runes[i+1]):
			i++
			cur.WriteRune(runes[i])
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\r':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		words = append(words, cur.String())
	}

	return words
}

func isEscapable(r rune) bool {
	switch r {
	case ' ', '\t', '\'', '"':
		return true
	}
	return false
}

func fromFileURI(word string) string {
	if !strings.HasPrefix(word, "file://") {
		return word
	}

	u, err := url.Parse(word)
	if err != nil || u.Path == "" {
		return word
	}
	return u.Path
}
