// Package wordlist loads custom alphabet example words from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// LoadWords reads "LETTER word" lines from the provided file path. Blank
// lines and lines starting with '#' are skipped. Each letter may appear once
// and its word must pass FilterForLetter.
func LoadWords(path string) (map[rune]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words := map[rune]string{}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		letter, word, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, dup := words[letter]; dup {
			return nil, fmt.Errorf("line %d: letter %c listed twice", lineNo, letter)
		}
		words[letter] = word
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

func parseLine(line string) (rune, string, error) {
	sep := strings.IndexFunc(line, unicode.IsSpace)
	if sep < 0 {
		return 0, "", fmt.Errorf("expected \"LETTER word\", got %q", line)
	}
	head, word := line[:sep], strings.TrimSpace(line[sep:])
	runes := []rune(head)
	if len(runes) != 1 {
		return 0, "", fmt.Errorf("expected a single letter, got %q", head)
	}
	letter := unicode.ToUpper(runes[0])
	if letter < 'A' || letter > 'Z' {
		return 0, "", fmt.Errorf("expected a letter A-Z, got %q", head)
	}
	if !FilterForLetter(letter)(word) {
		return 0, "", fmt.Errorf("word %q does not start with %c", word, letter)
	}
	return letter, word, nil
}
