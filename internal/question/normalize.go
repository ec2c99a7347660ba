package question

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unspecified labels questions without a chapter.
const Unspecified = "Unspecified"

var (
	letterSeparators = regexp.MustCompile(`[,;/\s]+`)
	leadingLetter    = regexp.MustCompile(`^([A-Ea-e])`)
)

// NormalizeChapter maps a raw chapter cell to a chapter label.
func NormalizeChapter(value string, catalog Catalog) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Unspecified
	}
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(number, 0) && number == math.Trunc(number) {
		if name, ok := catalog[strconv.FormatInt(int64(number), 10)]; ok {
			return name
		}
	}
	return trimmed
}

// ExtractCorrectLetters returns the option letters named in a correctness cell.
// Tokens are split on commas, semicolons, slashes and whitespace; only the
// leading A-E letter of each token counts. Duplicates keep first position.
func ExtractCorrectLetters(text string) []string {
	var letters []string
	seen := map[string]struct{}{}
	for _, token := range letterSeparators.Split(strings.TrimSpace(text), -1) {
		match := leadingLetter.FindStringSubmatch(token)
		if match == nil {
			continue
		}
		letter := strings.ToUpper(match[1])
		if _, ok := seen[letter]; ok {
			continue
		}
		seen[letter] = struct{}{}
		letters = append(letters, letter)
	}
	return letters
}

// ParsePoint converts a correctness cell to an integer flag. Blank, negative
// and non-numeric values become 0; decimals are truncated.
func ParsePoint(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	digits := strings.Replace(trimmed, ".", "", 1)
	if digits == "" {
		return 0
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0
		}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return int(value)
}

// NormalizeText trims surrounding whitespace from a cell.
func NormalizeText(value string) string {
	return strings.TrimSpace(value)
}
