package text

import (
	"strings"
	"unicode"
)

// Reverse reverses a string rune-by-rune.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether s reads the same in both directions,
// ignoring case and whitespace.
func IsPalindrome(s string) bool {
	var cleaned []rune
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			cleaned = append(cleaned, r)
		}
	}

	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// CountVowels counts ASCII vowels, case-insensitively.
func CountVowels(s string) int {
	count := 0
	for _, r := range s {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	return count
}

// CountConsonants counts ASCII consonants, case-insensitively.
func CountConsonants(s string) int {
	count := 0
	for _, r := range s {
		lower := unicode.ToLower(r)
		if lower >= 'a' && lower <= 'z' {
			switch lower {
			case 'a', 'e', 'i', 'o', 'u':
			default:
				count++
			}
		}
	}
	return count
}

// CapitalizeWords upper-cases the first letter of each
// whitespace-separated word and lower-cases the rest.
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Dedupe removes duplicate characters while preserving first-seen
// order.
func Dedupe(s string) string {
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, r := range s {
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WordFrequency counts case-folded words, stripping anything that is
// not a letter or digit.
func WordFrequency(s string) map[string]int {
	frequency := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		var b strings.Builder
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if clean := b.String(); clean != "" {
			frequency[clean]++
		}
	}
	return frequency
}

// LongestWord returns the longest whitespace-separated word, or the
// empty string for blank input. Earlier words win ties.
func LongestWord(s string) string {
	longest := ""
	for _, word := range strings.Fields(s) {
		if len(word) > len(longest) {
			longest = word
		}
	}
	return longest
}
