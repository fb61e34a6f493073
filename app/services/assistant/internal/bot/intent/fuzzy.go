package intent

import "strings"

// Score returns a similarity between free text and a keyword in [0, 1].
// Empty input scores 0, case-insensitive containment in either direction
// scores exactly 1, everything else falls back to normalized Levenshtein
// distance. Distance operates on runes, both sides lowercased first.
func Score(text, keyword string) float64 {
	if text == "" || keyword == "" {
		return 0
	}

	t := strings.ToLower(text)
	k := strings.ToLower(keyword)
	if strings.Contains(t, k) || strings.Contains(k, t) {
		return 1
	}

	tr := []rune(t)
	kr := []rune(k)
	longest := len(tr)
	if len(kr) > longest {
		longest = len(kr)
	}

	score := 1 - float64(levenshtein(tr, kr))/float64(longest)
	if score < 0 {
		return 0
	}
	return score
}

// levenshtein computes edit distance with a two-row rolling table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minOf(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
