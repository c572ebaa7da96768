package qa

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Passage is one overlapping slice of the material.
type Passage struct {
	// Index is the passage's position in the material.
	Index int
	Text  string
}

// Split breaks text into passages of at most size runes on word
// boundaries. Each passage after the first repeats up to overlap runes of
// trailing words from the one before it. A word longer than size becomes
// a passage of its own. size <= 0 returns the whole text as one passage.
func Split(text string, size, overlap int) []Passage {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if size <= 0 {
		return []Passage{{Index: 0, Text: strings.Join(words, " ")}}
	}

	var out []Passage
	start := 0
	for {
		end, n := start, 0
		for end < len(words) {
			w := utf8.RuneCountInString(words[end])
			if end > start {
				w++ // joining space
			}
			if end > start && n+w > size {
				break
			}
			n += w
			end++
		}
		out = append(out, Passage{Index: len(out), Text: strings.Join(words[start:end], " ")})
		if end == len(words) {
			return out
		}

		// Always advance by at least one word.
		next, kept := end, 0
		for next-1 > start {
			w := utf8.RuneCountInString(words[next-1]) + 1
			if kept+w > overlap {
				break
			}
			kept += w
			next--
		}
		start = next
	}
}

// Select returns the k passages sharing the most terms with question, in
// material order. Ties keep the earlier passage. k <= 0 keeps every
// passage.
func Select(passages []Passage, question string, k int) []Passage {
	if k <= 0 || k >= len(passages) {
		return passages
	}

	want := make(map[string]bool)
	for _, t := range terms(question) {
		want[t] = true
	}
	scores := make([]int, len(passages))
	for i, p := range passages {
		for _, t := range terms(p.Text) {
			if want[t] {
				scores[i]++
			}
		}
	}

	ranked := make([]int, len(passages))
	for i := range ranked {
		ranked[i] = i
	}
	slices.SortStableFunc(ranked, func(a, b int) int { return cmp.Compare(scores[b], scores[a]) })
	ranked = ranked[:k]
	slices.Sort(ranked)

	out := make([]Passage, k)
	for i, idx := range ranked {
		out[i] = passages[idx]
	}
	return out
}

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "was": true, "were": true,
	"what": true, "which": true, "who": true, "how": true, "why": true, "when": true,
	"where": true, "does": true, "did": true, "with": true, "that": true, "this": true,
	"from": true, "into": true, "about": true, "has": true, "have": true, "its": true,
	"their": true, "there": true, "can": true, "you": true,
}

// terms lowercases s and returns its words of three or more runes that
// are not stopwords.
func terms(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 3 && !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}
