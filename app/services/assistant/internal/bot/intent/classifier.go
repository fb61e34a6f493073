package intent

import "strings"

// DefaultThreshold is the tunable confidence floor below which a match
// degrades to Unknown.
const DefaultThreshold = 0.55

type Result struct {
	Category   string
	Confidence float64
}

// Classifier scans a fixed taxonomy with the fuzzy scorer and keeps the
// single best (category, score) pair. Ties resolve to the entry seen
// first in taxonomy order.
type Classifier struct {
	taxonomy  Taxonomy
	threshold float64
}

func NewClassifier(taxonomy Taxonomy, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{
		taxonomy:  taxonomy,
		threshold: threshold,
	}
}

func (c *Classifier) Classify(text string) Result {
	if IsGreeting(text) {
		return Result{Category: KeyGreeting, Confidence: 1}
	}

	best := Result{Category: KeyUnknown}
	for _, entry := range c.taxonomy {
		for _, syn := range entry.Synonyms {
			// strictly greater keeps the first-seen entry on ties
			if s := Score(text, syn); s > best.Confidence {
				best = Result{Category: entry.Key, Confidence: s}
			}
		}
	}

	if best.Confidence < c.threshold {
		best.Category = KeyUnknown
	}
	return best
}

// IsGreeting runs before any fuzzy scan and short-circuits the whole
// classification when it hits.
func IsGreeting(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return false
	}
	for _, g := range Greetings {
		if normalized == g || strings.HasPrefix(normalized, g+" ") {
			return true
		}
	}
	return false
}

// MentionsProduct reports whether the text contains any fixed product
// keyword, case-insensitive substring containment.
func MentionsProduct(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range ProductKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
