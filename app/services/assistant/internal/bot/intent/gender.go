package intent

import "strings"

type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
	GenderKids  Gender = "kids"
)

// HistoryLookback bounds how far back the disambiguator scans for a
// gender mention before asking the user.
const HistoryLookback = 4

// genderSets is scanned in order, first hit wins. Women precedes men
// because "men" is a substring of "women" and would shadow it.
var genderSets = []struct {
	gender Gender
	words  []string
}{
	{GenderWomen, []string{"women", "woman", "female", "ladies", "lady", "girls", "girl", "wife"}},
	{GenderMen, []string{"men", "man", "male", "gents", "gentlemen", "boys", "boy", "husband"}},
	{GenderKids, []string{"kids", "kid", "children", "child", "baby", "toddler", "infant"}},
}

// ambiguousProducts need a men/women/kids qualifier before the catalog
// can be searched meaningfully.
var ambiguousProducts = []string{
	"shoes", "shoe", "sneakers", "joggers", "sandals", "slippers",
	"shirt", "t-shirt", "tshirt", "polo", "jeans", "trousers", "kurta",
	"hoodie", "jacket", "sweater", "watch", "wallet", "belt", "cap",
	"socks", "shorts", "perfume", "fragrance", "sunglasses",
}

// genderSpecificProducts never need clarification; the item itself
// implies the audience.
var genderSpecificProducts = []string{
	"abaya", "hijab", "dupatta", "saree", "bridal", "heels", "skirt",
	"blouse", "gown", "lipstick", "makeup", "handbag", "clutch",
	"sherwani", "waistcoat", "tie", "cufflinks", "beard",
}

// DetectGender scans the text against the three keyword sets in fixed
// order and returns the first matching set.
func DetectGender(text string) (Gender, bool) {
	lower := strings.ToLower(text)
	for _, set := range genderSets {
		for _, w := range set.words {
			if strings.Contains(lower, w) {
				return set.gender, true
			}
		}
	}
	return "", false
}

// NeedsClarification decides whether a query must pause for a gender
// qualifier: the text names an ambiguous product, names no
// gender-specific product, and neither the text nor the recent history
// mentions a gender. Both product lists are checked in full before
// deciding.
func NeedsClarification(text string, recentHistory []string) bool {
	lower := strings.ToLower(text)

	ambiguous := false
	for _, p := range ambiguousProducts {
		if strings.Contains(lower, p) {
			ambiguous = true
			break
		}
	}
	specific := false
	for _, p := range genderSpecificProducts {
		if strings.Contains(lower, p) {
			specific = true
			break
		}
	}
	if !ambiguous || specific {
		return false
	}

	if _, ok := DetectGender(lower); ok {
		return false
	}
	start := 0
	if len(recentHistory) > HistoryLookback {
		start = len(recentHistory) - HistoryLookback
	}
	for _, h := range recentHistory[start:] {
		if _, ok := DetectGender(h); ok {
			return false
		}
	}
	return true
}

// Reformulate rewrites the remembered query once a qualifier arrives.
func Reformulate(original string, g Gender) string {
	return original + " for " + string(g)
}
