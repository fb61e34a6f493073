package catalog

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

const (
	maxCategories = 3
	maxLinks      = 6
)

// Weights are the resolver's scoring constants. The defaults are carried
// over from the original tuning and deliberately left adjustable rather
// than re-derived.
type Weights struct {
	ExactName     int
	NameContains  int
	QueryContains int
	WordOverlap   int
	GenderBoost   int
}

func DefaultWeights() Weights {
	return Weights{
		ExactName:     100,
		NameContains:  50,
		QueryContains: 30,
		WordOverlap:   10,
		GenderBoost:   20,
	}
}

type Result struct {
	Categories []Category
	Links      []string
}

// Resolver ranks catalog categories against free text and joins the
// winners to the gallery table. Tables swap atomically on refresh.
type Resolver struct {
	mu       sync.RWMutex
	tables   *Tables
	weights  Weights
	basePath string
}

func NewResolver(tables *Tables, weights Weights, basePath string) *Resolver {
	if tables == nil {
		tables = &Tables{}
	}
	return &Resolver{
		tables:   tables,
		weights:  weights,
		basePath: basePath,
	}
}

// Refresh replaces both tables at once.
func (r *Resolver) Refresh(tables *Tables) {
	if tables == nil {
		return
	}
	r.mu.Lock()
	r.tables = tables
	r.mu.Unlock()
}

func (r *Resolver) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables.Categories) > 0
}

// Resolve scores every category, keeps the top 3 and collects up to 6
// gallery links for them. genderCtx may be empty.
func (r *Resolver) Resolve(query string, genderCtx string) Result {
	r.mu.RLock()
	tables := r.tables
	r.mu.RUnlock()

	type scored struct {
		category Category
		score    int
		order    int
	}

	q := strings.ToLower(strings.TrimSpace(query))
	gender := strings.ToLower(strings.TrimSpace(genderCtx))
	qWords := strings.Fields(q)

	ranked := make([]scored, 0, len(tables.Categories))
	for i, cat := range tables.Categories {
		name := strings.ToLower(cat.Name)
		score := 0
		if name == q {
			score += r.weights.ExactName
		}
		if q != "" && strings.Contains(name, q) {
			score += r.weights.NameContains
		}
		if name != "" && strings.Contains(q, name) {
			score += r.weights.QueryContains
		}
		nWords := strings.Fields(name)
		for _, qw := range qWords {
			if overlaps(qw, nWords) {
				score += r.weights.WordOverlap
			}
		}
		if gender != "" && strings.Contains(name, gender) {
			score += r.weights.GenderBoost
		}
		if score > 0 {
			ranked = append(ranked, scored{category: cat, score: score, order: i})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > maxCategories {
		ranked = ranked[:maxCategories]
	}

	result := Result{}
	for _, s := range ranked {
		result.Categories = append(result.Categories, s.category)
	}
	result.Links = r.collectLinks(tables, result.Categories)
	return result
}

// overlaps reports whether the query word is a substring of, or
// contains, any category-name word.
func overlaps(qw string, nameWords []string) bool {
	for _, nw := range nameWords {
		if strings.Contains(nw, qw) || strings.Contains(qw, nw) {
			return true
		}
	}
	return false
}

func (r *Resolver) collectLinks(tables *Tables, categories []Category) []string {
	seen := make(map[string]bool)
	links := make([]string, 0, maxLinks)
	for _, cat := range categories {
		for _, g := range tables.Galleries {
			if len(links) >= maxLinks {
				return links
			}
			if !galleryMatches(g, cat.ID) || seen[g.DisplayKey] {
				continue
			}
			seen[g.DisplayKey] = true
			links = append(links, r.renderLink(g.DisplayKey))
		}
	}
	return links
}

func galleryMatches(g Gallery, categoryID string) bool {
	if g.CategoryID == categoryID {
		return true
	}
	for _, id := range g.RelatedCategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func (r *Resolver) renderLink(displayKey string) string {
	return r.basePath + whitespaceRun.ReplaceAllString(strings.TrimSpace(displayKey), "%20")
}
