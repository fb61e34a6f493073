package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// Load reads both reference tables synchronously and returns finished
// in-memory tables or an error. A row that fails to parse is skipped
// with a warning; only an unreadable file fails the whole load.
func Load(categoriesPath, galleriesPath string) (*Tables, error) {
	categories, err := loadCategories(categoriesPath)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	galleries, err := loadGalleries(galleriesPath)
	if err != nil {
		return nil, fmt.Errorf("load galleries: %w", err)
	}
	return &Tables{Categories: categories, Galleries: galleries}, nil
}

func loadCategories(path string) ([]Category, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(records))
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		if len(rec) < 2 || strings.TrimSpace(rec[0]) == "" || strings.TrimSpace(rec[1]) == "" {
			logx.Infow("skipping malformed category row", logx.Field("file", path), logx.Field("row", i+1))
			continue
		}
		categories = append(categories, Category{
			ID:   strings.TrimSpace(rec[0]),
			Name: strings.TrimSpace(rec[1]),
		})
	}
	return categories, nil
}

func loadGalleries(path string) ([]Gallery, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}

	galleries := make([]Gallery, 0, len(records))
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		if len(rec) < 2 || strings.TrimSpace(rec[0]) == "" || strings.TrimSpace(rec[1]) == "" {
			logx.Infow("skipping malformed gallery row", logx.Field("file", path), logx.Field("row", i+1))
			continue
		}
		related, err := parseIDList(rec)
		if err != nil {
			logx.Infow("skipping gallery row with bad related ids",
				logx.Field("file", path), logx.Field("row", i+1), logx.Field("err", err))
			continue
		}
		galleries = append(galleries, Gallery{
			CategoryID:         strings.TrimSpace(rec[0]),
			DisplayKey:         strings.TrimSpace(rec[1]),
			RelatedCategoryIDs: related,
		})
	}
	return galleries, nil
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(rec[0]))
	return first == "id" || first == "category_id" || first == "categoryid"
}

// parseIDList accepts the third column as a bracketed list, e.g.
// "[c2, c7]". Brackets and quotes are tolerated; an unbalanced bracket
// is a malformed row.
func parseIDList(rec []string) ([]string, error) {
	if len(rec) < 3 {
		return nil, nil
	}
	raw := strings.TrimSpace(rec[2])
	if raw == "" {
		return nil, nil
	}

	open := strings.HasPrefix(raw, "[")
	closed := strings.HasSuffix(raw, "]")
	if open != closed {
		return nil, fmt.Errorf("unbalanced brackets in %q", raw)
	}
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id := strings.Trim(strings.TrimSpace(p), `"'`)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
