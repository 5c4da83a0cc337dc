package domain

import (
	"sort"
	"strings"
	"time"
)

// Per-token relevance weights. A name hit outranks a location hit, which
// outranks a description hit.
const (
	scoreNameMatch        = 10
	scoreLocationMatch    = 5
	scoreDescriptionMatch = 3
)

// SearchFilters carries the structured search criteria. Zero values mean
// "no filter" throughout.
type SearchFilters struct {
	Query     string
	City      City
	EventType EventType
	DateFrom  *time.Time
	DateTo    *time.Time
	TagIDs    []int64
}

// ContentPage is one page of an ordered content listing, along with the
// pre-pagination total.
type ContentPage struct {
	Contents   []ContentItem
	TotalCount int
	Skip       int
	Limit      int
	HasMore    bool
}

// NewContentPage slices one page out of an already ordered, already filtered
// list.
func NewContentPage(items []ContentItem, skip, limit int) ContentPage {
	return ContentPage{
		Contents:   PaginateContent(items, skip, limit),
		TotalCount: len(items),
		Skip:       skip,
		Limit:      limit,
		HasMore:    HasMore(len(items), skip, limit),
	}
}

// TokenizeQuery splits a free-text query on whitespace, trimming and
// lower-casing tokens and dropping empties. An empty result means no text
// filter applies.
func TokenizeQuery(query string) []string {
	var tokens []string
	for _, word := range strings.Fields(query) {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// MatchesAllTokens reports whether every token substring-matches at least one
// of name, description, or location, case-insensitively. OR across fields per
// token, AND across tokens: a multi-word query requires all words to appear,
// each anywhere.
func MatchesAllTokens(item ContentItem, tokens []string) bool {
	name := strings.ToLower(item.Name)
	description := strings.ToLower(item.Description)
	location := strings.ToLower(item.Location)

	for _, token := range tokens {
		if strings.Contains(name, token) ||
			strings.Contains(description, token) ||
			strings.Contains(location, token) {
			continue
		}
		return false
	}
	return true
}

// FilterByTokens keeps the items matching every token. With no tokens the
// input is returned unchanged.
func FilterByTokens(items []ContentItem, tokens []string) []ContentItem {
	if len(tokens) == 0 {
		return items
	}
	kept := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if MatchesAllTokens(item, tokens) {
			kept = append(kept, item)
		}
	}
	return kept
}

// RelevanceScore sums the field weights over all tokens: +10 per token found
// in the name, +5 in the location, +3 in the description. A token can score
// in several fields at once.
func RelevanceScore(item ContentItem, tokens []string) int {
	name := strings.ToLower(item.Name)
	description := strings.ToLower(item.Description)
	location := strings.ToLower(item.Location)

	score := 0
	for _, token := range tokens {
		if strings.Contains(name, token) {
			score += scoreNameMatch
		}
		if strings.Contains(location, token) {
			score += scoreLocationMatch
		}
		if strings.Contains(description, token) {
			score += scoreDescriptionMatch
		}
	}
	return score
}

// RankByRelevance orders items by relevance score descending, tie-broken by
// start date ascending with undated items last, then by ID.
func RankByRelevance(items []ContentItem, tokens []string) {
	scores := make(map[int64]int, len(items))
	for _, item := range items {
		scores[item.ID] = RelevanceScore(item, tokens)
	}

	sort.SliceStable(items, func(i, j int) bool {
		si, sj := scores[items[i].ID], scores[items[j].ID]
		if si != sj {
			return si > sj
		}
		if c := compareDateStart(items[i], items[j]); c != 0 {
			return c < 0
		}
		return items[i].ID < items[j].ID
	})
}

// PaginateContent applies skip/limit to an already ordered list.
func PaginateContent(items []ContentItem, skip, limit int) []ContentItem {
	if skip >= len(items) {
		return []ContentItem{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// HasMore reports whether results remain past the requested page, computed
// against the pre-pagination total.
func HasMore(total, skip, limit int) bool {
	return skip+limit < total
}

// LastToken returns the final whitespace-delimited token of a partial query,
// lower-cased, for suggestion lookups. Empty when the query holds no tokens.
func LastToken(query string) string {
	words := strings.Fields(query)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[len(words)-1])
}
