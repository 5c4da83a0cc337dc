package domain

import "sort"

// ExclusionSet holds the content IDs hidden from a user's default feed:
// everything they reacted to (liked or disliked) plus everything they
// explicitly removed. The feed only shows content the user has not yet
// touched.
type ExclusionSet map[int64]struct{}

func NewExclusionSet(ids ...int64) ExclusionSet {
	s := make(ExclusionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s ExclusionSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// FilterExcluded returns the items whose IDs are not in the exclusion set.
func FilterExcluded(items []ContentItem, excluded ExclusionSet) []ContentItem {
	kept := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if excluded.Contains(item.ID) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// FilterByPreferredTags keeps items having at least one tag in the preference
// list. An empty preference list means the user never opted into categories,
// so no restriction applies at all.
func FilterByPreferredTags(items []ContentItem, preferredTagIDs []int64) []ContentItem {
	if len(preferredTagIDs) == 0 {
		return items
	}

	preferred := make(map[int64]struct{}, len(preferredTagIDs))
	for _, id := range preferredTagIDs {
		preferred[id] = struct{}{}
	}

	kept := make([]ContentItem, 0, len(items))
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := preferred[tag.ID]; ok {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}

// SortByDateStart orders items by start date ascending with undated items
// last, then by ID for a stable order.
func SortByDateStart(items []ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if c := compareDateStart(items[i], items[j]); c != 0 {
			return c < 0
		}
		return items[i].ID < items[j].ID
	})
}

func compareDateStart(a, b ContentItem) int {
	switch {
	case a.DateStart == nil && b.DateStart == nil:
		return 0
	case a.DateStart == nil:
		return 1
	case b.DateStart == nil:
		return -1
	case a.DateStart.Before(*b.DateStart):
		return -1
	case a.DateStart.After(*b.DateStart):
		return 1
	default:
		return 0
	}
}

// AssembleFeed composes the default-feed pipeline over an already
// city/date-scoped candidate set: drop excluded items, restrict to preferred
// tags when the user has any preference, dedupe, and order by start date.
func AssembleFeed(candidates []ContentItem, excluded ExclusionSet, preferredTagIDs []int64) []ContentItem {
	items := FilterExcluded(candidates, excluded)
	items = FilterByPreferredTags(items, preferredTagIDs)
	items = dedupeByID(items)
	SortByDateStart(items)
	return items
}

func dedupeByID(items []ContentItem) []ContentItem {
	seen := make(map[int64]struct{}, len(items))
	out := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
