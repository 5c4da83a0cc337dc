package domain

// TagCount pairs a tag with the number of content items still available to a
/// user: items in the tag scoped to their city, minus those they liked, minus
// those they removed.
type TagCount struct {
	Tag          Tag
	ContentCount int
}

// AggregateTagCounts computes adjusted per-tag counts from the city-scoped
// tag/content join rows and the user's liked/removed content IDs. An item the
// user both liked and removed is subtracted twice, as in the stored
// aggregation this replaces; the result is clamped at zero rather than going
// negative. Tags with no content in scope are kept with a zero count.
func AggregateTagCounts(tags []Tag, refs []TagContentRef, likedIDs, removedIDs []int64) []TagCount {
	liked := NewExclusionSet(likedIDs...)
	removed := NewExclusionSet(removedIDs...)

	counts := make(map[int64]int, len(tags))
	for _, ref := range refs {
		n := 1
		if liked.Contains(ref.ContentID) {
			n--
		}
		if removed.Contains(ref.ContentID) {
			n--
		}
		counts[ref.TagID] += n
	}

	out := make([]TagCount, 0, len(tags))
	for _, tag := range tags {
		count := counts[tag.ID]
		if count < 0 {
			count = 0
		}
		out = append(out, TagCount{Tag: tag, ContentCount: count})
	}
	return out
}
