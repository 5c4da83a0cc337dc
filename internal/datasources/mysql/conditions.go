package mysql

import (
	"time"

	"github.com/afishabot/discovery/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

const dateLayout = "2006-01-02"

// feedDateConds builds the feed's date-window filter: interval overlap when
// both bounds are set, exact match on the corresponding field when only one
// is. The single-bound equality is deliberate and load-bearing for existing
// clients; it is not a half-open range.
func feedDateConds(sb *sqlbuilder.SelectBuilder, window domain.DateWindow) []string {
	var conds []string

	switch {
	case window.Start != nil && window.End != nil:
		conds = append(conds, sb.LessEqualThan("c.date_start", window.End.Format(dateLayout)))
		conds = append(conds, sb.GreaterEqualThan("c.date_end", window.Start.Format(dateLayout)))
	case window.Start != nil:
		conds = append(conds, sb.Equal("c.date_start", window.Start.Format(dateLayout)))
	case window.End != nil:
		conds = append(conds, sb.Equal("c.date_end", window.End.Format(dateLayout)))
	}

	return conds
}

// searchDateConds builds the search endpoint's permissive, OR-based date
// filter. Distinct from the feed's overlap test; the two semantics coexist
// on purpose and must not be unified.
func searchDateConds(sb *sqlbuilder.SelectBuilder, from, to *time.Time) []string {
	var conds []string

	if from != nil {
		f := from.Format(dateLayout)
		conds = append(conds, sb.Or(
			sb.GreaterEqualThan("c.date_start", f),
			sb.And(
				sb.IsNull("c.date_start"),
				sb.GreaterEqualThan("c.date_end", f),
			),
		))
	}

	if to != nil {
		t := to.Format(dateLayout)
		conds = append(conds, sb.Or(
			sb.LessEqualThan("c.date_start", t),
			sb.LessEqualThan("c.date_end", t),
			sb.And(
				sb.IsNull("c.date_start"),
				sb.IsNull("c.date_end"),
			),
		))
	}

	return conds
}

// textSearchConds requires each token to substring-match name, description,
// or location: OR across fields per token, AND across tokens.
func textSearchConds(sb *sqlbuilder.SelectBuilder, tokens []string) []string {
	var conds []string

	for _, token := range tokens {
		pattern := "%" + token + "%"
		conds = append(conds, sb.Or(
			sb.Like("LOWER(c.name)", pattern),
			sb.Like("LOWER(c.description)", pattern),
			sb.Like("LOWER(c.location)", pattern),
		))
	}

	return conds
}
