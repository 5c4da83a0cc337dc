package datasources

import (
	"context"
	"time"

	"github.com/afishabot/discovery/internal/domain"
)

// ContentRepository is the full surface the relational store implements.
// Consumers depend on the narrow per-capability interfaces below instead.
type ContentRepository interface {
	UserGetter
	UserProvisioner
	UserCreator
	UserCityUpdater
	ContentFetcher
	FeedCandidateLister
	TaggedContentLister
	LikedContentLister
	ReactedContentLister
	PreferredTagLister
	ContentSearcher
	NameSuggestionLister
	PopularTagLister
	MacroCategoryGetter
	MacroCategoryLister
	TagGetter
	TagLister
	TagContentRefLister
	LikedContentIDLister
	RemovedContentIDLister
	ReactionUpserter
	ReactionDeleter
	RemovedFavoriteCreator
	PreferenceCreator
	PreferenceDeleter
	PreferenceNameLister
	FeedbackCreator
	RatingUpserter
	RatingDeleter
	RatingStatsGetter
	UserRatingLister
	ReviewCreator
	ContentReviewLister
	UpcomingContentLister
	OutdatedContentPurger
}

type UserGetter interface {
	// GetUserByUsername returns domain.ErrNotFound for unknown usernames.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserProvisioner interface {
	// GetOrCreateUser creates the user with the default city on first
	// contact; reaction and preference writes provision users lazily.
	GetOrCreateUser(ctx context.Context, username string) (domain.User, error)
}

type UserCreator interface {
	CreateUser(ctx context.Context, username string, city domain.City) (domain.User, error)
}

type UserCityUpdater interface {
	UpdateUserCity(ctx context.Context, username string, city domain.City) error
}

type ContentFetcher interface {
	FetchContentByID(ctx context.Context, id int64) (domain.ContentItem, error)
}

type FeedCandidateLister interface {
	// ListFeedCandidates returns the city-scoped candidate set for the
	// default feed, restricted by the feed's date-window semantics:
	// interval overlap when both bounds are set, exact match on the
	// corresponding field when only one is.
	ListFeedCandidates(ctx context.Context, city domain.City, window domain.DateWindow) ([]domain.ContentItem, error)
}

type TaggedContentLister interface {
	ListContentByTagName(ctx context.Context, tagName string, city domain.City, window domain.DateWindow) ([]domain.ContentItem, error)
}

type LikedContentLister interface {
	// ListLikedContent returns content the user reacted to with the given
	// value, most recent reaction first.
	ListLikedContent(ctx context.Context, userID int64, value bool, window domain.DateWindow) ([]domain.ContentItem, error)
}

type ReactedContentLister interface {
	// ListReactedContentIDs returns the union of liked/disliked and
	// removed content IDs: the user's feed exclusion set.
	ListReactedContentIDs(ctx context.Context, userID int64) ([]int64, error)
}

type PreferredTagLister interface {
	ListPreferredTagIDs(ctx context.Context, userID int64) ([]int64, error)
}

type ContentSearcher interface {
	// SearchContent returns every item matching the filters; ranking and
	// pagination happen in the caller. The text filter requires each
	// token to appear in name, description, or location.
	SearchContent(ctx context.Context, filters domain.SearchFilters) ([]domain.ContentItem, error)
}

type NameSuggestionLister interface {
	// ListNameSuggestions returns distinct content names containing the
	// term, optionally scoped to a city ("" for none).
	ListNameSuggestions(ctx context.Context, term string, city domain.City, limit int) ([]string, error)
}

type PopularTagLister interface {
	ListPopularTags(ctx context.Context, limit int) ([]domain.TagCount, error)
}

type MacroCategoryGetter interface {
	GetMacroCategoryByName(ctx context.Context, name string) (domain.MacroCategory, error)
}

type MacroCategoryLister interface {
	ListMacroCategories(ctx context.Context, skip, limit int) ([]domain.MacroCategory, int, error)
	GetMacroCategoryByID(ctx context.Context, id int64) (domain.MacroCategory, error)
}

type TagGetter interface {
	GetTagByID(ctx context.Context, id int64) (domain.Tag, error)
}

type TagLister interface {
	// ListTagsByMacroCategory returns the category's tags ordered by ID.
	ListTagsByMacroCategory(ctx context.Context, macroCategoryID int64) ([]domain.Tag, error)
}

type TagContentRefLister interface {
	// ListTagContentRefs returns the tag/content join rows for a
	// category, scoped to a city and an optional date window with the
	// feed's overlap semantics.
	ListTagContentRefs(ctx context.Context, macroCategoryID int64, city domain.City, window domain.DateWindow) ([]domain.TagContentRef, error)
}

type LikedContentIDLister interface {
	// ListLikedContentIDs returns content the user reacted to with
	// either value; tag aggregation subtracts likes and dislikes alike.
	ListLikedContentIDs(ctx context.Context, userID int64) ([]int64, error)
}

type RemovedContentIDLister interface {
	ListRemovedContentIDs(ctx context.Context, userID int64) ([]int64, error)
}

type ReactionUpserter interface {
	// UpsertReaction sets the like value for the (user, content) pair,
	// overwriting any previous reaction.
	UpsertReaction(ctx context.Context, userID, contentID int64, value bool) error
}

type ReactionDeleter interface {
	// DeleteReaction returns domain.ErrNotFound when no reaction exists.
	DeleteReaction(ctx context.Context, userID, contentID int64) error
}

type RemovedFavoriteCreator interface {
	// CreateRemovedFavorite is idempotent per (user, content) pair.
	CreateRemovedFavorite(ctx context.Context, userID, contentID int64) error
}

type PreferenceCreator interface {
	// CreatePreference is idempotent per (user, tag) pair.
	CreatePreference(ctx context.Context, userID, tagID int64) error
}

type PreferenceDeleter interface {
	// DeletePreference returns domain.ErrNotFound when absent.
	DeletePreference(ctx context.Context, userID, tagID int64) error
}

type PreferenceNameLister interface {
	ListPreferenceTagNames(ctx context.Context, userID int64) ([]string, error)
}

type FeedbackCreator interface {
	CreateFeedback(ctx context.Context, userID int64, message string) error
}

type RatingUpserter interface {
	UpsertRating(ctx context.Context, userID, contentID int64, rating int) (domain.Rating, error)
}

type RatingDeleter interface {
	DeleteRating(ctx context.Context, userID, contentID int64) error
}

type RatingStatsGetter interface {
	GetContentRatingStats(ctx context.Context, contentID int64) (domain.RatingStats, error)
}

type UserRatingLister interface {
	ListUserRatings(ctx context.Context, userID int64, skip, limit int) ([]domain.Rating, int, error)
}

type ReviewCreator interface {
	CreateReview(ctx context.Context, userID, contentID int64, text string) (domain.Review, error)
}

type ContentReviewLister interface {
	ListContentReviews(ctx context.Context, contentID int64, skip, limit int) ([]domain.Review, int, error)
}

type UpcomingContentLister interface {
	// ListUpcomingContent returns a city's events starting on or after
	// the given day, soonest first.
	ListUpcomingContent(ctx context.Context, city domain.City, from time.Time, limit int) ([]domain.ContentItem, error)
}

type OutdatedContentPurger interface {
	// PurgeOutdatedContent deletes ended events: multi-day events whose
	// end passed before the given day and single-day events whose start
	// did. Undated content is never purged. Returns rows deleted.
	PurgeOutdatedContent(ctx context.Context, before time.Time) (int64, error)
}
