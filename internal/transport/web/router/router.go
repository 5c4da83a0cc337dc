package router

import (
	"net/http"
	"time"

	"github.com/afishabot/discovery/internal/command"
	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/transport/web/controller"
	"github.com/gorilla/mux"
)

func MakeRouter(
	repo datasources.ContentRepository,
	imageBaseURL string,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/health", controller.Health{}).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents_feed", controller.ContentsFeed{
		Feed: &command.AssembleFeed{
			UserFetcher:      repo,
			CandidateLister:  repo,
			ReactionLister:   repo,
			PreferenceLister: repo,
		},
		ImageBaseURL: imageBaseURL,
		CacheMaxAge:  latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents", controller.TaggedContentsList{
		Tagged: &command.ListContentByTag{
			UserFetcher:    repo,
			TaggedLister:   repo,
			ReactionLister: repo,
		},
		ImageBaseURL: imageBaseURL,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents/liked", controller.LikedContentsList{
		Liked: &command.ListLikedContent{
			UserFetcher: repo,
			LikedLister: repo,
		},
		ImageBaseURL: imageBaseURL,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}", controller.ContentGet{
		Fetcher:      repo,
		ImageBaseURL: imageBaseURL,
		CacheMaxAge:  latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}/like", controller.ReactionSet{
		SetCmd: &command.SetReaction{
			UserProvisioner: repo,
			ContentFetcher:  repo,
			Upserter:        repo,
		},
		Value: true,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}/dislike", controller.ReactionSet{
		SetCmd: &command.SetReaction{
			UserProvisioner: repo,
			ContentFetcher:  repo,
			Upserter:        repo,
		},
		Value: false,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}/mark", controller.FavoriteRemove{
		RemoveCmd: &command.RemoveFavorite{
			UserFetcher:    repo,
			ReactionRemove: repo,
			RemovedMarker:  repo,
		},
	}).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}/rating", controller.RatingSet{
		SetCmd: &command.SetRating{
			UserProvisioner: repo,
			ContentFetcher:  repo,
			Upserter:        repo,
		},
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}/rating", controller.RatingRemove{
		RemoveCmd: &command.RemoveRating{
			UserFetcher: repo,
			Deleter:     repo,
		},
	}).Methods(http.MethodDelete)

	r.Handle("/v1/contents/{content_id:[0-9]+}/rating/stats", controller.RatingStats{
		Contents: repo,
		Stats:    repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}/reviews", controller.ReviewCreate{
		CreateCmd: &command.CreateReview{
			UserProvisioner: repo,
			ContentFetcher:  repo,
			Creator:         repo,
		},
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/contents/{content_id:[0-9]+}/reviews", controller.ContentReviewsList{
		Contents: repo,
		Lister:   repo,
	}).Methods(http.MethodGet)

	r.Handle("/v1/search", controller.Search{
		Searcher: &command.SearchContent{
			UserFetcher: repo,
			Searcher:    repo,
		},
		ImageBaseURL: imageBaseURL,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/search/suggestions", controller.SearchSuggestions{
		Suggester: &command.SuggestNames{
			UserFetcher:      repo,
			SuggestionLister: repo,
		},
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/search/popular-tags", controller.PopularTags{
		Lister:      repo,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tags", controller.TagsList{
		Aggregator: &command.AggregateTags{
			UserFetcher:      repo,
			CategoryFetcher:  repo,
			TagLister:        repo,
			RefLister:        repo,
			LikedIDLister:    repo,
			RemovedIDLister:  repo,
			PreferenceLister: repo,
		},
		ImageBaseURL: imageBaseURL,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/macro-categories", controller.MacroCategoriesList{
		Lister:       repo,
		ImageBaseURL: imageBaseURL,
		CacheMaxAge:  latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/macro-categories/{category_id:[0-9]+}", controller.MacroCategoryGet{
		Lister:       repo,
		ImageBaseURL: imageBaseURL,
		CacheMaxAge:  latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/cities", controller.CitiesList{}).
		Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/register", controller.UserRegister{
		RegisterCmd: &command.RegisterUser{
			UserFetcher: repo,
			UserCreator: repo,
		},
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/{username}", controller.UserGet{
		Fetcher: repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{username}/city", controller.UserCitySet{
		Updater: repo,
	}).Methods(http.MethodPatch, http.MethodOptions)

	r.Handle("/v1/users/{username}/ratings", controller.UserRatingsList{
		Users:  repo,
		Lister: repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/preferences", controller.PreferencesList{
		Users:  repo,
		Lister: repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/preferences", controller.PreferenceSet{
		SetCmd: &command.SetPreference{
			UserProvisioner: repo,
			TagFetcher:      repo,
			Creator:         repo,
		},
	}).Methods(http.MethodPost)

	r.Handle("/v1/preferences", controller.PreferenceRemove{
		RemoveCmd: &command.RemovePreference{
			UserFetcher: repo,
			Deleter:     repo,
		},
	}).Methods(http.MethodDelete)

	r.Handle("/v1/feedback", controller.Feedback{
		SendCmd: &command.SendFeedback{
			UserProvisioner: repo,
			Creator:         repo,
		},
	}).Methods(http.MethodPost, http.MethodOptions)

	rssFeed := controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Lister:          repo,
		CacheMaxAge:     latestCacheMaxAge,
	}
	r.Handle(rssFeed.FeedPath, rssFeed)

	return r, nil
}
