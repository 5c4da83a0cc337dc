package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/domain"
	"github.com/gorilla/feeds"
)

const rssItemLimit = 50

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.UpcomingContentLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	city, err := parseOptionalCity(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse city in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if city == "" {
		city = domain.DefaultCity
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Upcoming events in %s", city),
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of upcoming events and places added to the discovery service",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	items, err := c.Lister.ListUpcomingContent(ctx, city, time.Now().UTC().Truncate(24*time.Hour), rssItemLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch upcoming content for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		created := time.Time{}
		if item.DateStart != nil {
			created = *item.DateStart
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%d", item.ID),
			IsPermaLink: "false",
			Title:       item.Name,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/v1/contents/%d", c.FeedHostname, item.ID)},
			Description: item.Description,
			Created:     created,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
