package controller

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/afishabot/discovery/internal/domain"
)

const responseDateLayout = "2006-01-02"

type ContentResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Image         string          `json:"image,omitempty"`
	Contact       json.RawMessage `json:"contact,omitempty"`
	DateStart     *string         `json:"date_start"`
	DateEnd       *string         `json:"date_end"`
	Time          string          `json:"time,omitempty"`
	Location      string          `json:"location,omitempty"`
	Cost          *int64          `json:"cost"`
	City          string          `json:"city"`
	UniqueID      string          `json:"unique_id,omitempty"`
	EventType     string          `json:"event_type"`
	PublisherType string          `json:"publisher_type"`
	PublisherID   int64           `json:"publisher_id"`
	MacroCategory string          `json:"macro_category"`
	Tags          []TagResponse   `json:"tags"`
}

type TagResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type ContentPageResponse struct {
	Contents   []ContentResponse `json:"contents"`
	TotalCount int               `json:"total_count"`
	Skip       int               `json:"skip"`
	Limit      int               `json:"limit"`
	HasMore    bool              `json:"has_more"`
}

func renderContentPage(page domain.ContentPage, imageBaseURL string) ContentPageResponse {
	return ContentPageResponse{
		Contents:   renderContents(page.Contents, imageBaseURL),
		TotalCount: page.TotalCount,
		Skip:       page.Skip,
		Limit:      page.Limit,
		HasMore:    page.HasMore,
	}
}

func renderContents(items []domain.ContentItem, imageBaseURL string) []ContentResponse {
	rendered := make([]ContentResponse, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, renderContent(item, imageBaseURL))
	}
	return rendered
}

func renderContent(item domain.ContentItem, imageBaseURL string) ContentResponse {
	tags := make([]TagResponse, 0, len(item.Tags))
	for _, tag := range item.Tags {
		tags = append(tags, TagResponse{
			ID:          tag.ID,
			Name:        tag.Name,
			Description: tag.Description,
			Image:       absoluteImageURL(imageBaseURL, tag.Image),
		})
	}

	return ContentResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		Image:         absoluteImageURL(imageBaseURL, item.Image),
		Contact:       item.Contact,
		DateStart:     renderDate(item.DateStart),
		DateEnd:       renderDate(item.DateEnd),
		Time:          item.Time,
		Location:      item.Location,
		Cost:          item.Cost,
		City:          string(item.City),
		UniqueID:      item.UniqueID,
		EventType:     string(item.EventType),
		PublisherType: string(item.Publisher.Kind),
		PublisherID:   item.Publisher.ID,
		MacroCategory: item.MacroCategoryName(),
		Tags:          tags,
	}
}

func renderDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(responseDateLayout)
	return &formatted
}

// absoluteImageURL prefixes store-relative image paths with the public base
// URL; already-absolute URLs pass through.
func absoluteImageURL(base, path string) string {
	if path == "" || base == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	City     string `json:"city"`
}

func renderUser(user domain.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username, City: string(user.City)}
}

type RatingResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	ContentID int64     `json:"content_id"`
	Rating    int       `json:"rating"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

func renderRating(rating domain.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		Username:  rating.Username,
		ContentID: rating.ContentID,
		Rating:    rating.Rating,
		Created:   rating.Created,
		Updated:   rating.Updated,
	}
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	ContentID int64     `json:"content_id"`
	Text      string    `json:"text"`
	Created   time.Time `json:"created"`
}

func renderReview(review domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Username:  review.Username,
		ContentID: review.ContentID,
		Text:      review.Text,
		Created:   review.Created,
	}
}
