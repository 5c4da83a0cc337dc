package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventType string

const (
	EventTypeOnline  EventType = "online"
	EventTypeOffline EventType = "offline"
)

func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventTypeOnline, EventTypeOffline:
		return EventType(s), nil
	default:
		return "", fmt.Errorf("unrecognised event type [%s]", s)
	}
}

type PublisherKind string

const (
	PublisherKindUser         PublisherKind = "user"
	PublisherKindOrganisation PublisherKind = "organisation"
)

// Publisher is the tagged owner reference of a content item. The store keeps
// it as a (type, id) pair; it is resolved into this variant at the repository
// boundary and never threaded through as raw columns.
type Publisher struct {
	Kind PublisherKind
	ID   int64
}

func UserPublisher(id int64) Publisher {
	return Publisher{Kind: PublisherKindUser, ID: id}
}

func OrganisationPublisher(id int64) Publisher {
	return Publisher{Kind: PublisherKindOrganisation, ID: id}
}

func ParsePublisher(kind string, id int64) (Publisher, error) {
	switch PublisherKind(kind) {
	case PublisherKindUser, PublisherKindOrganisation:
		return Publisher{Kind: PublisherKind(kind), ID: id}, nil
	default:
		return Publisher{}, fmt.Errorf("unrecognised publisher type [%s]", kind)
	}
}

type MacroCategory struct {
	ID          int64
	Name        string
	Description string
	Image       string
}

type Tag struct {
	ID          int64
	Name        string
	Description string
	Image       string
	// MacroCategory is nil for uncategorized tags.
	MacroCategory *MacroCategory
}

type ContentItem struct {
	ID          int64
	Name        string
	Description string
	Location    string
	City        City
	DateStart   *time.Time
	DateEnd     *time.Time
	Time        string
	Cost        *int64
	EventType   EventType
	Publisher   Publisher
	UniqueID    string
	Image       string
	Contact     json.RawMessage
	// Tags are ordered by ascending tag ID; MacroCategoryName depends on it.
	Tags []Tag
}

// MacroCategoryName returns the denormalized category name derived from the
// item's lowest-ID tag. Items whose tags span several categories still report
// a single name; this mirrors the product's API contract.
func (c ContentItem) MacroCategoryName() string {
	if len(c.Tags) == 0 || c.Tags[0].MacroCategory == nil {
		return ""
	}
	return c.Tags[0].MacroCategory.Name
}

// DateWindow is an optional pair of date bounds. Both, either, or neither
// bound may be set; the filter semantics differ per operation and live with
// the query builders.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

func (w DateWindow) IsZero() bool {
	return w.Start == nil && w.End == nil
}

// TagContentRef is one row of the tag/content join, used for tag-count
// aggregation.
type TagContentRef struct {
	TagID     int64
	ContentID int64
}
