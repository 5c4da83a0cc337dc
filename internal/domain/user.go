package domain

import "time"

type User struct {
	ID       int64
	Username string
	City     City
}

type Rating struct {
	ID        int64
	UserID    int64
	ContentID int64
	Username  string
	Rating    int
	Created   time.Time
	Updated   time.Time
}

type RatingStats struct {
	ContentID     int64
	AverageRating float64
	TotalRatings  int
	Distribution  map[int]int
}

type Review struct {
	ID        int64
	UserID    int64
	ContentID int64
	Username  string
	Text      string
	Created   time.Time
}
