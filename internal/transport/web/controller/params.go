package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/afishabot/discovery/internal/domain"
	"github.com/gorilla/mux"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	queryDateLayout = "2006-01-02"
)

func parseSkipLimit(q url.Values) (skip, limit int, err error) {
	skip = 0
	limit = defaultLimit

	if q.Has("skip") {
		s, err := strconv.ParseInt(q.Get("skip"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse skip from query: %w", err)
		}
		if s < 0 {
			return 0, 0, fmt.Errorf("invalid skip value [%d]", s)
		}
		skip = int(s)
	}

	if q.Has("limit") {
		l, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if l < 1 {
			return 0, 0, fmt.Errorf("invalid limit value [%d]", l)
		}
		if l > maxLimit {
			return 0, 0, fmt.Errorf("limit [%d] exceeds maximum [%d]", l, maxLimit)
		}
		limit = int(l)
	}

	return skip, limit, nil
}

func parseQueryDate(q url.Values, param string) (*time.Time, error) {
	if !q.Has(param) || q.Get(param) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(queryDateLayout, q.Get(param))
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s from query: %w", param, err)
	}
	return &parsed, nil
}

func parseDateWindow(q url.Values) (domain.DateWindow, error) {
	start, err := parseQueryDate(q, "date_start")
	if err != nil {
		return domain.DateWindow{}, err
	}
	end, err := parseQueryDate(q, "date_end")
	if err != nil {
		return domain.DateWindow{}, err
	}
	return domain.DateWindow{Start: start, End: end}, nil
}

// parseOptionalCity returns "" when the query names no city.
func parseOptionalCity(q url.Values) (domain.City, error) {
	if !q.Has("city") || q.Get("city") == "" {
		return "", nil
	}
	return domain.ParseCity(q.Get("city"))
}

func parseContentID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["content_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse content id [%s]: %w", raw, err)
	}
	return id, nil
}

func parseTagIDs(q url.Values) ([]int64, error) {
	if !q.Has("tags") || q.Get("tags") == "" {
		return nil, nil
	}

	parts := strings.Split(q.Get("tags"), ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse tag id [%s]: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
