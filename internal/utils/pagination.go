package utils

import (
	"net/url"
	"strconv"
)

// ParsePagination reads page and page_size from the query string. Missing or
// unparsable values fall back to the given defaults; range checks are left to
// the caller.
func ParsePagination(q url.Values, defaultPage, defaultPageSize int) (page, pageSize int) {
	return intParam(q, "page", defaultPage), intParam(q, "page_size", defaultPageSize)
}

func intParam(q url.Values, key string, def int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return def
	}
	return v
}

// ParseID parses a positive decimal path id
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
