package domains

import (
	"errors"
	"strings"
)

var ErrInvalidSortOrder = errors.New("sort must be 'asc' or 'desc'")

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts asc or desc in any case. Empty means desc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SortDesc, nil
	case string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	default:
		return "", ErrInvalidSortOrder
	}
}

type UserStats struct {
	UserID          string
	Username        string
	AssignmentCount int
}

type PullRequestStats struct {
	Total  int
	Open   int
	Merged int
}

type Statistics struct {
	PullRequests PullRequestStats
	Users        []UserStats
}
