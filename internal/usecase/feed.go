package usecase

import (
	"strings"

	"puentes_admin/internal/domain/entities"
)

// RequestPageSize is the fixed page size of the request feed.
const RequestPageSize = 5

// FeedItem is one row of the request feed: the request joined with the
// requester's display name and the actionable flag for the viewing actor.
type FeedItem struct {
	entities.ChangeRequest
	Solicitante string
	Actionable  bool
}

// FilterByRequester keeps only the requests created by the given user.
func FilterByRequester(rs []entities.ChangeRequest, userID int64) []entities.ChangeRequest {
	out := make([]entities.ChangeRequest, 0, len(rs))
	for _, r := range rs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// ReverseChronological returns a reversed copy, so the most recently stored
// request comes first. Presentation order, not a business invariant.
func ReverseChronological(rs []entities.ChangeRequest) []entities.ChangeRequest {
	out := make([]entities.ChangeRequest, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}

// JoinRequesterNames resolves user_id to a display name for each request.
// A requester that no longer exists (deleted user) yields an empty name,
// never an error.
func JoinRequesterNames(rs []entities.ChangeRequest, users []entities.User, isAdmin bool) []FeedItem {
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	items := make([]FeedItem, 0, len(rs))
	for _, r := range rs {
		items = append(items, FeedItem{
			ChangeRequest: r,
			Solicitante:   names[r.UserID],
			Actionable:    r.Actionable(isAdmin),
		})
	}
	return items
}

// SearchFeed filters by request type, requester name, or status:
// case-insensitive substring, OR across the three fields. Empty term is the
// identity.
func SearchFeed(items []FeedItem, term string) []FeedItem {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]FeedItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(string(it.RequestType)), needle) ||
			strings.Contains(strings.ToLower(it.Solicitante), needle) ||
			strings.Contains(strings.ToLower(string(it.Status)), needle) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate slices one fixed-size page out of items. The page number is
// clamped to [1, TotalPages]; asking past the end returns the last page, and
// an empty input returns an empty page. Never an error.
func Paginate[T any](items []T, pageSize, page int) []T {
	if len(items) == 0 || pageSize <= 0 {
		return []T{}
	}
	total := TotalPages(len(items), pageSize)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// TotalPages is ceil(n/pageSize); zero for an empty collection.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
