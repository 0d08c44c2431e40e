package usecase

import (
	"context"

	"puentes_admin/internal/auth"
	"puentes_admin/internal/usecase/interfaces"
)

// IRequestFeedUseCase is the read side of the workflow: the role-scoped
// request feed, always recomputed from a fresh backend fetch so it cannot
// drift from what the engine last wrote.

type IRequestFeedUseCase interface {
	ListVisible(ctx context.Context, session auth.Session) ([]FeedItem, error)
}

type RequestFeedUseCase struct {
	requests interfaces.IRequestGateway
	users    interfaces.IUserGateway
}

var _ IRequestFeedUseCase = (*RequestFeedUseCase)(nil)

func NewRequestFeedUseCase(requests interfaces.IRequestGateway, users interfaces.IUserGateway) *RequestFeedUseCase {
	return &RequestFeedUseCase{requests: requests, users: users}
}

// ListVisible returns the feed for the actor: admins see every request,
// everyone else only their own, most recent first, with requester names
// joined in.
func (u *RequestFeedUseCase) ListVisible(ctx context.Context, session auth.Session) ([]FeedItem, error) {
	rs, err := u.requests.List(ctx)
	if err != nil {
		return nil, err
	}

	if !session.IsAdmin() {
		rs = FilterByRequester(rs, session.UserID)
	}
	rs = ReverseChronological(rs)

	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}

	return JoinRequesterNames(rs, users, session.IsAdmin()), nil
}
