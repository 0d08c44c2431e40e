package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"puentes_admin/internal/auth"
	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginSession is a freshly authenticated session plus its signed token.
type LoginSession struct {
	Token   string
	UserID  int64
	Role    entities.Role
	Message string
}

// IAuthUseCase turns backend credentials into a dashboard session. The
// backend's login response carries no role, so the role is resolved from the
// user registry before the token is minted.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (LoginSession, error)
}

type AuthUseCase struct {
	gateway interfaces.IAuthGateway
	users   interfaces.IUserGateway
	tokens  *auth.TokenManager
	log     *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.IAuthGateway, users interfaces.IUserGateway, tokens *auth.TokenManager, log *zap.Logger) *AuthUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthUseCase{gateway: gateway, users: users, tokens: tokens, log: log}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginSession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginSession{}, ErrInvalidCredentials
	}

	res, err := u.gateway.Login(ctx, email, password)
	if err != nil {
		return LoginSession{}, err
	}
	if !res.Success {
		u.log.Info("login rejected", zap.String("email", email))
		return LoginSession{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, res.Message)
	}

	users, err := u.users.List(ctx)
	if err != nil {
		return LoginSession{}, err
	}
	var role entities.Role
	found := false
	for _, usr := range users {
		if usr.ID == res.UserID {
			role = usr.Role
			found = true
			break
		}
	}
	if !found {
		// Login succeeded against a record the registry no longer returns.
		return LoginSession{}, ErrUserNotFound
	}

	token, err := u.tokens.Issue(auth.Session{UserID: res.UserID, Role: role})
	if err != nil {
		return LoginSession{}, err
	}

	u.log.Info("login accepted", zap.Int64("user_id", res.UserID), zap.String("role", string(role)))
	return LoginSession{Token: token, UserID: res.UserID, Role: role, Message: res.Message}, nil
}
