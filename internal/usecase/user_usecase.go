package usecase

import (
	"context"
	"errors"
	"strings"

	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidUserInput = errors.New("invalid user input")
)

// UserPageSize is the fixed page size of the user listing.
const UserPageSize = 10

// IUserUseCase is the plain account registry. Route-level gating restricts
// it to admins; accounts have no soft-delete and no history — edits
// overwrite in place, deletes are irreversible.

type IUserUseCase interface {
	List(ctx context.Context) ([]entities.User, error)
	Create(ctx context.Context, u entities.User) error
	Update(ctx context.Context, u entities.User) error
	Delete(ctx context.Context, id int64) error
}

type UserUseCase struct {
	users interfaces.IUserGateway
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserGateway) *UserUseCase {
	return &UserUseCase{users: users}
}

// List returns all accounts, most recently created first.
func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.User, len(users))
	for i, usr := range users {
		out[len(users)-1-i] = usr
	}
	return out, nil
}

func (u *UserUseCase) Create(ctx context.Context, user entities.User) error {
	if err := validateUserFields(user); err != nil {
		return err
	}
	// New accounts always start as regular users; only the backend seed
	// carries the admin role.
	user.Role = entities.RoleUsuario
	return u.users.Create(ctx, user)
}

// Update overwrites an existing account. The id and role of the stored
// record win over whatever the caller sent: the edit form does not grant
// role changes.
func (u *UserUseCase) Update(ctx context.Context, user entities.User) error {
	if user.ID <= 0 {
		return ErrInvalidUserID
	}
	if err := validateUserFields(user); err != nil {
		return err
	}

	stored, err := u.findByID(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Role = stored.Role

	return u.users.Update(ctx, user)
}

func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	if _, err := u.findByID(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}

func (u *UserUseCase) findByID(ctx context.Context, id int64) (entities.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, usr := range users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return entities.User{}, ErrUserNotFound
}

func validateUserFields(user entities.User) error {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" {
		return ErrInvalidUserInput
	}
	if !entities.IsValidUserState(user.State) {
		return ErrInvalidUserInput
	}
	return nil
}

// SearchUsers filters by name or email, case-insensitive substring. Empty
// term is the identity.
func SearchUsers(users []entities.User, term string) []entities.User {
	if term == "" {
		return users
	}
	needle := strings.ToLower(term)
	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}
