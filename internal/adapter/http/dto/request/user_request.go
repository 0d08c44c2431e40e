package request

import (
	"puentes_admin/internal/domain/entities"
)

// UserRequest is the create/update payload for an account. Role is not
// accepted from the caller: creates default to the regular role and updates
// keep the stored one.
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	State    string `json:"state" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r UserRequest) ToUser(id int64) entities.User {
	return entities.User{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		State:    entities.UserState(r.State),
		Password: r.Password,
	}
}
