package response

import "puentes_admin/internal/domain/entities"

// UserResponse deliberately omits the password the backend stores in plain
// text; it never leaves this service.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	State string `json:"state"`
	Role  string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		State: string(u.State),
		Role:  string(u.Role),
	}
}

type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
}

func FromUsers(users []entities.User, page, totalPages, total int) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return UserListResponse{Items: out, Page: page, TotalPages: totalPages, Total: total}
}
