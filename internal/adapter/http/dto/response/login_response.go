package response

import "puentes_admin/internal/usecase"

type LoginResponse struct {
	Token   string `json:"token"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
	Message string `json:"message,omitempty"`
}

func FromLoginSession(s usecase.LoginSession) LoginResponse {
	return LoginResponse{
		Token:   s.Token,
		UserID:  s.UserID,
		Role:    string(s.Role),
		Message: s.Message,
	}
}
