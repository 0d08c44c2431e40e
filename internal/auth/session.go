package auth

import "puentes_admin/internal/domain/entities"

// Session identifies the authenticated actor for the duration of one
// request: who they are and what they may do. It is produced by the login
// flow, carried in the JWT, and passed explicitly into every use case that
// needs authorization — never held in ambient state.
type Session struct {
	UserID int64
	Role   entities.Role
}

func (s Session) IsAdmin() bool { return s.Role == entities.RoleAdmin }
