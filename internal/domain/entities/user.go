package entities

// Role is the dashboard role carried by the backend user record.
//
// The backend stores the non-admin role as "usuario" (the dashboard was
// written for Spanish-speaking operators); all role comparisons go through
// these constants rather than raw strings.

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUsuario Role = "usuario"
)

// UserState is the account state literal stored by the backend.

type UserState string

const (
	UserStateActivo   UserState = "Activo"
	UserStateInactivo UserState = "Inactivo"
)

func IsValidUserState(s UserState) bool {
	return s == UserStateActivo || s == UserStateInactivo
}

// User is the account record as served by GET /user.
//
// The backend stores and returns the password in plain text. That is a known
// defect of the backend contract; this service never echoes the field in its
// own responses.
type User struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	State    UserState `json:"state"`
	Password string    `json:"password"`
	Role     Role      `json:"role"`
}
