package entities

// LoginResult is the POST /login response body. Success=false with a 200
// status is how the backend signals bad credentials; the message is meant
// for the operator.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}
