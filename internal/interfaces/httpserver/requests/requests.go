package requests

// SignupRequest is the POST /api/signup body.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
