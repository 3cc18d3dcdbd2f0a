package authController

// SignupRequest is the signup form payload, populated by the auth validator.
type SignupRequest struct {
	FullName string `json:"fullname" form:"fullname"`
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
	Confirm  string `json:"confirm" form:"confirm"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}
