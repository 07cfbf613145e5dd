package types

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by register and login
type TokenResponse struct {
	Token string `json:"token"`
}

// TargetsRequest is the request body for the stateless targets calculation
type TargetsRequest struct {
	Gender   string  `json:"gender" binding:"required"`
	Age      int     `json:"age" binding:"required,min=15,max=100"`
	HeightCm float64 `json:"height_cm" binding:"required,min=120,max=250"`
	WeightKg float64 `json:"weight_kg" binding:"required,min=30,max=200"`
	Goal     string  `json:"goal" binding:"required"`
}

// ChatRequest is the request body for asking the coach a question
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}
