package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,college_email"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,college_email"`
	Password string `json:"password" validate:"required"`
}
