package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"john"`
	Password string `json:"password" validate:"required,min=4"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"john"`
	Email    string `json:"email" validate:"required,email" example:"john@mail.com"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user owner" example:"user"`
}

type OTPSendRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164" example:"+919876543210"`
}

type OTPVerifyRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164" example:"+919876543210"`
	OTP         string `json:"otp" validate:"required,numeric,len=6" example:"123456"`
}
