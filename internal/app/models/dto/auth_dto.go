package dto

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jkamau@example.com"`
	Password  string `json:"password" binding:"required,min=8" example:"s3cret-passw0rd"`
	FirstName string `json:"firstName" binding:"required" example:"John"`
	LastName  string `json:"lastName" binding:"required" example:"Kamau"`
}

// LoginRequest carries sign-in credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jkamau@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-passw0rd"`
}

// ChangePasswordRequest carries a password change for the authenticated user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"s3cret-passw0rd"`
	NewPassword     string `json:"newPassword" binding:"required,min=8" example:"n3w-s3cret-passw0rd"`
}

// RefreshTokenRequest carries a refresh token exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}
