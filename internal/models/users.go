package models

// RegisterRequest - модель регистрации пользователя, приходит извне
type RegisterRequest struct {
	Username  string `json:"username"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
	Email     string `json:"email"`
}

// LoginRequest - модель аутентификации пользователя, приходит извне
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	Username     string
	PasswordHash string
	Email        string
}
