package models

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	Login        string
	PasswordHash string
	Role         string
}
