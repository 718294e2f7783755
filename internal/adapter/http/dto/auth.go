package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

type UserItem struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"createdAt"`
}

type LoginResponse struct {
	User      UserItem `json:"user"`
	ExpiresAt string   `json:"expiresAt"`
}
