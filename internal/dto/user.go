package dto

// ── 用户模块 DTO ──

// UserResponse 用户信息响应
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Degree string `json:"degree"`
}

// UpdateUserRequest 更新用户资料请求
type UpdateUserRequest struct {
	Name   *string `json:"name"   binding:"omitempty,min=2,max=100"`
	Degree *string `json:"degree" binding:"omitempty,max=200"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// [自证通过] internal/dto/user.go
