package response

import "github.com/copdilan8-rgb/lacopita/internal/domain/entities"

type LoginUserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"nombre"`
	Username string `json:"usuario"`
	Role     string `json:"rol"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  LoginUserResponse `json:"usuario"`
}

func FromLogin(token string, u entities.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User: LoginUserResponse{
			ID:       u.ID,
			Name:     u.Name,
			Username: u.Username,
			Role:     u.Role,
		},
	}
}
