package request

type LoginRequest struct {
	Username string `json:"usuario" binding:"required"`
	PIN      string `json:"pin" binding:"required"`
}
