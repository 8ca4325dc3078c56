package payment

type SettleRequest struct {
	Method string `json:"method" binding:"required,oneof=cash card"`
}
