package order

// CreateOrderRequest payload of order creation. The caller's identity comes
// from the bearer token, never from the body.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Items []CartItem `json:"items"`
}

// CreateOrderResponse pairs the persisted order with the points granted for it.
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	Order        WithItems `json:"order"`
	PointsEarned int       `json:"points_earned"`
}

// UpdateStatusRequest payload of the admin status update.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"preparing"`
}
