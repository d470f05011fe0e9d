package models

type OrderStatus string

// Orders only ever move from pending to delivered.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)
