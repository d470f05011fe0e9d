package handlers

import (
	"net/http"

	"github.com/babyfoodstore/babyfood-backend-go/models"
	"github.com/babyfoodstore/babyfood-backend-go/store"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderHandler struct {
	Orders store.OrderStore
}

// Create inserts the request body with a server-owned status. The status is
// stamped after the merge so a caller can never create a non-pending order.
func (h *OrderHandler) Create(c echo.Context) error {
	body := bson.M{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	doc := bson.M{}
	for key, value := range body {
		doc[key] = value
	}
	doc["status"] = models.OrderStatusPending

	result, err := h.Orders.Insert(c.Request().Context(), doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.Orders.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch orders"})
	}

	return c.JSON(http.StatusOK, orders)
}

// Deliver sets the order's status to delivered regardless of its current
// value; re-delivering is an idempotent no-op. The raw update result is
// returned, so a non-existent id shows up as matchedCount 0.
func (h *OrderHandler) Deliver(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	result, err := h.Orders.MarkDelivered(c.Request().Context(), objID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update order"})
	}

	return c.JSON(http.StatusOK, result)
}
