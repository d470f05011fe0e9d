package handlers

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// bindUpdateFields reads a PATCH body as a free-form field map. There is no
// field whitelist: whatever the caller sends is merged into the document.
// The immutable _id is stripped since $set on it is rejected by the driver.
func bindUpdateFields(c echo.Context) (bson.M, error) {
	fields := bson.M{}
	if err := c.Bind(&fields); err != nil {
		return nil, err
	}
	delete(fields, "_id")
	return fields, nil
}
