package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/babyfoodstore/babyfood-backend-go/store"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductHandler struct {
	Products store.ProductStore
}

// Create inserts the request body as-is, stamping creationTime and zeroing
// quantity. Products are schema-flexible; no field validation happens here.
func (h *ProductHandler) Create(c echo.Context) error {
	body := bson.M{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	doc := bson.M{"creationTime": time.Now()}
	for key, value := range body {
		doc[key] = value
	}
	doc["quantity"] = 0

	result, err := h.Products.Insert(c.Request().Context(), doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.Products.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetByID(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	product, err := h.Products.FindByID(c.Request().Context(), objID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	fields, err := bindUpdateFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No fields to update"})
	}

	result, err := h.Products.Update(c.Request().Context(), objID, fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	result, err := h.Products.Delete(c.Request().Context(), objID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
	}

	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) FlashSale(c echo.Context) error {
	products, err := h.Products.FindFlashSale(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}

// TopRated returns every product sorted by rating descending, uncapped.
func (h *ProductHandler) TopRated(c echo.Context) error {
	products, err := h.Products.FindTopRated(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}

// ByCategory matches the category field exactly, case-sensitive.
func (h *ProductHandler) ByCategory(c echo.Context) error {
	products, err := h.Products.FindByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}

// ByRating matches products whose rating equals the path parameter parsed as
// a number. A non-numeric parameter is a 400, never a silent empty match.
func (h *ProductHandler) ByRating(c echo.Context) error {
	rating, err := strconv.ParseFloat(c.Param("rating"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid rating"})
	}

	products, err := h.Products.FindByRating(c.Request().Context(), rating)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}

// ByPriceRange returns products with minPrice <= price <= maxPrice, bounds
// inclusive. Non-numeric bounds are a 400.
func (h *ProductHandler) ByPriceRange(c echo.Context) error {
	minPrice, err := strconv.ParseFloat(c.Param("minPrice"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid price range"})
	}
	maxPrice, err := strconv.ParseFloat(c.Param("maxPrice"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid price range"})
	}

	products, err := h.Products.FindByPriceRange(c.Request().Context(), minPrice, maxPrice)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}
