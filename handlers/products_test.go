package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/babyfoodstore/babyfood-backend-go/store"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProductHandler() *ProductHandler {
	return &ProductHandler{Products: store.NewMemoryProducts()}
}

func createProduct(t *testing.T, e *echo.Echo, h *ProductHandler, body string) string {
	t.Helper()
	c, rec := newRequest(e, http.MethodPost, "/api/v1/product", body)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Acknowledged)
	require.NotEmpty(t, result.InsertedID)
	return result.InsertedID
}

func TestCreateProductStampsDocument(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	id := createProduct(t, e, h, `{"name":"Formula A","category":"milk","price":12.5,"rating":4,"quantity":99}`)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/product/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.GetByID(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, "Formula A", doc["name"])
	require.Equal(t, "milk", doc["category"])
	require.Equal(t, 12.5, doc["price"])
	require.NotEmpty(t, doc["creationTime"])
	// quantity is always forced to zero on insert
	require.Equal(t, float64(0), doc["quantity"])
}

func TestGetProductByIDErrors(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	c, rec := newRequest(e, http.MethodGet, "/api/v1/product/not-an-id", "")
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")
	require.NoError(t, h.GetByID(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	unknown := primitive.NewObjectID().Hex()
	c, rec = newRequest(e, http.MethodGet, "/api/v1/product/"+unknown, "")
	c.SetParamNames("id")
	c.SetParamValues(unknown)
	require.NoError(t, h.GetByID(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryFilterIsExact(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	createProduct(t, e, h, `{"name":"Formula A","category":"milk"}`)
	createProduct(t, e, h, `{"name":"Formula B","category":"Milk"}`)
	createProduct(t, e, h, `{"name":"Puree","category":"fruit"}`)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/category/milk", "")
	c.SetParamNames("category")
	c.SetParamValues("milk")
	require.NoError(t, h.ByCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	require.Equal(t, "Formula A", docs[0]["name"])
}

func TestPriceRangeIsInclusive(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	createProduct(t, e, h, `{"name":"A","price":5}`)
	createProduct(t, e, h, `{"name":"B","price":10}`)
	createProduct(t, e, h, `{"name":"C","price":12.5}`)
	createProduct(t, e, h, `{"name":"D","price":15}`)
	createProduct(t, e, h, `{"name":"E","price":20}`)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/price/10/15", "")
	c.SetParamNames("minPrice", "maxPrice")
	c.SetParamValues("10", "15")
	require.NoError(t, h.ByPriceRange(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	names := []string{}
	for _, doc := range docs {
		names = append(names, doc["name"].(string))
	}
	require.ElementsMatch(t, []string{"B", "C", "D"}, names)
}

func TestPriceRangeRejectsNonNumericBounds(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	c, rec := newRequest(e, http.MethodGet, "/api/v1/price/cheap/15", "")
	c.SetParamNames("minPrice", "maxPrice")
	c.SetParamValues("cheap", "15")
	require.NoError(t, h.ByPriceRange(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newRequest(e, http.MethodGet, "/api/v1/price/10/expensive", "")
	c.SetParamNames("minPrice", "maxPrice")
	c.SetParamValues("10", "expensive")
	require.NoError(t, h.ByPriceRange(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRatingFilter(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	createProduct(t, e, h, `{"name":"A","rating":4}`)
	createProduct(t, e, h, `{"name":"B","rating":5}`)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/rating/4", "")
	c.SetParamNames("rating")
	c.SetParamValues("4")
	require.NoError(t, h.ByRating(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	require.Equal(t, "A", docs[0]["name"])

	c, rec = newRequest(e, http.MethodGet, "/api/v1/rating/great", "")
	c.SetParamNames("rating")
	c.SetParamValues("great")
	require.NoError(t, h.ByRating(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFlashSaleFilter(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	createProduct(t, e, h, `{"name":"A","flashSale":true}`)
	createProduct(t, e, h, `{"name":"B","flashSale":false}`)
	createProduct(t, e, h, `{"name":"C"}`)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/flashSale", "")
	require.NoError(t, h.FlashSale(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	require.Equal(t, "A", docs[0]["name"])
}

func TestTopRatedSortsDescendingWithoutCap(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	createProduct(t, e, h, `{"name":"A","rating":3}`)
	createProduct(t, e, h, `{"name":"B","rating":5}`)
	createProduct(t, e, h, `{"name":"C","rating":4}`)
	createProduct(t, e, h, `{"name":"D"}`)
	createProduct(t, e, h, `{"name":"E","rating":1}`)
	createProduct(t, e, h, `{"name":"F","rating":2}`)
	createProduct(t, e, h, `{"name":"G","rating":4.5}`)

	c, rec := newRequest(e, http.MethodGet, "/api/v1/top-rating", "")
	require.NoError(t, h.TopRated(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	names := []string{}
	for _, doc := range docs {
		names = append(names, doc["name"].(string))
	}
	require.Equal(t, []string{"B", "G", "C", "A", "F", "E", "D"}, names)
}

func TestUpdateProductMergesFields(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	id := createProduct(t, e, h, `{"name":"Formula A","category":"milk","price":12.5}`)

	c, rec := newRequest(e, http.MethodPatch, "/api/v1/product/"+id, `{"price":14,"flashSale":true}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	objID, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	doc, err := h.Products.FindByID(context.Background(), objID)
	require.NoError(t, err)
	require.Equal(t, float64(14), doc["price"])
	require.Equal(t, true, doc["flashSale"])
	require.Equal(t, "milk", doc["category"])
}

func TestUpdateProductIgnoresBodyID(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	id := createProduct(t, e, h, `{"name":"Formula A"}`)

	c, rec := newRequest(e, http.MethodPatch, "/api/v1/product/"+id, `{"_id":"ffffffffffffffffffffffff","name":"Formula B"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	objID, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	doc, err := h.Products.FindByID(context.Background(), objID)
	require.NoError(t, err)
	require.Equal(t, "Formula B", doc["name"])
	require.Equal(t, objID, doc["_id"].(primitive.ObjectID))
}

func TestDeleteProduct(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	id := createProduct(t, e, h, `{"name":"Formula A"}`)

	c, rec := newRequest(e, http.MethodDelete, "/api/v1/product/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result store.DeleteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, int64(1), result.DeletedCount)

	// gone from subsequent reads
	c, rec = newRequest(e, http.MethodGet, "/api/v1/product/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.GetByID(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// deleting again is reported distinctly
	c, rec = newRequest(e, http.MethodDelete, "/api/v1/product/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProductsEmpty(t *testing.T) {
	e := echo.New()
	h := newProductHandler()

	c, rec := newRequest(e, http.MethodGet, "/api/v1/product", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}
