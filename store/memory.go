package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/babyfoodstore/babyfood-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store implementations used by unit tests. They replicate the
// matching semantics of the Mongo implementations (exact equality on
// category, numeric comparison on rating/price, boolean flashSale, rating
// sort with unrated documents last) so handlers behave identically against
// either backend.

type memoryDocs struct {
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]bson.M
	order []primitive.ObjectID
}

func newMemoryDocs() *memoryDocs {
	return &memoryDocs{docs: make(map[primitive.ObjectID]bson.M)}
}

func (m *memoryDocs) insert(doc bson.M) *InsertResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := doc["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}
	m.docs[id] = doc
	m.order = append(m.order, id)
	return &InsertResult{Acknowledged: true, InsertedID: id}
}

func (m *memoryDocs) all() []bson.M {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []bson.M{}
	for _, id := range m.order {
		out = append(out, m.docs[id])
	}
	return out
}

func (m *memoryDocs) filter(match func(bson.M) bool) []bson.M {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []bson.M{}
	for _, id := range m.order {
		if match(m.docs[id]) {
			out = append(out, m.docs[id])
		}
	}
	return out
}

func (m *memoryDocs) byID(id primitive.ObjectID) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if doc, ok := m.docs[id]; ok {
		return doc, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memoryDocs) update(id primitive.ObjectID, fields bson.M) *UpdateResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		return &UpdateResult{Acknowledged: true}
	}
	modified := false
	for key, value := range fields {
		if !reflect.DeepEqual(doc[key], value) {
			doc[key] = value
			modified = true
		}
	}
	result := &UpdateResult{Acknowledged: true, MatchedCount: 1}
	if modified {
		result.ModifiedCount = 1
	}
	return result
}

func (m *memoryDocs) delete(id primitive.ObjectID) *DeleteResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[id]; !ok {
		return &DeleteResult{Acknowledged: true}
	}
	delete(m.docs, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: 1}
}

// asNumber normalizes the numeric types a document field may hold after JSON
// binding (float64) or BSON decoding (int32/int64).
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// MemoryUsers is an in-memory UserStore.
type MemoryUsers struct {
	docs *memoryDocs
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{docs: newMemoryDocs()}
}

func (s *MemoryUsers) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	matches := s.docs.filter(func(doc bson.M) bool {
		return doc["email"] == email
	})
	if len(matches) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return matches[0], nil
}

func (s *MemoryUsers) Insert(ctx context.Context, user models.User) (*InsertResult, error) {
	doc := bson.M{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.Password,
		"role":     user.Role,
	}
	if !user.ID.IsZero() {
		doc["_id"] = user.ID
	}
	return s.docs.insert(doc), nil
}

func (s *MemoryUsers) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*UpdateResult, error) {
	return s.docs.update(id, fields), nil
}

// MemoryProducts is an in-memory ProductStore.
type MemoryProducts struct {
	docs *memoryDocs
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{docs: newMemoryDocs()}
}

func (s *MemoryProducts) Insert(ctx context.Context, doc bson.M) (*InsertResult, error) {
	return s.docs.insert(doc), nil
}

func (s *MemoryProducts) FindAll(ctx context.Context) ([]bson.M, error) {
	return s.docs.all(), nil
}

func (s *MemoryProducts) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return s.docs.byID(id)
}

func (s *MemoryProducts) FindByCategory(ctx context.Context, category string) ([]bson.M, error) {
	return s.docs.filter(func(doc bson.M) bool {
		return doc["category"] == category
	}), nil
}

func (s *MemoryProducts) FindByRating(ctx context.Context, rating float64) ([]bson.M, error) {
	return s.docs.filter(func(doc bson.M) bool {
		n, ok := asNumber(doc["rating"])
		return ok && n == rating
	}), nil
}

func (s *MemoryProducts) FindByPriceRange(ctx context.Context, min, max float64) ([]bson.M, error) {
	return s.docs.filter(func(doc bson.M) bool {
		n, ok := asNumber(doc["price"])
		return ok && n >= min && n <= max
	}), nil
}

func (s *MemoryProducts) FindFlashSale(ctx context.Context) ([]bson.M, error) {
	return s.docs.filter(func(doc bson.M) bool {
		return doc["flashSale"] == true
	}), nil
}

func (s *MemoryProducts) FindTopRated(ctx context.Context) ([]bson.M, error) {
	products := s.docs.all()
	sort.SliceStable(products, func(i, j int) bool {
		ri, iOK := asNumber(products[i]["rating"])
		rj, jOK := asNumber(products[j]["rating"])
		if iOK != jOK {
			return iOK
		}
		return ri > rj
	})
	return products, nil
}

func (s *MemoryProducts) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*UpdateResult, error) {
	return s.docs.update(id, fields), nil
}

func (s *MemoryProducts) Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	return s.docs.delete(id), nil
}

// MemoryOrders is an in-memory OrderStore.
type MemoryOrders struct {
	docs *memoryDocs
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{docs: newMemoryDocs()}
}

func (s *MemoryOrders) Insert(ctx context.Context, doc bson.M) (*InsertResult, error) {
	return s.docs.insert(doc), nil
}

func (s *MemoryOrders) FindAll(ctx context.Context) ([]bson.M, error) {
	return s.docs.all(), nil
}

func (s *MemoryOrders) MarkDelivered(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error) {
	return s.docs.update(id, bson.M{"status": models.OrderStatusDelivered}), nil
}
