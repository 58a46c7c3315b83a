package repository

import (
	"errors"
	"reflect"
	"sync"

	"hbnb/internal/entities"
)

// ErrMissingID is returned by Add when the object has no identity
var ErrMissingID = errors.New("object must have an 'id' attribute")

// Record is what the repository can store: anything keyed by id that exposes
// its attributes by name
type Record interface {
	GetID() string
	Attr(name string) (interface{}, bool)
	SetAttr(name string, value interface{}) bool
}

// Repository defines the interface for keyed in-memory storage of one entity type
type Repository[T Record] interface {
	Add(obj T) error
	Get(id string) (T, bool)
	ListAll() []T
	Update(id string, fields entities.Fields) (T, bool)
	Delete(id string) bool
	FilterByAttribute(name string, value interface{}) []T
	Len() int
}

type inMemoryRepository[T Record] struct {
	mu      sync.RWMutex
	storage map[string]T
	order   []string
}

// NewInMemoryRepository creates an empty repository
func NewInMemoryRepository[T Record]() Repository[T] {
	return &inMemoryRepository[T]{
		storage: make(map[string]T),
	}
}

// Add stores obj under its id, replacing any previous entry with that id
func (r *inMemoryRepository[T]) Add(obj T) error {
	if isNil(obj) || obj.GetID() == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := obj.GetID()
	if _, exists := r.storage[id]; !exists {
		r.order = append(r.order, id)
	}
	r.storage[id] = obj
	return nil
}

// Get returns the stored object and whether it was found
func (r *inMemoryRepository[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	obj, ok := r.storage[id]
	return obj, ok
}

// ListAll returns every stored object. Insertion order is kept but callers must not rely on it.
func (r *inMemoryRepository[T]) ListAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]T, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.storage[id])
	}
	return all
}

// Update writes raw attribute values onto the stored object. Unknown keys are
// ignored and no validation or timestamp refresh happens here; entity-level
// updates go through the entity's own Update.
func (r *inMemoryRepository[T]) Update(id string, fields entities.Fields) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	obj, ok := r.storage[id]
	if !ok {
		return obj, false
	}
	for key, value := range fields {
		if _, exists := obj.Attr(key); exists {
			obj.SetAttr(key, value)
		}
	}
	return obj, true
}

// Delete removes the object and reports whether it existed
func (r *inMemoryRepository[T]) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.storage[id]; !ok {
		return false
	}
	delete(r.storage, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// FilterByAttribute returns every object whose attribute equals value
func (r *inMemoryRepository[T]) FilterByAttribute(name string, value interface{}) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []T
	for _, id := range r.order {
		obj := r.storage[id]
		attr, ok := obj.Attr(name)
		if ok && attributeEqual(attr, value) {
			matches = append(matches, obj)
		}
	}
	return matches
}

func (r *inMemoryRepository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage)
}

// attributeEqual compares numbers by value regardless of their Go type
func attributeEqual(a, b interface{}) bool {
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
