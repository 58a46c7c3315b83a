package entities

import (
	"time"

	"github.com/google/uuid"
)

// TimestampFormat is the textual form used for created_at/updated_at in projections
const TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"

// Fields carries loosely typed attribute values, as decoded from a JSON body
type Fields map[string]interface{}

// Clone returns a shallow copy of the map
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Without returns a copy of the map with the given keys removed
func (f Fields) Without(keys ...string) Fields {
	out := f.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// BaseModel holds the identity and timestamps shared by every entity
type BaseModel struct {
	ID        string    `json:"id"` // UUID
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBaseModel() BaseModel {
	now := time.Now()
	return BaseModel{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the entity identifier
func (b *BaseModel) GetID() string {
	return b.ID
}

// Touch refreshes UpdatedAt; it never moves backwards
func (b *BaseModel) Touch() {
	now := time.Now()
	if now.Before(b.UpdatedAt) {
		now = b.UpdatedAt
	}
	b.UpdatedAt = now
}

func (b *BaseModel) baseAttr(name string) (interface{}, bool) {
	switch name {
	case "id":
		return b.ID, true
	case "created_at":
		return b.CreatedAt, true
	case "updated_at":
		return b.UpdatedAt, true
	}
	return nil, false
}

func (b *BaseModel) baseMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         b.ID,
		"created_at": FormatTimestamp(b.CreatedAt),
		"updated_at": FormatTimestamp(b.UpdatedAt),
	}
}

// FormatTimestamp renders t in TimestampFormat (UTC)
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
