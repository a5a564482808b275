package models

// MaxMemoryPhotos caps how many photos a single memory may carry
const MaxMemoryPhotos = 3

// MemoryLocation is an optional geotag. Name may be reverse-geocoded or
// typed by hand.
type MemoryLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// MemoryPhoto references an uploaded image blob
type MemoryPhoto struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Memory is a dated note embedded in its parent relation's memories
// sequence. It has no existence outside the parent document; every mutation
// is a whole-sequence overwrite on the relation.
type Memory struct {
	ID         string          `json:"id"` // clock-derived, uniqueness is probabilistic
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	MemoryDate int64           `json:"memoryDate"` // epoch millis, user-chosen
	RelationID string          `json:"relationId"`
	Location   *MemoryLocation `json:"location,omitempty"`
	Photos     []MemoryPhoto   `json:"photos,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
}

// SuggestedMemoryTags are the predefined tag suggestions offered alongside
// free-text custom tags
var SuggestedMemoryTags = []string{
	"Doğum Günü",
	"Tatil",
	"Bayram",
	"Düğün",
	"Yemek",
	"Gezi",
	"Aile",
	"Özel Gün",
}

// AddMemoryRequest for appending a memory to a relation
type AddMemoryRequest struct {
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	MemoryDate int64           `json:"memoryDate"`
	Location   *MemoryLocation `json:"location"`
	Tags       []string        `json:"tags"`
}

// UpdateMemoryRequest replaces the editable fields of an existing memory.
// Photos carries the full desired photo list; entries must already be uploaded.
type UpdateMemoryRequest struct {
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	MemoryDate int64           `json:"memoryDate"`
	Location   *MemoryLocation `json:"location"`
	Photos     []MemoryPhoto   `json:"photos"`
	Tags       []string        `json:"tags"`
}
