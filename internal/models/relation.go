package models

import "time"

// RelationType identifies the kind of relationship a relation represents
type RelationType string

const (
	Mother              RelationType = "MOTHER"
	Father              RelationType = "FATHER"
	Sister              RelationType = "SISTER"
	Brother             RelationType = "BROTHER"
	Spouse              RelationType = "SPOUSE"
	Partner             RelationType = "PARTNER"
	GrandmotherMaternal RelationType = "GRANDMOTHER_MATERNAL"
	GrandmotherPaternal RelationType = "GRANDMOTHER_PATERNAL"
	GrandfatherMaternal RelationType = "GRANDFATHER_MATERNAL"
	GrandfatherPaternal RelationType = "GRANDFATHER_PATERNAL"
	AuntMaternal        RelationType = "AUNT_MATERNAL"
	AuntPaternal        RelationType = "AUNT_PATERNAL"
	UncleMaternal       RelationType = "UNCLE_MATERNAL"
	UnclePaternal       RelationType = "UNCLE_PATERNAL"
	Cousin              RelationType = "COUSIN"
	Friend              RelationType = "FRIEND"
	OtherCustom         RelationType = "OTHER_CUSTOM"
)

// AllRelationTypes lists every relation type in display order
var AllRelationTypes = []RelationType{
	Mother,
	Father,
	Sister,
	Brother,
	Spouse,
	Partner,
	GrandmotherMaternal,
	GrandmotherPaternal,
	GrandfatherMaternal,
	GrandfatherPaternal,
	AuntMaternal,
	AuntPaternal,
	UncleMaternal,
	UnclePaternal,
	Cousin,
	Friend,
	OtherCustom,
}

// RelationLabels maps each type to its Turkish display label
var RelationLabels = map[RelationType]string{
	Mother:              "Anne",
	Father:              "Baba",
	Sister:              "Kız Kardeş",
	Brother:             "Erkek Kardeş",
	Spouse:              "Eş",
	Partner:             "Sevgili",
	GrandmotherMaternal: "Anneanne",
	GrandmotherPaternal: "Babaanne",
	GrandfatherMaternal: "Anne tarafı Dede",
	GrandfatherPaternal: "Baba tarafı Dede",
	AuntMaternal:        "Teyze",
	AuntPaternal:        "Hala",
	UncleMaternal:       "Dayı",
	UnclePaternal:       "Amca",
	Cousin:              "Kuzen",
	Friend:              "Arkadaş",
	OtherCustom:         "Diğer",
}

// MultipleAllowedTypes are the types a user may have more than one relation of.
// Every other type is limited to a single relation per user, but only by the
// add affordance — the store itself does not enforce it.
var MultipleAllowedTypes = []RelationType{
	AuntMaternal,
	AuntPaternal,
	UncleMaternal,
	UnclePaternal,
	Cousin,
	Friend,
	OtherCustom,
}

// Valid reports whether t is a known relation type
func (t RelationType) Valid() bool {
	_, ok := RelationLabels[t]
	return ok
}

// AllowsMultiple reports whether a user may hold more than one relation of type t
func (t RelationType) AllowsMultiple() bool {
	for _, mt := range MultipleAllowedTypes {
		if t == mt {
			return true
		}
	}
	return false
}

// Note is a short free-text entry attached to a relation.
// Notes are stored as a whole-field sequence on the relation document.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Relation is a person record owned by a user. Notes and memories are
// embedded sequences mutated by whole-field overwrite.
type Relation struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Type       RelationType `json:"type"`
	CustomType string       `json:"customType,omitempty"` // only for OTHER_CUSTOM
	BirthDate  string       `json:"birthDate,omitempty"`  // DD.MM.YYYY display string
	PhotoURL   string       `json:"photoURL,omitempty"`
	Notes      []Note       `json:"notes"`
	Memories   []Memory     `json:"memories"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Label returns the display label for the relation, falling back to the
// custom label for OTHER_CUSTOM relations
func (r *Relation) Label() string {
	if r.Type == OtherCustom && r.CustomType != "" {
		return r.CustomType
	}
	return RelationLabels[r.Type]
}

// CreateRelationRequest for creating a new relation
type CreateRelationRequest struct {
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Type       RelationType `json:"type"`
	CustomType string       `json:"customType"`
	BirthDate  string       `json:"birthDate"`
}

// UpdateRelationRequest for editing relation fields. Empty fields are left unchanged.
type UpdateRelationRequest struct {
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Type       RelationType `json:"type"`
	CustomType string       `json:"customType"`
	BirthDate  string       `json:"birthDate"`
}

// NoteRequest carries the text for adding or editing a note
type NoteRequest struct {
	Text string `json:"text"`
}
