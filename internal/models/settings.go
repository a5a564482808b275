package models

import "time"

// RelationSettings controls which relation-type categories render for a user
type RelationSettings struct {
	UserID       string         `json:"userId"`
	VisibleTypes []RelationType `json:"visibleTypes"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// UpdateSettingsRequest replaces the visible type set
type UpdateSettingsRequest struct {
	VisibleTypes []RelationType `json:"visibleTypes"`
}

// IsTypeVisible reports whether relations of type t should render. A nil
// settings record means the user never saved settings; everything is visible.
func IsTypeVisible(t RelationType, settings *RelationSettings) bool {
	if settings == nil {
		return true
	}
	for _, vt := range settings.VisibleTypes {
		if vt == t {
			return true
		}
	}
	return false
}
