package models

// RelationCategory is a fixed display bucket on the tree screen
type RelationCategory struct {
	Key   string         `json:"key"`
	Label string         `json:"label"`
	Types []RelationType `json:"types"`
}

// RelationCategories lists the display buckets in their fixed render order
var RelationCategories = []RelationCategory{
	{Key: "partners", Label: "Eş / Sevgili", Types: []RelationType{Spouse, Partner}},
	{Key: "parents", Label: "Anne & Baba", Types: []RelationType{Mother, Father}},
	{Key: "grandparents", Label: "Büyükanne & Büyükbaba", Types: []RelationType{
		GrandmotherMaternal, GrandmotherPaternal, GrandfatherMaternal, GrandfatherPaternal,
	}},
	{Key: "siblings", Label: "Kardeşler", Types: []RelationType{Sister, Brother}},
	{Key: "auntsUncles", Label: "Teyze / Hala / Dayı / Amca", Types: []RelationType{
		AuntMaternal, AuntPaternal, UncleMaternal, UnclePaternal,
	}},
	{Key: "other", Label: "Diğer", Types: []RelationType{Cousin, Friend, OtherCustom}},
}

// CategoryGroup pairs a category with the relations that fall into it
type CategoryGroup struct {
	Category  RelationCategory `json:"category"`
	Relations []Relation       `json:"relations"`
}

// GroupByCategory partitions relations into the fixed ordered category
// buckets by type membership. Relations keep their input order within a
// bucket. Purely for display; performs no I/O.
func GroupByCategory(relations []Relation) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(RelationCategories))
	for _, cat := range RelationCategories {
		group := CategoryGroup{Category: cat, Relations: []Relation{}}
		for _, rel := range relations {
			for _, t := range cat.Types {
				if rel.Type == t {
					group.Relations = append(group.Relations, rel)
					break
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// ShouldShowAddAffordance reports whether the add button for type t should
// render given the user's existing relations. Types in the multiple-allowed
// set can always be added; the rest only while no relation of that exact
// type exists.
func ShouldShowAddAffordance(t RelationType, existing []Relation) bool {
	if t.AllowsMultiple() {
		return true
	}
	for _, rel := range existing {
		if rel.Type == t {
			return false
		}
	}
	return true
}
