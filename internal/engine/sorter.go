package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort fields and orders understood by UserSorter.
const (
	SortFieldAge  = "age"
	SortFieldName = "name"
	SortFieldID   = "id"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// UserSorter sorts users by a single field.
type UserSorter struct {
	validFields map[string]bool
	lang        language.Tag
}

// NewUserSorter creates a UserSorter that compares names with English collation.
func NewUserSorter() *UserSorter {
	return &UserSorter{
		validFields: map[string]bool{
			SortFieldAge:  true,
			SortFieldName: true,
			SortFieldID:   true,
		},
		lang: language.English,
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *UserSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *UserSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a copy of users sorted by field. Equal elements keep their input order.
// If field is invalid, the copy is returned in input order.
func (s *UserSorter) Sort(users []User, field, order string) []User {
	sorted := make([]User, len(users))
	copy(sorted, users)

	if !s.IsValidField(field) {
		return sorted
	}

	// Collators keep internal buffers, so each call gets its own.
	col := collate.New(s.lang)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping keeps the sort stable for descending order.
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case SortFieldAge:
			return sorted[i].Age < sorted[j].Age
		case SortFieldName:
			return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
		case SortFieldID:
			return sorted[i].ID < sorted[j].ID
		default:
			return false
		}
	})

	return sorted
}
