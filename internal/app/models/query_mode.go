package models

import "gorm.io/gorm"

// QueryMode selects the soft-delete visibility of a lookup. Every call site
// states its mode explicitly; QueryActive is what ordinary API reads use.
type QueryMode string

const (
	QueryActive      QueryMode = "active"
	QueryAll         QueryMode = "all"
	QueryDeletedOnly QueryMode = "deleted"
)

// ParseQueryMode maps a query-string value to a QueryMode, defaulting to
// active visibility for unknown or empty input.
func ParseQueryMode(s string) QueryMode {
	switch QueryMode(s) {
	case QueryAll:
		return QueryAll
	case QueryDeletedOnly:
		return QueryDeletedOnly
	default:
		return QueryActive
	}
}

// Scope returns a gorm scope applying the mode's visibility filter.
// Active visibility rides gorm's default deleted_at IS NULL predicate.
func (m QueryMode) Scope() func(db *gorm.DB) *gorm.DB {
	switch m {
	case QueryAll:
		return func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}
	case QueryDeletedOnly:
		return func(db *gorm.DB) *gorm.DB {
			return db.Unscoped().Where("deleted_at IS NOT NULL")
		}
	default:
		return func(db *gorm.DB) *gorm.DB {
			return db
		}
	}
}
