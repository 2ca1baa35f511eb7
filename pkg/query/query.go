// Package query translates raw filter/pagination parameters into
// persistence-layer query fragments. Filter maps are only honored for
// whitelisted keys; everything else is silently dropped.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Field is one whitelisted filterable field: the inbound key, the backing
// column, and whether values must be syntactically valid identifiers.
type Field struct {
	Key    string
	Column string
	ID     bool
}

// Condition is a single WHERE fragment. Conditions combine with AND.
type Condition struct {
	Expr string
	Arg  interface{}
}

// Options are the raw pagination/sort parameters as parsed from the request.
type Options struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Pagination is the effective window after clamping.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

const (
	minPage      = 1
	minLimit     = 1
	maxLimit     = 100
	defaultLimit = 10
)

// Calculate clamps page and limit and derives the offset. Pages are 1-based.
func Calculate(opts Options) Pagination {
	page := opts.Page
	if page < minPage {
		page = minPage
	}

	limit := opts.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// BuildConditions turns a raw filter map into WHERE fragments, honoring only
// the whitelisted fields, in whitelist order. String values match as
// case-insensitive substrings; identifier fields match exactly and are
// dropped when the value is not a valid identifier.
func BuildConditions(filters map[string]string, fields []Field) []Condition {
	var conditions []Condition

	for _, field := range fields {
		value, ok := filters[field.Key]
		if !ok || value == "" {
			continue
		}

		if field.ID {
			id, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				// Not a valid identifier: drop the filter, not the request.
				continue
			}
			conditions = append(conditions, Condition{
				Expr: field.Column + " = ?",
				Arg:  uint(id),
			})
			continue
		}

		conditions = append(conditions, Condition{
			Expr: field.Column + " ILIKE ?",
			Arg:  "%" + value + "%",
		})
	}

	return conditions
}

// ResolveSort picks the ORDER BY clause. The explicit sort is used only when
// both a whitelisted sort field and a valid direction are supplied; otherwise
// the default is creation time, newest first.
func ResolveSort(opts Options, sortable map[string]string) string {
	if opts.SortBy != "" && opts.SortOrder != "" {
		column, ok := sortable[opts.SortBy]
		order := strings.ToLower(opts.SortOrder)
		if ok && (order == "asc" || order == "desc") {
			return fmt.Sprintf("%s %s", column, strings.ToUpper(order))
		}
	}
	return "created_at DESC"
}

// Apply attaches the conditions to a gorm query.
func Apply(db *gorm.DB, conditions []Condition) *gorm.DB {
	for _, c := range conditions {
		db = db.Where(c.Expr, c.Arg)
	}
	return db
}
