package constants

// Pagination Query Parameters
const (
	QueryParamPage      = "page"
	QueryParamLimit     = "limit"
	QueryParamSortBy    = "sortBy"
	QueryParamSortOrder = "sortOrder"
)

// Default Pagination Values (as strings for query parsing)
const (
	DefaultPage  = "1"
	DefaultLimit = "10"
)

// Pagination Limits (as integers for validation)
const (
	MinPage  = 1
	MinLimit = 1
	MaxLimit = 100
)

// Sort Orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// DefaultSortColumn is used when no explicit sort field and order are supplied.
const DefaultSortColumn = "created_at"
