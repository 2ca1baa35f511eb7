package constants

// Standard Response Field Keys
const (
	// Pagination meta fields
	ResponseFieldTotal = "total"
	ResponseFieldPage  = "page"
	ResponseFieldLimit = "limit"
	ResponseFieldMeta  = "meta"
	ResponseFieldData  = "data"

	// Common response fields
	ResponseFieldMessage = "message"
	ResponseFieldDetails = "details"
	ResponseFieldSuccess = "success"
)

// BuildListResponse wraps a result page with its pagination metadata.
func BuildListResponse(total int64, page, limit int, data any) map[string]any {
	return map[string]any{
		ResponseFieldMeta: map[string]any{
			ResponseFieldTotal: total,
			ResponseFieldPage:  page,
			ResponseFieldLimit: limit,
		},
		ResponseFieldData: data,
	}
}

func BuildErrorResponse(message string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldMessage: message,
	}

	if details != nil {
		response[ResponseFieldDetails] = details
	}

	return response
}

func BuildSuccessResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldMessage: message,
	}
}

func BuildDataResponse(data any) map[string]any {
	return map[string]any{
		ResponseFieldData: data,
	}
}
