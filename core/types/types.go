package types

// ErrorResponse is the standard error payload returned by controllers
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the standard success payload for operations without a body
type SuccessResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

// Pagination describes one page of a paginated listing
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// PaginatedResponse wraps list data with pagination metadata
type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ChartPoint is a single name/value pair for dashboard summaries
type ChartPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DatePoint is a single date/count pair for time-series summaries
type DatePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
