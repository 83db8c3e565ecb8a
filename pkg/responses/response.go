package responses

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/kickstats/internal/middleware"
)

const defaultPageSize = 10

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Status  string      `json:"status"` // always "success"
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the body of every 4xx and 5xx reply.
type ErrorResponse struct {
	Status    string      `json:"status"` // "error" for client faults, "fail" for server faults
	Message   string      `json:"message"`
	Code      int         `json:"code"`
	RequestID string      `json:"request_id,omitempty"`
	Errors    interface{} `json:"errors,omitempty"` // per-field validation messages
}

// PaginatedResponse is a SuccessResponse carrying one page of a list.
type PaginatedResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination describes where a page sits within the full list.
type Pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

// NewPagination computes page metadata. A non-positive size falls back to
// the default page size.
func NewPagination(totalItems int64, page, pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	p := Pagination{
		TotalItems:  totalItems,
		TotalPages:  int((totalItems + int64(pageSize) - 1) / int64(pageSize)),
		CurrentPage: page,
		PageSize:    pageSize,
	}
	if page < p.TotalPages {
		next := page + 1
		p.HasNextPage, p.NextPage = true, &next
	}
	if page > 1 {
		prev := page - 1
		p.HasPrevPage, p.PreviousPage = true, &prev
	}
	return p
}

// PageBounds returns the slice bounds of a page within total items.
func PageBounds(total, page, pageSize int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	start = min((page-1)*pageSize, total)
	end = min(start+pageSize, total)
	return start, end
}

// SendSuccess writes data in the success envelope.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{Status: "success", Message: message, Data: data})
}

// SendPaginated writes one page of data with its pagination block.
func SendPaginated(c *gin.Context, statusCode int, message string, data interface{}, totalItems int64, currentPage int, pageSize int) {
	if message == "" {
		message = "Data retrieved successfully"
	}
	c.JSON(statusCode, PaginatedResponse{
		Status:     "success",
		Message:    message,
		Data:       data,
		Pagination: NewPagination(totalItems, currentPage, pageSize),
	})
}

// SendError writes the error envelope and aborts the chain.
func SendError(c *gin.Context, statusCode int, message string) {
	sendError(c, statusCode, message, nil)
}

// SendValidationError sends a 400 with per-field details.
func SendValidationError(c *gin.Context, message string, fields map[string]string) {
	if message == "" {
		message = "Validation failed"
	}
	sendError(c, http.StatusBadRequest, message, fields)
}

// NotFound sends a 404 for the named resource.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found")
}

// Unprocessable sends a 422 when the request is well formed but the data
// cannot support the computation.
func Unprocessable(c *gin.Context, message string) {
	SendError(c, http.StatusUnprocessableEntity, message)
}

// InternalServerError sends a 500 and logs it against the request ID.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message)
}

func sendError(c *gin.Context, statusCode int, message string, details interface{}) {
	requestID, _ := middleware.GetRequestIDFromContext(c)
	status := "error"
	if statusCode >= http.StatusInternalServerError {
		status = "fail"
		log.Printf("[%s] %s %s: %d %s", requestID, c.Request.Method, c.Request.URL.Path, statusCode, message)
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:    status,
		Message:   message,
		Code:      statusCode,
		RequestID: requestID,
		Errors:    details,
	})
}
