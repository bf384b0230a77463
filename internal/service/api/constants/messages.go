package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다. 상점 고객에게 노출되므로 영문으로 작성합니다.
const (
	// 400 Bad Request
	ErrMsgBadRequest            = "Bad request"
	ErrMsgContactInvalidRequest = "Invalid request"
	ErrMsgContactFieldsRequired = "Name, email, and message are required"

	// 404 Not Found
	ErrMsgNotFound           = "The requested resource was not found"
	ErrMsgProductNotFound    = "Product not found"
	ErrMsgCollectionNotFound = "Collection not found"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "Request body is too large"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "Too many requests. Please try again shortly"

	// 500 Internal Server Error
	ErrMsgInternalServer = "An internal server error occurred"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "The service is temporarily unavailable. Please try again later"
)
