package dto

import "time"

// ErrorResponse is the envelope for all error responses
type ErrorResponse struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse creates an error response, normalizing the error code
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:      NormalizeErrorCode(code),
			Message:   message,
			Timestamp: time.Now().UTC(),
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.RequestID = requestID
	return resp
}

// IDResponse is returned after creating a resource
type IDResponse struct {
	ID string `json:"id"`
}

// StatusResponse acknowledges a mutation
type StatusResponse struct {
	Status string `json:"status"`
}

// DataResponse wraps a single resource
type DataResponse struct {
	Data any `json:"data"`
}

// UploadEvidenceResponse acknowledges an evidence upload
type UploadEvidenceResponse struct {
	Status     string `json:"status"`
	EvidenceID string `json:"evidence_id"`
}

// FileDataResponse wraps evidence metadata
type FileDataResponse struct {
	Status   string `json:"status"`
	FileData any    `json:"file_data"`
}

// MessageResponse carries the liveness message
type MessageResponse struct {
	Message string `json:"message"`
}
