package models

// Response is the uniform envelope returned by every successful endpoint.
type Response struct {
	Data   interface{} `json:"data"`
	Status Status      `json:"status"`
}

// Status carries the application-level code and human-readable message.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the structured error body returned with a non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Success wraps a payload in the standard envelope.
func Success(data interface{}, message string) Response {
	return Response{
		Data: data,
		Status: Status{
			Code:    200,
			Message: message,
		},
	}
}
