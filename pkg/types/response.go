package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// ListEnvelope wraps paginated rows together with the unpaginated total.
type ListEnvelope[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
