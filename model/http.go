package model

type ErrorResponse struct {
	Error     string `json:"detail"`
	RequestId string `json:"request_id,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
