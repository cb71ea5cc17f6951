package model

type StatusResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
