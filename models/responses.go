package models

// ErrorResponse is the body of every non-2xx API response.
// Code is a stable machine-readable category; Message is safe to show to
// the user and never carries internal details.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
