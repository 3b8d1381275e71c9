package dto

type UploadResponse struct {
	Notes     string `json:"notes"`
	SessionId string `json:"session_id,omitempty"`
}

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// IngestResult is what the service reports about one upload.
type IngestResult struct {
	Notes        string
	SessionId    string
	Extraction   string // extractor.Status
	Characters   int
	Chunks       int
	FailedChunks int
}

type SessionResponse struct {
	SessionId string `json:"session_id"`
}
