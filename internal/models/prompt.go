package models

// PromptRecord is one entry in the prompt catalog: a stimulus and the
// response under review. ResponseText may stay empty until a response is
// attached; absence of a response is a valid state, not an error.
type PromptRecord struct {
	ID           int64  `json:"id,omitempty" db:"id"`
	PromptText   string `json:"prompt" db:"prompt_text"`
	ResponseText string `json:"response" db:"response_text"`
}
