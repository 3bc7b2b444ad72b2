package models

// Score bounds for the three rubric dimensions.
const (
	ScoreMin = 1
	ScoreMax = 5
)

// EvaluationRecord is a single reviewer judgment. It carries its own copy
// of the judged pair: records stay meaningful even if the catalog entry is
// edited later. PromptID is recorded for auditing when known but plays no
// part in matching, which goes by prompt text.
type EvaluationRecord struct {
	ID           int64  `json:"id,omitempty" db:"id"`
	PromptID     int64  `json:"prompt_id,omitempty" db:"prompt_id"`
	PromptText   string `json:"prompt" db:"prompt_text"`
	ResponseText string `json:"response" db:"response_text"`
	Helpfulness  int    `json:"helpfulness_score" db:"helpfulness_score"`
	Truthfulness int    `json:"truthfulness_score" db:"truthfulness_score"`
	Harmlessness int    `json:"harmlessness_score" db:"harmlessness_score"`
	Comments     string `json:"comments" db:"comments"`
	Timestamp    string `json:"timestamp" db:"submitted_at"`
}

// Statistics summarizes the evaluation log. The zero value is the
// "no evaluations yet" sentinel: Count 0 and zero means, never NaN.
type Statistics struct {
	Count            int     `json:"total_evaluations"`
	MeanHelpfulness  float64 `json:"avg_helpfulness"`
	MeanTruthfulness float64 `json:"avg_truthfulness"`
	MeanHarmlessness float64 `json:"avg_harmlessness"`
}
