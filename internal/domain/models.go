package domain

// ImageUpload is an image attached to a classification request.
type ImageUpload struct {
	FileName string
	Data     []byte
}

// FeatureVector is a sparse, fixed-dimension feature vector. Indices are
// strictly ascending and always smaller than Dim.
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v FeatureVector) Len() int {
	return len(v.Indices)
}

// TextDecision is the label-only result of a text classification.
type TextDecision struct {
	Label Label `json:"label"`
}

// Decision is the result of a multi-modal classification: the label, the
// merged text it was computed from, and the spam probability.
type Decision struct {
	Label Label   `json:"final_label"`
	Text  string  `json:"text"`
	Score float64 `json:"total_score"`
}
