package dto

// ExtractionResult is the classifier's reply as parsed: TotalAmount is
// either a JSON number or the "Total amount not found" sentinel string,
// and is echoed back to the client exactly as the model produced it.
type ExtractionResult struct {
	TotalAmount any    `json:"total_amount"`
	Category    string `json:"category"`
}
