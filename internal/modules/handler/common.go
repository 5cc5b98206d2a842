package handler

// SuccessRes acknowledges an operation that returns no record.
type SuccessRes struct {
	Success bool `json:"success"`
}
