package models

type ParseCVRequest struct {
	ModelType string `query:"model_type" validate:"required"`
}

type AnalyzeRequest struct {
	JobTitle     string `query:"job_title" validate:"required"`
	CompanyName  string `query:"company_name" validate:"required"`
	Requirements string `query:"requirements" validate:"required"`
	ModelType    string `query:"model_type" validate:"required"`
}

// ModelInfo describes one selectable model identifier.
type ModelInfo struct {
	ID        string `json:"id"`
	Provider  string `json:"provider"`
	Model     string `json:"model,omitempty"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Code  int    `json:"code"`
}
