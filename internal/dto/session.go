package dto

// SubmitAnswerRequest is the body of POST /api/sessions/{id}/answers.
// @Description Option chosen for the session's current question
type SubmitAnswerRequest struct {
	Selected string `json:"selected" validate:"required,max=500" example:"Horse"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
}
