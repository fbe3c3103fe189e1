package domain

// ChatRequest is a message for the AI therapist.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000" example:"I have trouble switching off after work."`
}

// ChatResponse is the therapist's reply. AudioBase64 carries synthesized
// speech when the upstream service provides it.
type ChatResponse struct {
	Response    string `json:"response"`
	AudioBase64 string `json:"audio_base64,omitempty"`
}

type TherapistFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=4000" example:"The breathing suggestion helped."`
}

type TherapistFeedbackResponse struct {
	Message string `json:"message" example:"Feedback submitted successfully"`
	Status  string `json:"status,omitempty" example:"ok"`
}
