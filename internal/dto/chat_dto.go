package dto

// ChatRequest is the web-chat question payload. The synthesizer is stateless;
// callers needing multi-turn behaviour fold prior turns into the message text.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatResponse carries the visible answer and an optional image reference
// extracted from the model's directive marker.
type ChatResponse struct {
	Response string `json:"response"`
	Image    string `json:"image,omitempty"`
}

// AskRequest is the bot-facing question payload.
type AskRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// AskResponse is the bot-facing answer payload.
type AskResponse struct {
	Answer string `json:"answer"`
}
