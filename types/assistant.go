package types

// ChatRequest carries one user turn of the assistant conversation.
type ChatRequest struct {
	ProfileID string        `json:"profileId" binding:"required,uuid"`
	Message   string        `json:"message" binding:"required,max=2000"`
	History   []ChatMessage `json:"history" binding:"omitempty,dive"`
}

// ChatMessage is a prior turn the client sends back for context.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatResponse is the assistant's reply plus usage accounting.
type ChatResponse struct {
	Reply      string `json:"reply"`
	TokensUsed int    `json:"tokensUsed"`
	Cost       any    `json:"cost"`
}
