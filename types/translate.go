package types

// TranslateRequest asks for a piece of assistant content in another language.
type TranslateRequest struct {
	Text           string `json:"text" binding:"required,max=4000"`
	SourceLanguage string `json:"sourceLanguage" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
}

// TranslateResponse carries the translated text and whether it came from the
// in-memory cache (no upstream call) or a fresh dispatch.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Cached         bool   `json:"cached"`
	TokensUsed     int    `json:"tokensUsed"`
}
