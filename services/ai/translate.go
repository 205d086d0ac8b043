package AIService

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/callmev1nc/SmartInvest/configs"
)

// Translate returns the text in the target language. Identical text/language
// pairs cost exactly one upstream dispatch: the first call fills the cache,
// every later call is a hit. The cached flag reports which path served the
// request.
func (s *AIService) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, bool, int, error) {
	if cached, ok := s.TranslationCache.GetTranslation(text, sourceLanguage, targetLanguage); ok {
		return cached, true, 0, nil
	}

	result, err := s.Scheduler.Submit(ctx, func(taskCtx context.Context) (any, error) {
		return s.translateText(taskCtx, text, sourceLanguage, targetLanguage)
	})
	if err != nil {
		return "", false, 0, err
	}

	completion := result.(completionResult)

	// Only successful dispatches are written back
	s.TranslationCache.SaveTranslation(text, sourceLanguage, targetLanguage, completion.content)

	return completion.content, false, completion.tokensUsed, nil
}

// translateText performs the actual upstream call for one text.
func (s *AIService) translateText(ctx context.Context, text, sourceLanguage, targetLanguage string) (completionResult, error) {
	systemPrompt := fmt.Sprintf(`You are a professional %s-to-%s translator for a personal-finance app.
Translate the provided text naturally and fluently.
Keep financial terms precise; do not add commentary or quotation marks.`,
		sourceLanguage,
		targetLanguage,
	)

	userPrompt := fmt.Sprintf(`Translate the following text from %s to %s. Return only the translation.

%s`,
		sourceLanguage,
		targetLanguage,
		text,
	)

	resp, err := s.Completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: configs.OPENAI_MODEL,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: configs.OPENAI_TRANSLATION_TEMPERATURE,
	})
	if err != nil {
		return completionResult{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return completionResult{}, fmt.Errorf("empty response from OpenAI API")
	}

	return completionResult{
		content:    resp.Choices[0].Message.Content,
		tokensUsed: resp.Usage.TotalTokens,
	}, nil
}
