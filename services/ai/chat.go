package AIService

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/callmev1nc/SmartInvest/configs"
	"github.com/callmev1nc/SmartInvest/types"
)

// Chat produces one assistant reply for the user's message. Replies depend on
// the conversation history, so they are never cached; every call is a fresh
// dispatch through the scheduler.
func (s *AIService) Chat(ctx context.Context, profile types.Profile, message string, history []types.ChatMessage) (string, int, error) {
	messages := s.buildChatMessages(profile, message, history)

	result, err := s.Scheduler.Submit(ctx, func(taskCtx context.Context) (any, error) {
		resp, err := s.Completer.CreateChatCompletion(taskCtx, openai.ChatCompletionRequest{
			Model:       configs.OPENAI_MODEL,
			Messages:    messages,
			Temperature: configs.OPENAI_CHAT_TEMPERATURE,
		})
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("empty response from OpenAI API")
		}

		return completionResult{
			content:    resp.Choices[0].Message.Content,
			tokensUsed: resp.Usage.TotalTokens,
		}, nil
	})
	if err != nil {
		return "", 0, err
	}

	completion := result.(completionResult)
	return completion.content, completion.tokensUsed, nil
}

// buildChatMessages turns the profile and prior turns into the completion
// message list.
func (s *AIService) buildChatMessages(profile types.Profile, message string, history []types.ChatMessage) []openai.ChatCompletionMessage {
	systemPrompt := fmt.Sprintf(`You are a friendly personal-finance assistant for the SmartInvest app.
The user's name is %s and their risk profile is "%s".
Give practical, educational investment suggestions appropriate for that risk profile.
Always remind the user that this is general education, not licensed financial advice.
Answer in the user's language (%s). Keep answers under 200 words.`,
		profile.Name,
		profile.RiskProfile,
		profile.Language,
	)

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}

	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	return messages
}
