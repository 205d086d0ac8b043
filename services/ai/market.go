package AIService

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/callmev1nc/SmartInvest/configs"
	"github.com/callmev1nc/SmartInvest/types"
)

// DailyUpdate returns today's market brief for the risk profile. The brief is
// generated at most once per profile per local calendar day: a short-lived
// in-process cache absorbs repeated reads, the Postgres row carries the day,
// and only a double miss pays for a scheduler dispatch.
func (s *AIService) DailyUpdate(ctx context.Context, riskProfile types.RiskProfile) (types.MarketUpdate, bool, error) {
	today := time.Now().Format("2006-01-02")
	memoryKey := fmt.Sprintf("market:%s:%s", riskProfile, today)

	// 1. In-process probe
	if raw, ok := s.MarketMemory.Get(memoryKey); ok {
		var update types.MarketUpdate
		if err := json.Unmarshal([]byte(raw), &update); err == nil {
			return update, true, nil
		}
	}

	// 2. Durable probe
	update, found, err := s.MarketRepo.SelectDailyUpdate(riskProfile, today)
	if err != nil {
		return types.MarketUpdate{}, false, err
	}
	if found {
		s.rememberUpdate(memoryKey, update)
		return update, true, nil
	}

	// 3. Double miss: generate through the scheduler
	result, err := s.Scheduler.Submit(ctx, func(taskCtx context.Context) (any, error) {
		return s.generateUpdate(taskCtx, riskProfile)
	})
	if err != nil {
		return types.MarketUpdate{}, false, err
	}

	completion := result.(completionResult)
	update = types.MarketUpdate{
		RiskProfile: riskProfile,
		UpdateDate:  today,
		Content:     completion.content,
		TokensUsed:  completion.tokensUsed,
		CreatedAt:   time.Now(),
	}

	if err := s.MarketRepo.UpsertDailyUpdate(update); err != nil {
		// The generated update is still good; serving it beats failing the
		// request over a persistence problem
		log.Printf("[MARKET] daily update could not be persisted: %v", err)
	}
	s.rememberUpdate(memoryKey, update)

	if s.StorageRepo != nil {
		go func(archived types.MarketUpdate) {
			archiveCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.StorageRepo.ArchiveDailyUpdate(archiveCtx, archived); err != nil {
				log.Printf("[MARKET] daily update could not be archived: %v", err)
			}
		}(update)
	}

	return update, false, nil
}

func (s *AIService) rememberUpdate(memoryKey string, update types.MarketUpdate) {
	if raw, err := json.Marshal(update); err == nil {
		s.MarketMemory.Set(memoryKey, string(raw))
	}
}

// generateUpdate performs the upstream call for one profile's brief.
func (s *AIService) generateUpdate(ctx context.Context, riskProfile types.RiskProfile) (completionResult, error) {
	systemPrompt := `You are a market analyst writing the daily brief for a personal-finance app.
Summarize the general market climate and what it means for retail investors.
Be educational, neutral and concise; never give personalized advice.`

	userPrompt := fmt.Sprintf(`Write today's market update for a user with a "%s" risk profile.
Structure: a two-sentence market summary, then three short bullet points relevant to that profile.
Keep it under 150 words.`, riskProfile)

	resp, err := s.Completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: configs.OPENAI_MODEL,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: configs.OPENAI_CHAT_TEMPERATURE,
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
