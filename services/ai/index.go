// Package AIService sits between the handlers and OpenAI. Every operation
// follows the same protocol: probe the matching cache first, submit a task to
// the scheduler on a miss, write the result back on success. The scheduler
// knows nothing about the caches; they compose only here.
package AIService

import (
	"context"

	"github.com/sashabaranov/go-openai"

	MarketRepository "github.com/callmev1nc/SmartInvest/repositories/market"
	StorageRepository "github.com/callmev1nc/SmartInvest/repositories/storage"
	"github.com/callmev1nc/SmartInvest/services/cache"
	"github.com/callmev1nc/SmartInvest/services/scheduler"
	"github.com/callmev1nc/SmartInvest/types"
)

// Completer is the slice of the OpenAI client the service needs. Satisfied by
// *AIRepository.Repository.
type Completer interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// MarketStore is the durable day-keyed cache behind DailyUpdate. Satisfied by
// *MarketRepository.Repository.
type MarketStore interface {
	SelectDailyUpdate(riskProfile types.RiskProfile, updateDate string) (types.MarketUpdate, bool, error)
	UpsertDailyUpdate(update types.MarketUpdate) error
}

// Archiver copies generated updates to object storage. Satisfied by
// *StorageRepository.Repository.
type Archiver interface {
	ArchiveDailyUpdate(ctx context.Context, update types.MarketUpdate) error
}

var (
	_ MarketStore = (*MarketRepository.Repository)(nil)
	_ Archiver    = (*StorageRepository.Repository)(nil)
)

type AIService struct {
	Completer        Completer
	Scheduler        *scheduler.Scheduler
	TranslationCache *cache.TranslationCacheService
	MarketRepo       MarketStore
	MarketMemory     cache.Store
	StorageRepo      Archiver // optional, nil disables archiving
}

func NewAIService(
	completer Completer,
	sch *scheduler.Scheduler,
	translationCache *cache.TranslationCacheService,
	marketRepo MarketStore,
	marketMemory cache.Store,
	storageRepo Archiver,
) *AIService {
	return &AIService{
		Completer:        completer,
		Scheduler:        sch,
		TranslationCache: translationCache,
		MarketRepo:       marketRepo,
		MarketMemory:     marketMemory,
		StorageRepo:      storageRepo,
	}
}

// completionResult is what every scheduled task hands back through the
// scheduler's opaque result.
type completionResult struct {
	content    string
	tokensUsed int
}
