package configs

import (
	"time"
)

const (
	// Project Rules
	PROJECT_NAME = "SmartInvest - Assistant API"

	// OpenAI Quota Rules
	// The upstream plan allows a fixed number of requests per minute and per
	// day. The scheduler derives its dispatch interval from the per-minute
	// ceiling with a 10% safety margin on top.
	OPENAI_REQUESTS_PER_MINUTE = 60
	OPENAI_REQUESTS_PER_DAY    = 200
	OPENAI_TASK_TIMEOUT        = 90 * time.Second

	// AI Model Rules
	OPENAI_MODEL                   = "gpt-4.1-nano"
	OPENAI_CHAT_TEMPERATURE        = 0.7
	OPENAI_TRANSLATION_TEMPERATURE = 0.1

	// Cache Rules
	TRANSLATION_CACHE_MAX_ENTRIES = 500
	MARKET_UPDATE_MEMORY_TTL      = 5 * time.Minute
	RATE_LIMIT_CACHE_TTL          = 1 * time.Hour

	// Per-Client Rate Limit Rules (HTTP middleware, in front of the scheduler)
	CLIENT_RATE_LIMIT_REQ_PER_MINUTE = 5
	CLIENT_RATE_LIMIT_WINDOW         = 1 * time.Minute
)
