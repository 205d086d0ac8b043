package AIService

import (
	"context"
	"strings"
	"testing"

	"github.com/callmev1nc/SmartInvest/types"
)

func TestChat_RepliesAreNeverCached(t *testing.T) {
	t.Parallel()

	completer := &fakeCompleter{reply: "Consider index funds."}
	svc := newTestService(completer)

	profile := types.Profile{
		Name:        "Linh",
		RiskProfile: types.RiskProfileModerate,
		Language:    "vi",
	}

	for i := 0; i < 3; i++ {
		reply, tokens, err := svc.Chat(context.Background(), profile, "Where should I start?", nil)
		if err != nil {
			t.Fatalf("chat %d failed: %v", i, err)
		}
		if reply != "Consider index funds." || tokens != 42 {
			t.Fatalf("chat %d: unexpected result %q/%d", i, reply, tokens)
		}
	}

	// Every turn is a fresh dispatch
	if got := completer.callCount(); got != 3 {
		t.Fatalf("expected 3 upstream calls for 3 turns, got %d", got)
	}
}

func TestBuildChatMessages_IncludesProfileAndHistory(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeCompleter{})

	profile := types.Profile{
		Name:        "Linh",
		RiskProfile: types.RiskProfileConservative,
		Language:    "vi",
	}
	history := []types.ChatMessage{
		{Role: "user", Content: "What is a bond?"},
		{Role: "assistant", Content: "A bond is a loan to an issuer."},
	}

	messages := svc.buildChatMessages(profile, "Are bonds safe?", history)

	if len(messages) != 4 {
		t.Fatalf("expected system + 2 history + user = 4 messages, got %d", len(messages))
	}
	if !strings.Contains(messages[0].Content, "conservative") {
		t.Fatalf("system prompt should carry the risk profile: %q", messages[0].Content)
	}
	if messages[2].Role != "assistant" {
		t.Fatalf("history roles should be preserved, got %q", messages[2].Role)
	}
	if messages[3].Content != "Are bonds safe?" {
		t.Fatalf("last message should be the new user turn, got %q", messages[3].Content)
	}
}
