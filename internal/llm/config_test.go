package llm

import "testing"

func TestValidate_MissingKeyFails(t *testing.T) {
	for _, provider := range []string{"gemini", "anthropic", "openai"} {
		cfg := DefaultConfig()
		cfg.Provider = provider
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for %s without API key", provider)
		}
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("AIVY_LLM_PROVIDER", "openai")
	t.Setenv("AIVY_OPENAI_API_KEY", "sk-test")
	t.Setenv("AIVY_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()

	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %s", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("API key not picked up")
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("model not picked up")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestDiscoverConfig_PrefersGemini(t *testing.T) {
	t.Setenv("GOOGLE_AI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win, got %s", cfg.Provider)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	for _, k := range []string{"GOOGLE_AI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENAI_API_KEY"} {
		t.Setenv(k, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestDefaultRetryIsSingleAttempt(t *testing.T) {
	if got := DefaultConfig().Retry.MaxAttempts; got != 1 {
		t.Fatalf("expected 1 attempt by default, got %d", got)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Fatalf("friendly name not resolved: %s", got)
	}
	if got := resolveModel("custom-model-id", geminiModels); got != "custom-model-id" {
		t.Fatalf("unknown name should pass through: %s", got)
	}
}
