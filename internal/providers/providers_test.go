package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/plumelab/pageval/internal/schema"
)

type stubProvider struct {
	model string
}

func (s *stubProvider) ProcessPage(ctx context.Context, pdfPath string, pageNum int) (*schema.Page, error) {
	return &schema.Page{Items: []schema.Item{}}, nil
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register("model-b", func(apiKey, modelName string) Provider {
		return &stubProvider{model: modelName}
	})
	registry.Register("model-a", func(apiKey, modelName string) Provider {
		return &stubProvider{model: modelName}
	})

	provider, err := registry.New("model-a", "key")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stub, ok := provider.(*stubProvider); !ok || stub.model != "model-a" {
		t.Errorf("Expected stub for model-a, got %#v", provider)
	}

	models := registry.Models()
	if len(models) != 2 || models[0] != "model-a" || models[1] != "model-b" {
		t.Errorf("Expected sorted model names, got %v", models)
	}
}

func TestRegistryUnknownModel(t *testing.T) {
	registry := NewRegistry()
	registry.Register("known", func(apiKey, modelName string) Provider {
		return &stubProvider{}
	})

	_, err := registry.New("unknown", "key")
	if err == nil {
		t.Fatal("Expected error for unknown model")
	}
	if !strings.Contains(err.Error(), "known") {
		t.Errorf("Expected error to list available models, got %v", err)
	}
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), func() (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("Expected ok, got %q", result)
	}
	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("permanent")
	})
	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if calls != defaultRetries {
		t.Errorf("Expected %d calls, got %d", defaultRetries, calls)
	}
}

func TestRetryFirstTrySuccess(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil || result != 42 || calls != 1 {
		t.Errorf("Expected immediate success, got result=%d err=%v calls=%d", result, err, calls)
	}
}

func TestRetryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, func() (int, error) {
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
