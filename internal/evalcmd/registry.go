package evalcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/plumelab/pageval/internal/gemini"
	"github.com/plumelab/pageval/internal/mistral"
	"github.com/plumelab/pageval/internal/providers"
)

// newRegistry wires every supported extraction model to its provider.
func newRegistry() *providers.Registry {
	registry := providers.NewRegistry()

	registry.Register("mistral-ocr-latest", mistral.NewOCR)

	for _, model := range []string{
		"pixtral-12b-latest",
		"pixtral-large-latest",
		"mistral-medium-2508",
		"mistral-small-2506",
	} {
		registry.Register(model, mistral.NewVision)
	}

	for _, model := range []string{
		"gemini-2.5-flash",
		"gemini-2.5-pro",
	} {
		registry.Register(model, gemini.New)
	}

	return registry
}

// apiKeyFor resolves the API key environment variable for a model name.
func apiKeyFor(modelName string) (string, error) {
	envVar := "MISTRAL_API_KEY"
	if strings.HasPrefix(modelName, "gemini") {
		envVar = "GEMINI_API_KEY"
	}
	key := os.Getenv(envVar)
	if key == "" {
		return "", fmt.Errorf("%s environment variable is required for model %s", envVar, modelName)
	}
	return key, nil
}
