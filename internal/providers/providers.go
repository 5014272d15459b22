// Package providers defines the capability interface for extraction model
// providers and a registry dispatching on model name. Providers always hand
// the evaluation core plain validated pages, never raw API responses.
package providers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/plumelab/pageval/internal/schema"
)

// Provider extracts one structured page from a source document. pageNum is
// 1-indexed.
type Provider interface {
	ProcessPage(ctx context.Context, pdfPath string, pageNum int) (*schema.Page, error)
}

// Factory builds a provider for a given model name.
type Factory func(apiKey, modelName string) Provider

// Registry maps model names to provider factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates a model name with a factory.
func (r *Registry) Register(modelName string, factory Factory) {
	r.factories[modelName] = factory
}

// New creates the provider registered for modelName.
func (r *Registry) New(modelName, apiKey string) (Provider, error) {
	factory, ok := r.factories[modelName]
	if !ok {
		return nil, fmt.Errorf("model %q not supported (available: %s)",
			modelName, strings.Join(r.Models(), ", "))
	}
	return factory(apiKey, modelName), nil
}

// Models lists registered model names, sorted.
func (r *Registry) Models() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
