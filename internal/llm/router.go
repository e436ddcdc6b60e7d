package llm

import (
	"fmt"
	"time"

	"github.com/codelens-hq/codelens/internal/config"
)

// Router selects a configured provider by name
type Router struct {
	clients         map[Provider]Client
	defaultProvider Provider
}

// NewRouter builds clients for every provider with credentials configured.
// Each client is wrapped with the response cache.
func NewRouter(cfg *config.Config) *Router {
	r := &Router{
		clients:         make(map[Provider]Client),
		defaultProvider: Provider(cfg.LLM.DefaultProvider),
	}

	ttl := time.Duration(cfg.LLM.CacheTTL) * time.Second

	if cfg.LLM.OpenAIKey != "" {
		client := NewOpenAIClient(cfg.LLM.OpenAIKey, cfg.LLM.OpenAIModel)
		r.clients[ProviderOpenAI] = newCachingClient(client, cfg.LLM.CacheSize, ttl)
	}
	if cfg.LLM.AnthropicKey != "" {
		client := NewAnthropicClient(cfg.LLM.AnthropicKey, cfg.LLM.AnthropicModel)
		r.clients[ProviderAnthropic] = newCachingClient(client, cfg.LLM.CacheSize, ttl)
	}

	return r
}

// Client returns the client for the given provider, or the default provider
// when name is empty
func (r *Router) Client(name Provider) (Client, error) {
	if name == "" {
		name = r.defaultProvider
	}
	client, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("llm provider %q is not configured", name)
	}
	return client, nil
}

// Providers lists the configured provider names
func (r *Router) Providers() []Provider {
	names := make([]Provider, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}
