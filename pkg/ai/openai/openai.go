package openai

import (
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/ai"
)

// Client talks to an OpenAI-compatible chat completion endpoint. It is
// safe for concurrent use; the metrics counter is the only mutable state.
//
// A Client should be created using NewClient.
type Client struct {
	chatModel string
	chatURL   string
	chatKey   string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewClientParams defines the configuration for creating a Client.
//
// ChatModel specifies the default completion model. ChatURL overrides the
// API base URL for OpenAI-compatible gateways; leave it empty for the
// public API.
type NewClientParams struct {
	ChatModel string
	ChatURL   string
	ChatKey   string
}

// NewClient creates a Client from the given parameters.
func NewClient(params NewClientParams) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(params.ChatKey),
	}
	if params.ChatURL != "" {
		opts = append(opts, option.WithBaseURL(params.ChatURL))
	}
	chat := openai.NewClient(opts...)

	return &Client{
		chatModel:  params.ChatModel,
		chatURL:    params.ChatURL,
		chatKey:    params.ChatKey,
		ChatClient: &chat,
	}
}

func (c *Client) modifyMetrics(delta ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += delta.InputTokens
	c.metrics.OutputTokens += delta.OutputTokens
	c.metrics.TotalTokens += delta.TotalTokens
	c.metrics.DurationMs += delta.DurationMs
}

// ResetMetrics clears the accumulated usage metrics.
func (c *Client) ResetMetrics() {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics = ai.ModelMetrics{}
}

// GetMetrics returns a snapshot of the accumulated usage metrics.
func (c *Client) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}
