package ai

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

const (
	maxRetries     = 3
	chunkMaxTokens = 2000
)

// Client wraps the OpenAI-compatible completion and embedding endpoints.
type Client struct {
	client         *openai.Client
	model          string
	embeddingModel string
	maxTokens      int
	timeout        time.Duration
}

// Options configures the AI client.
type Options struct {
	APIKey         string
	BaseURL        string // empty = api.openai.com
	Model          string
	EmbeddingModel string
	MaxTokens      int
	Timeout        time.Duration
}

func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	return &Client{
		client:         openai.NewClientWithConfig(cfg),
		model:          opts.Model,
		embeddingModel: opts.EmbeddingModel,
		maxTokens:      opts.MaxTokens,
		timeout:        opts.Timeout,
	}
}

// Model returns the configured completion model name.
func (c *Client) Model() string { return c.model }

// ReorganizeChunk restructures one transcript chunk around its embedded
// timestamps without summarizing it.
func (c *Client) ReorganizeChunk(ctx context.Context, chunk string) (string, error) {
	return c.complete(ctx, reorganizeSystem, reorganizePrompt(chunk), chunkMaxTokens)
}

// GenerateBlogPost writes the final post from the reorganized transcript
// and the video's title/description.
func (c *Client) GenerateBlogPost(ctx context.Context, processedTranscript string, meta model.VideoMetadata) (string, error) {
	return c.complete(ctx, blogPostSystem, blogPostPrompt(processedTranscript, meta.Title, meta.Description), c.maxTokens)
}

// complete issues one chat completion with bounded retries and a per-call
// timeout. Any transport, auth, or rate-limit failure surfaces as a
// tagged upstream error rather than a content string.
func (c *Client) complete(ctx context.Context, instruction, content string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		MaxTokens: maxTokens,
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateChatCompletion(callCtx, req)
		cancel()

		if err == nil {
			if len(resp.Choices) == 0 {
				lastErr = model.E(model.KindUpstream, "ai.completion", "empty response from completion provider", nil)
			} else {
				middleware.Logger.Debug().
					Str("model", c.model).
					Int("total_tokens", resp.Usage.TotalTokens).
					Msg("completion finished")
				return resp.Choices[0].Message.Content, nil
			}
		} else {
			lastErr = err
		}

		if ctx.Err() != nil {
			break
		}
		if attempt < maxRetries {
			middleware.Logger.Warn().
				Int("attempt", attempt).
				Int("max_attempts", maxRetries).
				Err(lastErr).
				Msg("completion attempt failed, retrying")
			select {
			case <-time.After(time.Duration(attempt) * 2 * time.Second):
			case <-ctx.Done():
			}
		}
	}

	return "", model.E(model.KindUpstream, "ai.completion", "completion request failed", lastErr)
}

// Embed returns the embedding vector for the given text, used to index
// generated posts in the vector cache.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(callCtx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.embeddingModel),
		Input: []string{text},
	})
	if err != nil {
		return nil, model.E(model.KindUpstream, "ai.embed", "embedding request failed", err)
	}
	if len(resp.Data) == 0 {
		return nil, model.E(model.KindUpstream, "ai.embed", "empty embedding response", nil)
	}
	return resp.Data[0].Embedding, nil
}
