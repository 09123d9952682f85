package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for one chat-completion call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the message content returned by the endpoint.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a remote text-generation endpoint.
type LLMClient interface {
	// Generate sends a prompt and returns the raw message content. The
	// endpoint is always asked for a single JSON object.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// chatClient implements LLMClient against an OpenAI-compatible
// /chat/completions endpoint.
type chatClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewChatClient creates an LLMClient for an OpenAI-compatible endpoint
// such as SambaNova.
func NewChatClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &chatClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// chatRequest is the JSON body sent to POST /chat/completions.
type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the subset of the completion envelope we read.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var messages []chatMessage
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserPrompt})

	body := chatRequest{
		Model:          c.cfg.Model,
		Messages:       messages,
		Temperature:    temp,
		MaxTokens:      maxTok,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      resp.Choices[0].Message.Content,
				Model:     resp.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Only transport failures are retried; an answer from the
		// endpoint, good or bad, is final.
		if ctx.Err() != nil || !isConnectionError(err) {
			break
		}
	}

	lastErr = classifyError(ctx, lastErr)

	c.observer.OnCallComplete(LLMCallEvent{
		Task:       req.Task,
		Model:      c.cfg.Model,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    false,
		ErrorCode:  errorCode(lastErr),
		StatusCode: statusCode(lastErr),
	})
	return nil, lastErr
}

func (c *chatClient) doRequest(ctx context.Context, body chatRequest) (*chatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &ServiceError{
			StatusCode: httpResp.StatusCode,
			Body:       string(respBody),
			Err:        ErrBadStatus,
		}
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, malformed(string(respBody), "decoding completion envelope: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, malformed(string(respBody), "completion has no choices")
	}

	return &resp, nil
}

// classifyError maps a failed attempt onto the ServiceError /
// MalformedResponseError taxonomy.
func classifyError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &ServiceError{Err: fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())}
	case ctx.Err() != nil:
		return &ServiceError{Err: fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())}
	}
	var se *ServiceError
	var me *MalformedResponseError
	if errors.As(err, &se) || errors.As(err, &me) {
		return err
	}
	return &ServiceError{Err: fmt.Errorf("%w: %v", ErrServiceUnavailable, err)}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func statusCode(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrCancelled):
		return "CANCELLED"
	case errors.Is(err, ErrServiceUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
