// Package remote provides the remote analysis service clients: an HTTP
// client for the hosted model, a resilience wrapper around any client and
// in-process stand-ins for tests and offline use.
package remote

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"

	"textlens/config"
	"textlens/internal/domain"
)

const promptTemplate = `Quyidagi matnni tahlil qiling va natijani faqat o'zbek tilida qaytaring.
1. Hissiyot: matn ijobiy, salbiy yoki neytralmi? Ishonch darajasini 0 dan 1 gacha bering va muhim so'z yoki iboralar bilan tushuntiring.
2. Mavzu: matnning asosiy mavzusini 1-2 jumlada ifodalang.
Javob JSON ko'rinishida bo'lsin: {"sentiment", "confidence", "explanation", "topic"}.
Matn: %q`

type analyzeRequest struct {
	Prompt         string `json:"prompt"`
	OutputLanguage string `json:"output_language"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HTTPAnalyzer calls a hosted text analysis endpoint.
type HTTPAnalyzer struct {
	client   *resty.Client
	endpoint string
}

// NewHTTPAnalyzer creates an analyzer for cfg.Endpoint. The API key is read
// from the environment variable named by cfg.APIKeyEnv.
func NewHTTPAnalyzer(cfg config.RemoteConfig) (*HTTPAnalyzer, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("remote endpoint is not configured")
	}
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable: %s", cfg.APIKeyEnv)
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(apiKey)

	return &HTTPAnalyzer{client: client, endpoint: cfg.Endpoint}, nil
}

// Name returns the provider name.
func (a *HTTPAnalyzer) Name() string {
	return config.ProviderHTTP
}

// Analyze posts text to the endpoint and decodes the structured reply.
func (a *HTTPAnalyzer) Analyze(ctx context.Context, text string) (domain.RemoteAnalysis, error) {
	var result domain.RemoteAnalysis

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(analyzeRequest{
			Prompt:         fmt.Sprintf(promptTemplate, text),
			OutputLanguage: "uz",
		}).
		SetResult(&result).
		SetError(&apiError{}).
		Post(a.endpoint)
	if err != nil {
		return domain.RemoteAnalysis{}, &domain.RemoteError{Op: "request", Err: err}
	}

	if resp.IsError() {
		msg := strings.TrimSpace(resp.String())
		if e, ok := resp.Error().(*apiError); ok {
			if e.Message != "" {
				msg = e.Message
			} else if e.Error != "" {
				msg = e.Error
			}
		}
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return domain.RemoteAnalysis{}, &domain.RemoteError{
			Op:  "response",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode(), msg),
		}
	}

	if err := checkAnalysis(result); err != nil {
		return domain.RemoteAnalysis{}, &domain.RemoteError{Op: "decode", Err: err}
	}
	return result, nil
}

// checkAnalysis rejects replies missing the fields the report depends on.
func checkAnalysis(r domain.RemoteAnalysis) error {
	if strings.TrimSpace(r.Sentiment) == "" {
		return errors.New("missing sentiment")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %v out of range", r.Confidence)
	}
	if strings.TrimSpace(r.Topic) == "" {
		return errors.New("missing topic")
	}
	return nil
}
