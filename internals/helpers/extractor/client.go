// file: internals/helpers/extractor/client.go
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"currimon_backend/internals/configs"
)

/* =======================================================================
   Structure-extraction service client (external, untrusted)

   The service receives the staged document path plus curriculum metadata
   and either persists the extracted structure itself or reports an error.
   Calls carry a timeout and a small bounded retry; the caller owns staged
   file cleanup.
======================================================================= */

// Request mirrors the extraction service's add-curriculum contract.
type Request struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	EducationType string `json:"education_type"`
	LevelType     string `json:"level_type"`
	SectionType   string `json:"section_type"`
	ClassType     string `json:"class_type"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	IssuedOn      string `json:"issued_on"`
	Document      string `json:"document"`
	DocumentPath  string `json:"document_path"`
}

// Result relays the downstream status and body verbatim.
type Result struct {
	StatusCode int
	Type       string `json:"type"`
	Message    string `json:"message"`
}

type Client interface {
	AddCurriculum(ctx context.Context, req Request) (*Result, error)
}

type HTTPClient struct {
	baseURL string
	retries int
	httpc   *http.Client
}

func NewHTTPClient(cfg *configs.Config) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.ExtractorBaseURL,
		retries: cfg.ExtractorRetries,
		httpc:   &http.Client{Timeout: cfg.ExtractorTimeout},
	}
}

func (c *HTTPClient) AddCurriculum(ctx context.Context, req Request) (*Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
			log.Printf("[WARN] extractor retry %d/%d", attempt, c.retries)
		}

		res, err := c.post(ctx, payload)
		if err != nil {
			lastErr = err
			continue
		}
		// 5xx from the extractor is retryable; anything else is final.
		if res.StatusCode >= 500 {
			lastErr = fmt.Errorf("extractor returned %d", res.StatusCode)
			continue
		}
		return res, nil
	}
	return nil, fmt.Errorf("extractor unreachable after %d attempts: %w", c.retries+1, lastErr)
}

func (c *HTTPClient) post(ctx context.Context, payload []byte) (*Result, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/add-curriculum", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	out := &Result{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, out); err != nil {
		// Untrusted service; relay a generic shape when the body is not JSON.
		out.Type = "error"
		out.Message = "invalid response from extraction service"
	}
	return out, nil
}
