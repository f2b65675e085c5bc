package adapters

import (
	"faceless-video-engine/application/ports/outbound"
	"fmt"
	"io"
	"net/http"
)

// ContentFetcher executes a prepared request and hands back the whole body.
// External model calls have no timeout of their own; the request context is
// the only thing that cuts them short.
type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]any{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error(err, "Failed to close the response body")
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]any{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status code", map[string]any{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, fmt.Errorf("HTTP request to %s returned status %d", req.URL.String(), res.StatusCode)
	}

	return payload, nil
}
