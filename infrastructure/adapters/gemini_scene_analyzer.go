package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"faceless-video-engine/domain"
	"fmt"
	"github.com/donovanhide/eventsource"
	"io"
	"net/http"
	"strings"
)

const MaxRetries = 3

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type geminiChunkBody struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiSceneAnalyzer struct {
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
}

// NewGeminiSceneAnalyzer streams a structured scene analysis (title, summary,
// visual keywords) from Gemini over SSE and assembles the chunks into one
// JSON object.
func NewGeminiSceneAnalyzer(geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.SceneAnalyzerPort {
	return &geminiSceneAnalyzer{
		logger:       logger,
		geminiConfig: geminiConfig,
	}
}

func (g *geminiSceneAnalyzer) Analyze(ctx context.Context, scene domain.Scene) (*domain.SceneAnalysis, error) {
	req, err := g.createRequest(ctx, scene.Text)
	if err != nil {
		g.logger.Error(err, "Failed to create the scene analysis request")
		return nil, err
	}

	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		g.logger.Error(err, "Failed to subscribe to the analysis stream")
		return nil, err
	}
	defer stream.Close()

	var builder strings.Builder
	retryCount := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev := <-stream.Events:
			payload, err := g.extractPayload(ev)
			if err != nil {
				return nil, err
			}
			builder.WriteString(payload)
			retryCount = 0
		case err := <-stream.Errors:
			if err == io.EOF {
				return g.parseAnalysis(scene, builder.String())
			}
			if retryCount < MaxRetries {
				g.logger.ErrorWithFields(err, "Error occurred during analysis streaming, retrying", map[string]any{
					"retry_count": retryCount,
					"ordinal":     scene.Ordinal,
				})
				retryCount++
				continue
			}
			g.logger.Error(err, "Error occurred during analysis streaming, max retries reached")
			return nil, err
		}
	}
}

func (g *geminiSceneAnalyzer) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody geminiChunkBody
	if err := json.Unmarshal([]byte(event.Data()), &chunkBody); err != nil {
		g.logger.Error(err, "Failed to unmarshal analysis event data")
		return "", err
	}
	if len(chunkBody.Candidates) == 0 {
		return "", nil
	}

	var builder strings.Builder
	for _, part := range chunkBody.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}
	return builder.String(), nil
}

func (g *geminiSceneAnalyzer) parseAnalysis(scene domain.Scene, raw string) (*domain.SceneAnalysis, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil, fmt.Errorf("analysis stream for scene %d produced no content", scene.Ordinal)
	}

	var analysis domain.SceneAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		g.logger.ErrorWithFields(err, "Failed to parse the accumulated analysis", map[string]any{
			"ordinal": scene.Ordinal,
		})
		return nil, err
	}

	return &analysis, nil
}

func (g *geminiSceneAnalyzer) createRequest(ctx context.Context, sceneText string) (*http.Request, error) {
	prompt := fmt.Sprintf("Analyze this scene from a video script. "+
		"Respond with a JSON object with exactly these keys:\n"+
		"- title: a short scene title (at most five words)\n"+
		"- summary: a one-sentence summary\n"+
		"- keywords: three to five visual keywords for illustrating the scene\n"+
		"Scene text: %s", sceneText)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
		},
	}

	payloadBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s",
		g.geminiConfig.ApiUrl, g.geminiConfig.Model, g.geminiConfig.ApiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
