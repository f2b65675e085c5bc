package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"fmt"
	"golang.org/x/time/rate"
	"net/http"
	"strings"
)

type OpenAIImageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Size           string `json:"size"`
	Number         int    `json:"n"`
	ResponseFormat string `json:"response_format"`
}

type OpenAIImageResponse struct {
	Data []struct {
		B64Json string `json:"b64_json"`
	} `json:"data"`
}

type openAIImageGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	openAIConfig *config.OpenAIImageConfig
	limiter      *rate.Limiter
}

func NewOpenAIImageGenerator(contentFetcher ContentFetcher, openAIConfig *config.OpenAIImageConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &openAIImageGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		openAIConfig:   openAIConfig,
		limiter:        rate.NewLimiter(rate.Limit(openAIConfig.RequestsPerSecond), 1),
	}
}

func (g *openAIImageGenerator) Generate(ctx context.Context, req outbound.GenerateImageRequest) ([]byte, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	httpReq, err := g.getRequest(ctx, req)
	if err != nil {
		g.logger.Error(err, "Failed to construct the image generation request")
		return nil, err
	}

	rawRes, err := g.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	var imageRes OpenAIImageResponse
	if err := json.Unmarshal(rawRes, &imageRes); err != nil {
		g.logger.Error(err, "Failed to unmarshal the image generation response")
		return nil, err
	}
	if len(imageRes.Data) == 0 {
		return nil, fmt.Errorf("image generation returned no data")
	}

	decodedImage, err := base64.StdEncoding.DecodeString(imageRes.Data[0].B64Json)
	if err != nil {
		g.logger.Error(err, "Failed to decode the generated image")
		return nil, err
	}

	return decodedImage, nil
}

func (g *openAIImageGenerator) getRequest(ctx context.Context, req outbound.GenerateImageRequest) (*http.Request, error) {
	prompt := g.openAIConfig.StylePrefix + req.Prompt + g.openAIConfig.StyleSuffix
	if len(req.Keywords) > 0 {
		prompt += ", " + strings.Join(req.Keywords, ", ")
	}

	reqBody := OpenAIImageRequest{
		Model:          g.openAIConfig.Model,
		Prompt:         prompt,
		Size:           g.openAIConfig.Size,
		Number:         1,
		ResponseFormat: "b64_json",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.openAIConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"Authorization": "Bearer " + g.openAIConfig.ApiKey,
		"Content-Type":  "application/json",
	}
	for key, value := range reqHeaders {
		httpReq.Header.Add(key, value)
	}

	return httpReq, nil
}
