package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"fmt"
	"net/http"
	"strings"
)

type Txt2ImgRequest struct {
	Prompt           string            `json:"prompt"`
	NegativePrompt   string            `json:"negative_prompt"`
	Steps            int               `json:"steps"`
	CfgScale         float64           `json:"cfg_scale"`
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	OverrideSettings map[string]string `json:"override_settings,omitempty"`
}

type Txt2ImgResponse struct {
	Images []string `json:"images"`
}

type sdImageGenerator struct {
	ContentFetcher
	logger   outbound.LoggerPort
	sdConfig *config.StableDiffusionConfig
}

// NewSDImageGenerator targets a Stable Diffusion WebUI compatible txt2img
// endpoint. Steps, guidance scale and the negative prompt come straight from
// config; the scene text is wrapped in the configured style prefix/suffix.
func NewSDImageGenerator(contentFetcher ContentFetcher, sdConfig *config.StableDiffusionConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &sdImageGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		sdConfig:       sdConfig,
	}
}

func (g *sdImageGenerator) Generate(ctx context.Context, req outbound.GenerateImageRequest) ([]byte, error) {
	httpReq, err := g.getRequest(ctx, req)
	if err != nil {
		g.logger.Error(err, "Failed to construct the txt2img request")
		return nil, err
	}

	rawRes, err := g.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	var txt2imgRes Txt2ImgResponse
	if err := json.Unmarshal(rawRes, &txt2imgRes); err != nil {
		g.logger.Error(err, "Failed to unmarshal the txt2img response")
		return nil, err
	}
	if len(txt2imgRes.Images) == 0 {
		return nil, fmt.Errorf("txt2img returned no images")
	}

	decodedImage, err := base64.StdEncoding.DecodeString(txt2imgRes.Images[0])
	if err != nil {
		g.logger.Error(err, "Failed to decode the generated image")
		return nil, err
	}

	return decodedImage, nil
}

func (g *sdImageGenerator) getRequest(ctx context.Context, req outbound.GenerateImageRequest) (*http.Request, error) {
	reqBody := Txt2ImgRequest{
		Prompt:         g.buildPrompt(req),
		NegativePrompt: g.sdConfig.NegativePrompt,
		Steps:          g.sdConfig.Steps,
		CfgScale:       g.sdConfig.GuidanceScale,
		Width:          g.sdConfig.Width,
		Height:         g.sdConfig.Height,
	}
	if g.sdConfig.Model != "" {
		reqBody.OverrideSettings = map[string]string{"sd_model_checkpoint": g.sdConfig.Model}
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.sdConfig.ApiUrl+"/sdapi/v1/txt2img", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}

func (g *sdImageGenerator) buildPrompt(req outbound.GenerateImageRequest) string {
	prompt := g.sdConfig.StylePrefix + req.Prompt + g.sdConfig.StyleSuffix
	if len(req.Keywords) > 0 {
		prompt += ", " + strings.Join(req.Keywords, ", ")
	}
	return prompt
}
