package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"golang.org/x/time/rate"
	"net/http"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSynthesizer struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
	limiter          *rate.Limiter
}

// NewElevenLabsSynthesizer wraps the hosted ElevenLabs API. Requests go
// through a token bucket so bursts of scenes stay under the account's rate
// limit.
func NewElevenLabsSynthesizer(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
		limiter:          rate.NewLimiter(rate.Limit(elevenLabsConfig.RequestsPerSecond), 1),
	}
}

func (s *elevenLabsSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*outbound.SynthesizeSpeechResponse, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = s.elevenLabsConfig.VoiceID
	}

	httpReq, err := s.getRequest(ctx, req.Text, voiceID)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to construct the ElevenLabs request", map[string]any{
			"voice_id": voiceID,
		})
		return nil, err
	}

	audio, err := s.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	return &outbound.SynthesizeSpeechResponse{
		Audio:  audio,
		Format: "mp3",
	}, nil
}

func (s *elevenLabsSynthesizer) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: s.elevenLabsConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       s.elevenLabsConfig.Stability,
			SimilarityBoost: s.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.elevenLabsConfig.ApiUrl+"/"+voiceID, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       "audio/mpeg",
		"xi-api-key":   s.elevenLabsConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
