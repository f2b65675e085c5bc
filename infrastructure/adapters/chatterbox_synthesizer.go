package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"net/http"
)

type ChatterboxRequest struct {
	Text         string  `json:"text"`
	Exaggeration float64 `json:"exaggeration"`
	CfgWeight    float64 `json:"cfg_weight"`
	Device       string  `json:"device"`
}

type chatterboxSynthesizer struct {
	ContentFetcher
	logger           outbound.LoggerPort
	chatterboxConfig *config.ChatterboxConfig
}

// NewChatterboxSynthesizer talks to a local Chatterbox-TTS server. The
// device flag rides along on every request so the server runs on the
// accelerator chosen at startup.
func NewChatterboxSynthesizer(contentFetcher ContentFetcher, chatterboxConfig *config.ChatterboxConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &chatterboxSynthesizer{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		chatterboxConfig: chatterboxConfig,
	}
}

func (s *chatterboxSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*outbound.SynthesizeSpeechResponse, error) {
	httpReq, err := s.getRequest(ctx, req.Text)
	if err != nil {
		s.logger.Error(err, "Failed to construct the Chatterbox request")
		return nil, err
	}

	audio, err := s.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	return &outbound.SynthesizeSpeechResponse{
		Audio:  audio,
		Format: "wav",
	}, nil
}

func (s *chatterboxSynthesizer) getRequest(ctx context.Context, text string) (*http.Request, error) {
	reqBody := ChatterboxRequest{
		Text:         text,
		Exaggeration: s.chatterboxConfig.Exaggeration,
		CfgWeight:    s.chatterboxConfig.CfgWeight,
		Device:       s.chatterboxConfig.Device,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.chatterboxConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/wav")

	return req, nil
}
