package config

import (
	"fmt"
	"os"
)

const (
	TTSProviderChatterbox = "chatterbox"
	TTSProviderElevenLabs = "elevenlabs"
	TTSProviderStub       = "stub"

	ImageProviderStableDiffusion = "sd"
	ImageProviderOpenAI          = "openai"
	ImageProviderStub            = "stub"
)

// PipelineConfig is resolved once at startup; the device flag in particular
// is never re-checked mid-run.
type PipelineConfig struct {
	OutputRoot    string
	Workers       int
	Device        string
	TTSProvider   string
	ImageProvider string
	LogLevel      string
}

func GetPipelineConfig() (*PipelineConfig, error) {
	workers, err := getEnvInt("PIPELINE_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("PIPELINE_WORKERS must be at least 1")
	}

	device := getEnv("PIPELINE_DEVICE", "cpu")
	switch device {
	case "cpu", "cuda", "mps":
	default:
		return nil, fmt.Errorf("PIPELINE_DEVICE must be one of cpu, cuda, mps, got %q", device)
	}

	ttsProvider := getEnv("TTS_PROVIDER", TTSProviderChatterbox)
	switch ttsProvider {
	case TTSProviderChatterbox, TTSProviderElevenLabs, TTSProviderStub:
	default:
		return nil, fmt.Errorf("TTS_PROVIDER must be one of chatterbox, elevenlabs, stub, got %q", ttsProvider)
	}

	imageProvider := getEnv("IMAGE_PROVIDER", ImageProviderStableDiffusion)
	switch imageProvider {
	case ImageProviderStableDiffusion, ImageProviderOpenAI, ImageProviderStub:
	default:
		return nil, fmt.Errorf("IMAGE_PROVIDER must be one of sd, openai, stub, got %q", imageProvider)
	}

	outputRoot := os.Getenv("OUTPUT_ROOT")
	if outputRoot == "" {
		outputRoot = "output"
	}

	return &PipelineConfig{
		OutputRoot:    outputRoot,
		Workers:       workers,
		Device:        device,
		TTSProvider:   ttsProvider,
		ImageProvider: imageProvider,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}, nil
}
