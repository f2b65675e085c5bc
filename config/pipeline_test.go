package config

import "testing"

func clearPipelineEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PIPELINE_WORKERS",
		"PIPELINE_DEVICE",
		"TTS_PROVIDER",
		"IMAGE_PROVIDER",
		"OUTPUT_ROOT",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestGetPipelineConfigDefaults(t *testing.T) {
	clearPipelineEnv(t)

	cfg, err := GetPipelineConfig()
	if err != nil {
		t.Fatal("Failed to load pipeline config:", err)
	}

	if cfg.Workers != 4 {
		t.Fatal("Expected 4 workers by default, got:", cfg.Workers)
	}
	if cfg.Device != "cpu" {
		t.Fatal("Expected cpu device by default, got:", cfg.Device)
	}
	if cfg.TTSProvider != TTSProviderChatterbox {
		t.Fatal("Expected chatterbox as the default TTS provider, got:", cfg.TTSProvider)
	}
	if cfg.ImageProvider != ImageProviderStableDiffusion {
		t.Fatal("Expected sd as the default image provider, got:", cfg.ImageProvider)
	}
	if cfg.OutputRoot != "output" {
		t.Fatal("Expected output as the default root, got:", cfg.OutputRoot)
	}
}

func TestGetPipelineConfigRejectsBadDevice(t *testing.T) {
	clearPipelineEnv(t)
	t.Setenv("PIPELINE_DEVICE", "tpu")

	if _, err := GetPipelineConfig(); err == nil {
		t.Fatal("Expected an error for an unknown device")
	}
}

func TestGetPipelineConfigRejectsBadProviders(t *testing.T) {
	clearPipelineEnv(t)
	t.Setenv("TTS_PROVIDER", "festival")

	if _, err := GetPipelineConfig(); err == nil {
		t.Fatal("Expected an error for an unknown TTS provider")
	}

	clearPipelineEnv(t)
	t.Setenv("IMAGE_PROVIDER", "crayon")

	if _, err := GetPipelineConfig(); err == nil {
		t.Fatal("Expected an error for an unknown image provider")
	}
}

func TestGetPipelineConfigRejectsZeroWorkers(t *testing.T) {
	clearPipelineEnv(t)
	t.Setenv("PIPELINE_WORKERS", "0")

	if _, err := GetPipelineConfig(); err == nil {
		t.Fatal("Expected an error for zero workers")
	}
}
