package config

import "testing"

func TestGetAssemblyConfigDefaults(t *testing.T) {
	t.Setenv("VIDEO_FRAME_RATE", "")
	t.Setenv("VIDEO_CODEC", "")
	t.Setenv("MUSIC_VOLUME", "")

	cfg, err := GetAssemblyConfig()
	if err != nil {
		t.Fatal("Failed to load assembly config:", err)
	}

	if cfg.FrameRate != 24 {
		t.Fatal("Expected 24 fps by default, got:", cfg.FrameRate)
	}
	if cfg.VideoCodec != "libx264" {
		t.Fatal("Expected libx264 by default, got:", cfg.VideoCodec)
	}
	if cfg.MusicVolume != 0.2 {
		t.Fatal("Expected 0.2 music volume by default, got:", cfg.MusicVolume)
	}
}

func TestGetAssemblyConfigRejectsVolumeOutOfRange(t *testing.T) {
	t.Setenv("VIDEO_FRAME_RATE", "")
	t.Setenv("VIDEO_CODEC", "")
	t.Setenv("MUSIC_VOLUME", "1.5")

	if _, err := GetAssemblyConfig(); err == nil {
		t.Fatal("Expected an error for music volume above 1")
	}
}

func TestGeminiConfigEnabled(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if GetGeminiConfig().Enabled() {
		t.Fatal("Analyzer should stay disabled without an API key")
	}

	t.Setenv("GEMINI_API_KEY", "test-key")
	if !GetGeminiConfig().Enabled() {
		t.Fatal("Analyzer should be enabled once a key is set")
	}
}
