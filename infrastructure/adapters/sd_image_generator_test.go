package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/config"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSDImageGenerator_Generate(t *testing.T) {
	wantImage := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	var gotPath string
	var received Txt2ImgRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Error("Failed to decode request body:", err)
		}
		res := Txt2ImgResponse{Images: []string{base64.StdEncoding.EncodeToString(wantImage)}}
		if err := json.NewEncoder(w).Encode(res); err != nil {
			t.Error("Failed to encode response:", err)
		}
	}))
	defer server.Close()

	logger := NewZerologWrapper("error")

	generator := NewSDImageGenerator(NewContentFetcher(logger), &config.StableDiffusionConfig{
		ApiUrl:         server.URL,
		Steps:          25,
		GuidanceScale:  7.5,
		NegativePrompt: "blurry, text",
		StylePrefix:    "Cinematic illustration: ",
		StyleSuffix:    ", concept art",
		Width:          512,
		Height:         512,
	}, logger)

	image, err := generator.Generate(context.Background(), outbound.GenerateImageRequest{
		Prompt:   "A lighthouse in a storm",
		Keywords: []string{"storm", "night"},
	})
	if err != nil {
		t.Fatal("Failed to generate image:", err)
	}

	if !bytes.Equal(image, wantImage) {
		t.Fatal("Image bytes should round-trip through base64")
	}
	if gotPath != "/sdapi/v1/txt2img" {
		t.Fatal("Unexpected endpoint path:", gotPath)
	}

	if received.Steps != 25 || received.CfgScale != 7.5 {
		t.Fatal("Sampler settings mismatch:", received.Steps, received.CfgScale)
	}
	if received.NegativePrompt != "blurry, text" {
		t.Fatal("Negative prompt mismatch:", received.NegativePrompt)
	}
	if received.Width != 512 || received.Height != 512 {
		t.Fatal("Image size mismatch:", received.Width, received.Height)
	}

	if !strings.HasPrefix(received.Prompt, "Cinematic illustration: A lighthouse in a storm, concept art") {
		t.Fatal("Prompt should wrap the scene text in the style, got:", received.Prompt)
	}
	if !strings.Contains(received.Prompt, "storm, night") {
		t.Fatal("Keywords should extend the prompt, got:", received.Prompt)
	}
	if received.OverrideSettings != nil {
		t.Fatal("No checkpoint override expected without a model, got:", received.OverrideSettings)
	}
}

func TestSDImageGenerator_GenerateSelectsCheckpoint(t *testing.T) {
	var received Txt2ImgRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Error("Failed to decode request body:", err)
		}
		res := Txt2ImgResponse{Images: []string{base64.StdEncoding.EncodeToString([]byte("img"))}}
		if err := json.NewEncoder(w).Encode(res); err != nil {
			t.Error("Failed to encode response:", err)
		}
	}))
	defer server.Close()

	logger := NewZerologWrapper("error")

	generator := NewSDImageGenerator(NewContentFetcher(logger), &config.StableDiffusionConfig{
		ApiUrl: server.URL,
		Model:  "dreamshaper_8.safetensors",
	}, logger)

	if _, err := generator.Generate(context.Background(), outbound.GenerateImageRequest{Prompt: "anything"}); err != nil {
		t.Fatal("Failed to generate image:", err)
	}

	if received.OverrideSettings["sd_model_checkpoint"] != "dreamshaper_8.safetensors" {
		t.Fatal("Checkpoint override missing:", received.OverrideSettings)
	}
}

func TestSDImageGenerator_GenerateNoImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(Txt2ImgResponse{}); err != nil {
			t.Error("Failed to encode response:", err)
		}
	}))
	defer server.Close()

	logger := NewZerologWrapper("error")

	generator := NewSDImageGenerator(NewContentFetcher(logger), &config.StableDiffusionConfig{ApiUrl: server.URL}, logger)

	if _, err := generator.Generate(context.Background(), outbound.GenerateImageRequest{Prompt: "anything"}); err == nil {
		t.Fatal("Expected an error when the server returns no images")
	}
}
