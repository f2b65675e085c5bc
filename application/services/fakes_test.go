package services

import (
	"context"
	"errors"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/domain"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

type fakeSynthesizer struct {
	failOn string
	mu     sync.Mutex
	sent   []string
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) (*outbound.SynthesizeSpeechResponse, error) {
	f.mu.Lock()
	f.sent = append(f.sent, req.Text)
	f.mu.Unlock()

	if f.failOn != "" && strings.Contains(req.Text, f.failOn) {
		return nil, errors.New("synthesizer rejected the text")
	}
	return &outbound.SynthesizeSpeechResponse{Audio: []byte("RIFF....WAVE"), Format: "wav"}, nil
}

func (f *fakeSynthesizer) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

type fakeMediaStore struct{}

func (f *fakeMediaStore) EnsureLayout(domain.RunLayout) error { return nil }

func (f *fakeMediaStore) SaveAudio(_ context.Context, dir string, scene domain.Scene, _ []byte, format string) (string, error) {
	return filepath.Join(dir, fmt.Sprintf("scene_%d.%s", scene.Ordinal, format)), nil
}

func (f *fakeMediaStore) SaveImage(_ context.Context, dir string, scene domain.Scene, _ []byte) (string, error) {
	return filepath.Join(dir, fmt.Sprintf("scene_%d.png", scene.Ordinal)), nil
}

type fakeProber struct {
	duration float64
	err      error
}

func (f *fakeProber) Duration(context.Context, string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.duration, nil
}

type fakeImageGenerator struct {
	failOn string
	mu     sync.Mutex
	sent   []outbound.GenerateImageRequest
}

func (f *fakeImageGenerator) Generate(_ context.Context, req outbound.GenerateImageRequest) ([]byte, error) {
	f.mu.Lock()
	f.sent = append(f.sent, req)
	f.mu.Unlock()

	if f.failOn != "" && strings.Contains(req.Prompt, f.failOn) {
		return nil, errors.New("image model unavailable")
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (f *fakeImageGenerator) requests() []outbound.GenerateImageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]outbound.GenerateImageRequest(nil), f.sent...)
}

type fakeAnalyzer struct {
	err error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, scene domain.Scene) (*domain.SceneAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SceneAnalysis{
		Title:    fmt.Sprintf("Scene %d", scene.Ordinal),
		Summary:  "One sentence about the scene.",
		Keywords: []string{"storm", "lighthouse"},
	}, nil
}

type fakeRenderer struct {
	failOrdinal int
}

func (f *fakeRenderer) Render(_ context.Context, scene domain.SceneWithAssets, tempDir string) (*outbound.RenderClipResponse, error) {
	if scene.Ordinal == f.failOrdinal {
		return nil, errors.New("renderer crashed")
	}
	return &outbound.RenderClipResponse{
		VideoPath: filepath.Join(tempDir, fmt.Sprintf("clip_%d.mp4", scene.Ordinal)),
		Duration:  scene.Duration,
	}, nil
}

type fakeConcatenator struct {
	err   error
	calls int
	clips []domain.SceneClip
}

func (f *fakeConcatenator) Concatenate(_ context.Context, clips []domain.SceneClip, tempDir string) (string, error) {
	f.calls++
	f.clips = append([]domain.SceneClip(nil), clips...)
	if f.err != nil {
		return "", f.err
	}
	return filepath.Join(tempDir, "narration.mp4"), nil
}

type fakeMusicMixer struct {
	err   error
	calls int
}

func (f *fakeMusicMixer) Mix(_ context.Context, _ string, _ string, tempDir string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return filepath.Join(tempDir, "mixed.mp4"), nil
}

type fakePublisher struct {
	err       error
	published string
}

func (f *fakePublisher) Publish(_ context.Context, videoPath string, finalDir string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.published = videoPath
	return filepath.Join(finalDir, "faceless_video_20240101000000.mp4"), nil
}
