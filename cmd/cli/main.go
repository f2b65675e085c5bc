package main

import (
	"context"
	"errors"
	"faceless-video-engine/application/ports/inbound"
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/application/services"
	"faceless-video-engine/config"
	"faceless-video-engine/domain"
	"faceless-video-engine/infrastructure/adapters"
	mockgenerator "faceless-video-engine/mock"
	"fmt"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const systemPoolSize = 120

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: facelessvideo <script-file|-> [music-file]")
		os.Exit(2)
	}

	script, err := readScript(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read script")
	}

	musicPath := ""
	if len(os.Args) > 2 {
		musicPath = os.Args[2]
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	assemblyConfig, err := config.GetAssemblyConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get assembly config")
	}

	zeroLogger := adapters.NewZerologWrapper(pipelineConfig.LogLevel)

	if err := adapters.CheckMediaTools(); err != nil {
		log.Fatal().Err(err).Msg("ffmpeg and ffprobe must be on PATH")
	}

	panicHandler := func(p any) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(systemPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	scenePool, err := ants.NewPool(pipelineConfig.Workers, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scene worker pool")
	}
	defer scenePool.Release()

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	synthesizer, err := newSynthesizer(pipelineConfig.TTSProvider, contentFetcher, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build speech synthesizer")
	}

	imageGenerator, err := newImageGenerator(pipelineConfig.ImageProvider, contentFetcher, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build image generator")
	}

	var analyzer outbound.SceneAnalyzerPort
	geminiConfig := config.GetGeminiConfig()
	if geminiConfig.Enabled() {
		analyzer = adapters.NewGeminiSceneAnalyzer(geminiConfig, zeroLogger)
	}

	prober := adapters.NewFFprobeMediaProber(zeroLogger)
	mediaStore := adapters.NewFsSceneMediaStore(zeroLogger)
	clipRenderer := adapters.NewFFmpegClipRenderer(assemblyConfig, prober, zeroLogger)
	concatenator := adapters.NewFFmpegClipConcatenator(zeroLogger)
	musicMixer := adapters.NewFFmpegMusicMixer(assemblyConfig, zeroLogger)
	publisher := adapters.NewFsArtifactPublisher(zeroLogger)

	segmenter := services.NewSceneSegmenter(zeroLogger)
	voiceoverGenerator := services.NewSceneVoiceoverGenerator(zeroLogger, synthesizer, mediaStore, prober, workerPool, scenePool)
	visualGenerator := services.NewSceneVisualGenerator(zeroLogger, imageGenerator, analyzer, mediaStore, workerPool, scenePool)
	clipGenerator := services.NewSceneClipGenerator(zeroLogger, clipRenderer, workerPool, scenePool)

	pipeline := services.NewVideoPipeline(zeroLogger, workerPool, segmenter, voiceoverGenerator,
		visualGenerator, clipGenerator, mediaStore, concatenator, musicMixer, publisher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan domain.RunEvent, 16)
	printerDone := make(chan struct{})
	err = workerPool.Submit(func() {
		defer close(printerDone)
		for event := range events {
			printEvent(event)
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start event printer")
	}

	run, err := pipeline.Run(ctx, inbound.RunPipelineParams{
		RunID:     uuid.NewString(),
		Script:    script,
		MusicPath: musicPath,
		Layout:    domain.NewRunLayout(pipelineConfig.OutputRoot),
	}, events)
	close(events)
	<-printerDone
	if err != nil {
		exitWithError(err)
	}

	fmt.Println(run.ArtifactPath)
}

func readScript(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newSynthesizer(provider string, contentFetcher adapters.ContentFetcher, logger outbound.LoggerPort) (outbound.SpeechSynthesizerPort, error) {
	switch provider {
	case config.TTSProviderChatterbox:
		chatterboxConfig, err := config.GetChatterboxConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewChatterboxSynthesizer(contentFetcher, chatterboxConfig, logger), nil
	case config.TTSProviderElevenLabs:
		elevenLabsConfig, err := config.GetElevenLabsConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewElevenLabsSynthesizer(contentFetcher, elevenLabsConfig, logger), nil
	case config.TTSProviderStub:
		return mockgenerator.NewStubSynthesizer(logger), nil
	}
	return nil, fmt.Errorf("unknown TTS provider %q", provider)
}

func newImageGenerator(provider string, contentFetcher adapters.ContentFetcher, logger outbound.LoggerPort) (outbound.ImageGeneratorPort, error) {
	switch provider {
	case config.ImageProviderStableDiffusion:
		sdConfig, err := config.GetStableDiffusionConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewSDImageGenerator(contentFetcher, sdConfig, logger), nil
	case config.ImageProviderOpenAI:
		openAIConfig, err := config.GetOpenAIImageConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewOpenAIImageGenerator(contentFetcher, openAIConfig, logger), nil
	case config.ImageProviderStub:
		return mockgenerator.NewStubImageGenerator(logger), nil
	}
	return nil, fmt.Errorf("unknown image provider %q", provider)
}

func printEvent(event domain.RunEvent) {
	switch event.Kind {
	case domain.EventStateChanged:
		fmt.Fprintf(os.Stderr, "state: %s\n", event.State)
	case domain.EventSceneAudio:
		fmt.Fprintf(os.Stderr, "scene %d: narration ready (%.2fs)\n", event.Ordinal, event.Duration)
	case domain.EventSceneImage:
		fmt.Fprintf(os.Stderr, "scene %d: image ready\n", event.Ordinal)
	case domain.EventSceneClip:
		fmt.Fprintf(os.Stderr, "scene %d: clip ready\n", event.Ordinal)
	case domain.EventArtifactReady:
		fmt.Fprintf(os.Stderr, "artifact: %s\n", event.Path)
	case domain.EventRunFailed:
		fmt.Fprintf(os.Stderr, "run failed: %s\n", event.Message)
	}
}

func exitWithError(err error) {
	var segmentationErr *domain.SegmentationError
	var synthesisErr *domain.SynthesisError
	var assemblyErr *domain.AssemblyError
	switch {
	case errors.As(err, &segmentationErr):
		fmt.Fprintln(os.Stderr, "segmentation failed:", segmentationErr.Reason)
	case errors.As(err, &synthesisErr):
		fmt.Fprintf(os.Stderr, "scene %d %s synthesis failed: %v\n", synthesisErr.Ordinal, synthesisErr.Medium, synthesisErr.Err)
	case errors.As(err, &assemblyErr):
		fmt.Fprintf(os.Stderr, "assembly failed at %s stage: %v\n", assemblyErr.Stage, assemblyErr.Err)
	default:
		fmt.Fprintln(os.Stderr, "pipeline failed:", err)
	}
	os.Exit(1)
}
