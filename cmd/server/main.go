package main

import (
	"faceless-video-engine/application/ports/outbound"
	"faceless-video-engine/application/services"
	"faceless-video-engine/config"
	"faceless-video-engine/infrastructure/adapters"
	"faceless-video-engine/infrastructure/gin_interface/controllers"
	mockgenerator "faceless-video-engine/mock"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"os"
)

const systemPoolSize = 120

func main() {
	_ = godotenv.Load()

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

	videoController := controllers.NewVideoPipelineController(zeroLogger, workerPool, pipeline, pipelineConfig.OutputRoot)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	videoController.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = router.Run(":" + port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
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
