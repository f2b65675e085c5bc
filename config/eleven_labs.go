package config

import (
	"fmt"
	"os"
)

type ElevenLabsConfig struct {
	ApiUrl            string
	ApiKey            string
	ModelId           string
	VoiceID           string
	Stability         float64
	SimilarityBoost   float64
	RequestsPerSecond float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	stability, err := getEnvFloat("ELEVEN_LABS_STABILITY", 0.5)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := getEnvFloat("ELEVEN_LABS_SIMILARITY_BOOST", 0.75)
	if err != nil {
		return nil, err
	}
	requestsPerSecond, err := getEnvFloat("ELEVEN_LABS_REQUESTS_PER_SECOND", 2)
	if err != nil {
		return nil, err
	}

	return &ElevenLabsConfig{
		ApiUrl:            getEnv("ELEVEN_LABS_API_URL", "https://api.elevenlabs.io/v1/text-to-speech"),
		ApiKey:            apiKey,
		ModelId:           getEnv("ELEVEN_LABS_MODEL_ID", "eleven_monolingual_v1"),
		VoiceID:           getEnv("ELEVEN_LABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		Stability:         stability,
		SimilarityBoost:   similarityBoost,
		RequestsPerSecond: requestsPerSecond,
	}, nil
}
