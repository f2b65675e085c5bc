package config

import (
	"fmt"
	"os"
)

type OpenAIImageConfig struct {
	ApiUrl            string
	ApiKey            string
	Model             string
	Size              string
	StylePrefix       string
	StyleSuffix       string
	RequestsPerSecond float64
}

func GetOpenAIImageConfig() (*OpenAIImageConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	requestsPerSecond, err := getEnvFloat("OPENAI_IMAGE_REQUESTS_PER_SECOND", 1)
	if err != nil {
		return nil, err
	}

	return &OpenAIImageConfig{
		ApiUrl:            getEnv("OPENAI_IMAGE_API_URL", "https://api.openai.com/v1/images/generations"),
		ApiKey:            apiKey,
		Model:             getEnv("OPENAI_IMAGE_MODEL", "dall-e-2"),
		Size:              getEnv("OPENAI_IMAGE_SIZE", "1024x1024"),
		StylePrefix:       getEnv("OPENAI_IMAGE_STYLE_PREFIX", "High-quality, cinematic, detailed illustration: "),
		StyleSuffix:       getEnv("OPENAI_IMAGE_STYLE_SUFFIX", ", concept art, digital painting"),
		RequestsPerSecond: requestsPerSecond,
	}, nil
}
