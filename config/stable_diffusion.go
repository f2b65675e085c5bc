package config

// StableDiffusionConfig targets any WebUI-compatible txt2img server. Steps,
// guidance scale and the negative prompt are handed to the model unchanged;
// the style prefix/suffix decorate the scene text into a full prompt.
type StableDiffusionConfig struct {
	ApiUrl         string
	Model          string
	Steps          int
	GuidanceScale  float64
	NegativePrompt string
	StylePrefix    string
	StyleSuffix    string
	Width          int
	Height         int
}

func GetStableDiffusionConfig() (*StableDiffusionConfig, error) {
	steps, err := getEnvInt("SD_STEPS", 30)
	if err != nil {
		return nil, err
	}
	guidanceScale, err := getEnvFloat("SD_GUIDANCE_SCALE", 7.5)
	if err != nil {
		return nil, err
	}
	width, err := getEnvInt("SD_WIDTH", 512)
	if err != nil {
		return nil, err
	}
	height, err := getEnvInt("SD_HEIGHT", 512)
	if err != nil {
		return nil, err
	}

	return &StableDiffusionConfig{
		ApiUrl:         getEnv("SD_API_URL", "http://127.0.0.1:7860"),
		Model:          getEnv("SD_MODEL", ""),
		Steps:          steps,
		GuidanceScale:  guidanceScale,
		NegativePrompt: getEnv("SD_NEGATIVE_PROMPT", "blurry, low quality, distorted, text, watermark"),
		StylePrefix:    getEnv("SD_STYLE_PREFIX", "High-quality, cinematic, detailed illustration: "),
		StyleSuffix:    getEnv("SD_STYLE_SUFFIX", ", concept art, digital painting"),
		Width:          width,
		Height:         height,
	}, nil
}
