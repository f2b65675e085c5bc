package config

// GeminiConfig controls the optional scene analyzer. An empty API key leaves
// analysis disabled; the loader never fails on it.
type GeminiConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetGeminiConfig() *GeminiConfig {
	return &GeminiConfig{
		ApiUrl: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
		ApiKey: getEnv("GEMINI_API_KEY", ""),
		Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

func (c *GeminiConfig) Enabled() bool {
	return c.ApiKey != ""
}
