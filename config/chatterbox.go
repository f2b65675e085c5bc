package config

// ChatterboxConfig drives the local Chatterbox-TTS server adapter. Device is
// the capability flag from PIPELINE_DEVICE, forwarded with every request so
// the server picks accelerated or plain execution once per run.
type ChatterboxConfig struct {
	ApiUrl       string
	Exaggeration float64
	CfgWeight    float64
	Device       string
}

func GetChatterboxConfig() (*ChatterboxConfig, error) {
	exaggeration, err := getEnvFloat("CHATTERBOX_EXAGGERATION", 0.5)
	if err != nil {
		return nil, err
	}
	cfgWeight, err := getEnvFloat("CHATTERBOX_CFG_WEIGHT", 0.5)
	if err != nil {
		return nil, err
	}

	return &ChatterboxConfig{
		ApiUrl:       getEnv("CHATTERBOX_API_URL", "http://127.0.0.1:8123/synthesize"),
		Exaggeration: exaggeration,
		CfgWeight:    cfgWeight,
		Device:       getEnv("PIPELINE_DEVICE", "cpu"),
	}, nil
}
