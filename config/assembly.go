package config

import "fmt"

type AssemblyConfig struct {
	FrameRate   int
	VideoCodec  string
	MusicVolume float64
}

func GetAssemblyConfig() (*AssemblyConfig, error) {
	frameRate, err := getEnvInt("VIDEO_FRAME_RATE", 24)
	if err != nil {
		return nil, err
	}
	if frameRate < 1 {
		return nil, fmt.Errorf("VIDEO_FRAME_RATE must be positive")
	}
	musicVolume, err := getEnvFloat("MUSIC_VOLUME", 0.2)
	if err != nil {
		return nil, err
	}
	if musicVolume < 0 || musicVolume > 1 {
		return nil, fmt.Errorf("MUSIC_VOLUME must be between 0 and 1")
	}

	return &AssemblyConfig{
		FrameRate:   frameRate,
		VideoCodec:  getEnv("VIDEO_CODEC", "libx264"),
		MusicVolume: musicVolume,
	}, nil
}
