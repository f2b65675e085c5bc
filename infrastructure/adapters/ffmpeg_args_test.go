package adapters

import (
	"context"
	"faceless-video-engine/config"
	"strings"
	"testing"
)

type stubProber struct {
	duration float64
}

func (p *stubProber) Duration(context.Context, string) (float64, error) {
	return p.duration, nil
}

func argIndex(args []string, want string) int {
	for i, arg := range args {
		if arg == want {
			return i
		}
	}
	return -1
}

func TestFFmpegClipRendererBuildRenderArgs(t *testing.T) {
	logger := NewZerologWrapper("error")

	renderer := NewFFmpegClipRenderer(&config.AssemblyConfig{
		FrameRate:  24,
		VideoCodec: "libx264",
	}, &stubProber{}, logger).(*ffmpegClipRenderer)

	args := renderer.buildRenderArgs("scene_0.png", "scene_0.wav", "clip_0.mp4")

	if argIndex(args, "-shortest") == -1 {
		t.Fatal("Clip length must be pinned to the narration with -shortest:", args)
	}
	if argIndex(args, "-tune") == -1 || args[argIndex(args, "-tune")+1] != "stillimage" {
		t.Fatal("Still image tuning missing:", args)
	}

	codecIdx := argIndex(args, "-c:v")
	if codecIdx == -1 || args[codecIdx+1] != "libx264" {
		t.Fatal("Configured codec missing:", args)
	}

	rateIdx := argIndex(args, "-r")
	if rateIdx == -1 || args[rateIdx+1] != "24" {
		t.Fatal("Configured frame rate missing:", args)
	}

	imageIdx := argIndex(args, "scene_0.png")
	audioIdx := argIndex(args, "scene_0.wav")
	if imageIdx == -1 || audioIdx == -1 || imageIdx > audioIdx {
		t.Fatal("Image input must precede the audio input:", args)
	}
	if args[argIndex(args, "-loop")+1] != "1" {
		t.Fatal("Image input must loop:", args)
	}
	if args[len(args)-1] != "clip_0.mp4" {
		t.Fatal("Output file must come last:", args)
	}
}

func TestFFmpegMusicMixerBuildMixArgs(t *testing.T) {
	logger := NewZerologWrapper("error")

	mixer := NewFFmpegMusicMixer(&config.AssemblyConfig{
		MusicVolume: 0.2,
	}, logger).(*ffmpegMusicMixer)

	args := mixer.buildMixArgs("narration.mp4", "ambient.mp3", "mixed.mp4")

	loopIdx := argIndex(args, "-stream_loop")
	musicIdx := argIndex(args, "ambient.mp3")
	if loopIdx == -1 || musicIdx == -1 || loopIdx > musicIdx {
		t.Fatal("-stream_loop must precede the music input so only the music loops:", args)
	}
	if args[loopIdx+1] != "-1" {
		t.Fatal("Music should loop until cut off:", args)
	}

	filterIdx := argIndex(args, "-filter_complex")
	if filterIdx == -1 {
		t.Fatal("Filter graph missing:", args)
	}
	filter := args[filterIdx+1]
	if !strings.Contains(filter, "volume=0.2") {
		t.Fatal("Music volume missing from the filter:", filter)
	}
	if !strings.Contains(filter, "duration=first") {
		t.Fatal("Mix must end with the narration, not the music loop:", filter)
	}

	codecIdx := argIndex(args, "-c:v")
	if codecIdx == -1 || args[codecIdx+1] != "copy" {
		t.Fatal("Video must be stream-copied during the mix:", args)
	}
	if argIndex(args, "-shortest") == -1 {
		t.Fatal("-shortest missing:", args)
	}
}
