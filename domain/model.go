package domain

import "time"

type Scene struct {
	Text    string
	ID      string
	RunID   string
	Ordinal int
}

func NewScene(text string, id string, runID string, ordinal int) Scene {
	return Scene{
		Text:    text,
		ID:      id,
		RunID:   runID,
		Ordinal: ordinal,
	}
}

// SceneAnalysis is the optional enrichment produced for a scene when the
// analyzer is enabled. Keywords feed the image prompt, Title the progress
// events.
type SceneAnalysis struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

type SceneWithAudio struct {
	Scene
	AudioPath string
	Duration  float64
}

type SceneWithAssets struct {
	SceneWithAudio
	ImagePath string
	Analysis  *SceneAnalysis
}

type SceneClip struct {
	Ordinal   int
	VideoPath string
	Duration  float64
}

type SceneClipsAscByOrdinal []SceneClip

func (c SceneClipsAscByOrdinal) Len() int           { return len(c) }
func (c SceneClipsAscByOrdinal) Less(i, j int) bool { return c[i].Ordinal < c[j].Ordinal }
func (c SceneClipsAscByOrdinal) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }

type RunState string

const (
	RunStateIdle         RunState = "idle"
	RunStateSegmenting   RunState = "segmenting"
	RunStateSynthesizing RunState = "synthesizing_scenes"
	RunStateAssembling   RunState = "assembling"
	RunStateDone         RunState = "done"
	RunStateFailed       RunState = "failed"
)

// PipelineRun is the unit of execution: one script in, one video artifact out.
// A run owns its scenes for its whole lifetime; nothing is shared across runs
// and nothing survives a run beyond the files it wrote.
type PipelineRun struct {
	ID           string
	State        RunState
	MusicPath    string
	Layout       RunLayout
	SceneCount   int
	ArtifactPath string
	StartedAt    time.Time
}

type EventKind string

const (
	EventStateChanged  EventKind = "state_changed"
	EventSceneAudio    EventKind = "scene_audio_ready"
	EventSceneImage    EventKind = "scene_image_ready"
	EventSceneClip     EventKind = "scene_clip_ready"
	EventArtifactReady EventKind = "artifact_ready"
	EventRunFailed     EventKind = "run_failed"
)

type RunEvent struct {
	RunID    string    `json:"run_id"`
	Kind     EventKind `json:"kind"`
	State    RunState  `json:"state,omitempty"`
	SceneID  string    `json:"scene_id,omitempty"`
	Ordinal  int       `json:"ordinal,omitempty"`
	Title    string    `json:"title,omitempty"`
	Path     string    `json:"path,omitempty"`
	Duration float64   `json:"duration,omitempty"`
	Message  string    `json:"message,omitempty"`
}

func (s SceneWithAudio) ToEvent() RunEvent {
	return RunEvent{
		RunID:    s.RunID,
		Kind:     EventSceneAudio,
		SceneID:  s.ID,
		Ordinal:  s.Ordinal,
		Path:     s.AudioPath,
		Duration: s.Duration,
	}
}

func (s SceneWithAssets) ToEvent() RunEvent {
	ev := RunEvent{
		RunID:   s.RunID,
		Kind:    EventSceneImage,
		SceneID: s.ID,
		Ordinal: s.Ordinal,
		Path:    s.ImagePath,
	}
	if s.Analysis != nil {
		ev.Title = s.Analysis.Title
	}
	return ev
}
