package domain

import "fmt"

type SynthesisMedium string

const (
	AudioMedium    SynthesisMedium = "audio"
	ImageMedium    SynthesisMedium = "image"
	AnalysisMedium SynthesisMedium = "analysis"
)

// SegmentationError reports a script that could not be split into scenes.
type SegmentationError struct {
	Reason string
}

func (e *SegmentationError) Error() string {
	return "segmentation failed: " + e.Reason
}

// SynthesisError reports an external model failure for one scene. The run
// aborts on the first one; already-generated artifacts stay on disk.
type SynthesisError struct {
	Ordinal int
	Medium  SynthesisMedium
	Err     error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("%s synthesis failed for scene %d: %v", e.Medium, e.Ordinal, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// AssemblyError reports a failure while turning scene assets into the final
// video. Stage is one of render, concat, mix, probe or publish.
type AssemblyError struct {
	Stage string
	Err   error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assembly failed at %s: %v", e.Stage, e.Err)
}

func (e *AssemblyError) Unwrap() error {
	return e.Err
}
