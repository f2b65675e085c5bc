package services

import (
	"errors"
	"faceless-video-engine/domain"
	"faceless-video-engine/infrastructure/adapters"
	"github.com/google/uuid"
	"testing"
)

func TestSceneSegmenter_Segment(t *testing.T) {
	logger := adapters.NewZerologWrapper("error")

	segmenter := NewSceneSegmenter(logger)

	runID := uuid.NewString()

	script := "The lighthouse keeper saw the storm first.\nNobody believed his warning.\n\nBy dawn the harbor was gone.\n\nOnly the lighthouse stood."

	scenes, err := segmenter.Segment(script, runID)
	if err != nil {
		t.Fatal("Failed to segment script:", err)
	}

	if len(scenes) != 3 {
		t.Fatal("Expected 3 scenes, got:", len(scenes))
	}

	if scenes[0].Text != "The lighthouse keeper saw the storm first.\nNobody believed his warning." {
		t.Fatal("First scene should keep its interior line break, got:", scenes[0].Text)
	}

	if scenes[1].Text != "By dawn the harbor was gone." {
		t.Fatal("Second scene text mismatch:", scenes[1].Text)
	}

	for i, scene := range scenes {
		if scene.Ordinal != i {
			t.Fatal("Scene ordinal does not follow paragraph order:", scene.Ordinal)
		}
		if scene.RunID != runID {
			t.Fatal("Scene carries wrong run ID:", scene.RunID)
		}
		if scene.ID == "" {
			t.Fatal("Scene ID is empty")
		}
	}
}

func TestSceneSegmenter_SegmentWindowsLineEndings(t *testing.T) {
	logger := adapters.NewZerologWrapper("error")

	segmenter := NewSceneSegmenter(logger)

	scenes, err := segmenter.Segment("First paragraph.\r\n\r\nSecond paragraph.\r\n", uuid.NewString())
	if err != nil {
		t.Fatal("Failed to segment script:", err)
	}

	if len(scenes) != 2 {
		t.Fatal("Expected 2 scenes, got:", len(scenes))
	}

	if scenes[0].Text != "First paragraph." || scenes[1].Text != "Second paragraph." {
		t.Fatal("Scene texts mismatch:", scenes[0].Text, scenes[1].Text)
	}
}

func TestSceneSegmenter_SegmentDiscardsBlankParagraphs(t *testing.T) {
	logger := adapters.NewZerologWrapper("error")

	segmenter := NewSceneSegmenter(logger)

	script := "First.\n\n\n\nSecond.\n\n   \t\n\nThird."

	scenes, err := segmenter.Segment(script, uuid.NewString())
	if err != nil {
		t.Fatal("Failed to segment script:", err)
	}

	if len(scenes) != 3 {
		t.Fatal("Blank runs should not produce scenes, got:", len(scenes))
	}

	for i, want := range []string{"First.", "Second.", "Third."} {
		if scenes[i].Text != want {
			t.Fatal("Scene text mismatch at", i, ":", scenes[i].Text)
		}
	}
}

func TestSceneSegmenter_SegmentEmptyScript(t *testing.T) {
	logger := adapters.NewZerologWrapper("error")

	segmenter := NewSceneSegmenter(logger)

	for _, script := range []string{"", "   ", "\n\n\n", "\r\n \r\n"} {
		_, err := segmenter.Segment(script, uuid.NewString())
		if err == nil {
			t.Fatal("Expected an error for blank script:", script)
		}

		var segmentationErr *domain.SegmentationError
		if !errors.As(err, &segmentationErr) {
			t.Fatal("Expected a segmentation error, got:", err)
		}
	}
}
