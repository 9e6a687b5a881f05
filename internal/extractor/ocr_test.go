package extractor

import (
	"errors"
	"os/exec"
	"testing"
)

func ocrAvailable() bool {
	_, err := exec.LookPath("tesseract")
	return err == nil
}

func TestNewEngine_MissingTool(t *testing.T) {
	if ocrAvailable() {
		t.Skip("tesseract is installed; cannot test missing-tool error path")
	}

	_, err := NewEngine()
	if err == nil {
		t.Fatal("expected error when tesseract is not installed")
	}

	var recErr *RecognitionError
	if !errors.As(err, &recErr) {
		t.Errorf("expected *RecognitionError, got %T", err)
	}
}

func TestEngine_CloseIdempotent(t *testing.T) {
	if !ocrAvailable() {
		t.Skip("tesseract not installed; skipping")
	}

	eng, err := NewEngine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := eng.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestEngine_RecognizeAfterClose(t *testing.T) {
	if !ocrAvailable() {
		t.Skip("tesseract not installed; skipping")
	}

	eng, err := NewEngine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eng.Close()

	_, err = eng.Recognize([]byte("img"))
	if err == nil {
		t.Fatal("expected error for closed engine")
	}

	var recErr *RecognitionError
	if !errors.As(err, &recErr) {
		t.Errorf("expected *RecognitionError, got %T", err)
	}
}

func TestEngine_RecognizeUnreadableImage(t *testing.T) {
	if !ocrAvailable() {
		t.Skip("tesseract not installed; skipping")
	}

	eng, err := NewEngine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer eng.Close()

	// Garbage bytes are not a decodable image; that is an unrecoverable
	// recognition failure, not a nil-field result.
	_, err = eng.Recognize([]byte("definitely not an image"))
	if err == nil {
		t.Fatal("expected error for unreadable image")
	}

	var recErr *RecognitionError
	if !errors.As(err, &recErr) {
		t.Errorf("expected *RecognitionError, got %T", err)
	}
}
