package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// RecognitionError reports an unrecoverable failure of the OCR step itself
// (missing engine, unreadable image). It is distinct from "no fields found",
// which the receipt extractor reports as nil fields, never as an error.
type RecognitionError struct {
	Stage string
	Err   error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("OCR %s failed: %v", e.Stage, e.Err)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// Engine is an owned OCR engine handle. Construction acquires the engine
// (tool check plus a private temp workspace); Close releases it. Callers
// acquire immediately before use and release with defer so the workspace is
// reclaimed on every exit path:
//
//	eng, err := extractor.NewEngine()
//	if err != nil { ... }
//	defer eng.Close()
//
// Engines are per-call and never shared: concurrent requests each pay the
// engine start-up cost. A documented scaling limit, not a correctness issue.
type Engine struct {
	workDir string
	closed  bool
}

// NewEngine acquires an OCR engine instance.
// Requires the tesseract binary (tesseract-ocr).
func NewEngine() (*Engine, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return nil, &RecognitionError{Stage: "init", Err: fmt.Errorf("tesseract not available (install tesseract-ocr): %w", err)}
	}

	dir, err := os.MkdirTemp("", "receipt-ocr-*")
	if err != nil {
		return nil, &RecognitionError{Stage: "init", Err: fmt.Errorf("create temp workspace: %w", err)}
	}

	return &Engine{workDir: dir}, nil
}

// Recognize runs the configured single-language OCR over one receipt image
// and returns the raw recognized text. The text may be empty or garbage;
// making sense of it is the field extractor's problem.
func (e *Engine) Recognize(image []byte) (string, error) {
	if e.closed {
		return "", &RecognitionError{Stage: "recognize", Err: fmt.Errorf("engine already closed")}
	}

	imgPath := filepath.Join(e.workDir, "receipt.img")
	if err := os.WriteFile(imgPath, image, 0o600); err != nil {
		return "", &RecognitionError{Stage: "recognize", Err: fmt.Errorf("write image: %w", err)}
	}

	// Output goes to <base>.txt. PSM 6 = single uniform text block, which
	// suits a cropped receipt photo.
	outBase := filepath.Join(e.workDir, "receipt-out")
	cmd := exec.Command("tesseract", imgPath, outBase, "-l", "eng", "--psm", "6")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", &RecognitionError{Stage: "recognize", Err: fmt.Errorf("tesseract: %v (output: %s)", err, string(out))}
	}

	data, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", &RecognitionError{Stage: "recognize", Err: fmt.Errorf("read tesseract output: %w", err)}
	}

	return strings.TrimSpace(string(data)), nil
}

// Close releases the engine's workspace. Safe to call more than once.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return os.RemoveAll(e.workDir)
}
