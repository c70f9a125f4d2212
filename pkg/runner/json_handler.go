package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/fsnav/pkg/domain"
)

// Record is one NDJSON line written by JSONHandler.
type Record struct {
	Type    string `json:"type"` // "line", "system" or "error"
	Text    string `json:"text,omitempty"`
	Path    string `json:"path,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Input is one command per line, either raw text or a JSON string.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder

	// MaxInputSize bounds a single line; zero means the sanitizer default.
	MaxInputSize int
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, actions []domain.ActionRequest) error {
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderLine:
			if msg, ok := act.Payload.(string); ok {
				if err := h.Encoder.Encode(Record{Type: "line", Text: msg}); err != nil {
					return err
				}
			}
		case domain.ActionSystemMessage:
			if msg, ok := act.Payload.(string); ok {
				if err := h.Encoder.Encode(Record{Type: "system", Text: msg}); err != nil {
					return err
				}
			}
		case domain.ActionRenderLines:
			src, ok := act.Payload.(domain.LineSource)
			if !ok {
				continue
			}
			for line, err := range src.Lines {
				if err != nil {
					if err := h.Error(ctx, err); err != nil {
						return err
					}
					break
				}
				if err := h.Encoder.Encode(Record{Type: "line", Text: line, Path: src.Path}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Input ignores the prompt: JSON mode never writes anything that is not a record.
func (h *JSONHandler) Input(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}

		text = strings.TrimSpace(text)

		// Try to unquote if it's a JSON string
		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = val
		}

		clean, err := SanitizeInputLimit(text, h.MaxInputSize)
		if err != nil {
			if err := h.Error(ctx, err); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

func (h *JSONHandler) Error(ctx context.Context, err error) error {
	return h.Encoder.Encode(Record{
		Type:    "error",
		Code:    string(domain.CodeOf(err)),
		Message: err.Error(),
	})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Record{Type: "system", Text: msg})
}
