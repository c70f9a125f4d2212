package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/fsnav/pkg/domain"
)

// DefaultRenderExtensions are the file extensions passed through the ContentRenderer.
var DefaultRenderExtensions = []string{".md", ".markdown"}

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	// RenderExtensions selects which shown files go through Renderer.
	RenderExtensions []string
	// MaxInputSize bounds a single line; zero means the sanitizer default.
	MaxInputSize int
	// ErrorStyle decorates error messages (e.g. color). Nil prints them plain.
	ErrorStyle func(string) string
	// PromptStyle decorates the prompt. Nil prints it plain.
	PromptStyle func(string) string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithMaxInputSize bounds the size of a single input line.
func WithMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = n
	}
}

// WithErrorStyle decorates error messages.
func WithErrorStyle(style func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.ErrorStyle = style
	}
}

// WithPromptStyle decorates the prompt.
func WithPromptStyle(style func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.PromptStyle = style
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:           bufio.NewReader(r),
		Writer:           w,
		RenderExtensions: DefaultRenderExtensions,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines so Input can give up on a cancelled context while a read is blocked.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, actions []domain.ActionRequest) error {
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderLine, domain.ActionSystemMessage:
			if msg, ok := act.Payload.(string); ok {
				if _, err := fmt.Fprintln(h.Writer, msg); err != nil {
					return err
				}
			}
		case domain.ActionRenderLines:
			src, ok := act.Payload.(domain.LineSource)
			if !ok {
				continue
			}
			if err := h.renderLines(ctx, src); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *TextHandler) renderLines(ctx context.Context, src domain.LineSource) error {
	if h.Renderer != nil && h.shouldRender(src.Path) {
		var b strings.Builder
		for line, err := range src.Lines {
			if err != nil {
				return h.Error(ctx, err)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		rendered, err := h.Renderer(b.String())
		if err == nil {
			_, werr := fmt.Fprintln(h.Writer, strings.TrimRight(rendered, "\n"))
			return werr
		}
		// Fall back to the raw lines below.
	}

	for line, err := range src.Lines {
		if err != nil {
			// A failed read is reported, not fatal: the lines printed so far stand.
			return h.Error(ctx, err)
		}
		if _, werr := fmt.Fprintln(h.Writer, line); werr != nil {
			return werr
		}
	}
	return nil
}

func (h *TextHandler) shouldRender(path string) bool {
	return slices.Contains(h.RenderExtensions, strings.ToLower(filepath.Ext(path)))
}

func (h *TextHandler) Input(ctx context.Context, prompt string) (string, error) {
	// Ensure the pump is running
	h.initPump()

	for {
		// Only show prompt if context is not yet done
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			shown := prompt
			if h.PromptStyle != nil {
				shown = h.PromptStyle(prompt)
			}
			fmt.Fprint(h.Writer, shown)
		}

		select {
		case <-ctx.Done():
			// Important: don't print anything here, just exit silently
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			text := strings.TrimSpace(res.text)

			clean, err := SanitizeInputLimit(text, h.MaxInputSize)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) Error(ctx context.Context, err error) error {
	msg := err.Error()
	if h.ErrorStyle != nil {
		msg = h.ErrorStyle(msg)
	}
	_, werr := fmt.Fprintln(h.Writer, msg)
	return werr
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}
