package domain

import "iter"

// ActionRequest represents output that the engine requests the host to render.
type ActionRequest struct {
	Type    string // e.g., "RENDER_LINE", "RENDER_LINES"
	Payload any    // The data needed to perform the action
}

// Standard Action Types
const (
	// ActionRenderLine requests the host to print a single line.
	// Payload: string
	ActionRenderLine = "RENDER_LINE"

	// ActionRenderLines requests the host to print the lines of a file.
	// Payload: LineSource
	ActionRenderLines = "RENDER_LINES"

	// ActionSystemMessage represents a notice from the navigator itself (not file content).
	// Payload: string
	ActionSystemMessage = "SYSTEM_MESSAGE"
)

// LineSource is a lazily read file. Each range over Lines re-reads from the start.
type LineSource struct {
	Path  string
	Lines iter.Seq2[string, error]
}

// Line builds a RENDER_LINE action.
func Line(text string) ActionRequest {
	return ActionRequest{Type: ActionRenderLine, Payload: text}
}

// SystemMessage builds a SYSTEM_MESSAGE action.
func SystemMessage(text string) ActionRequest {
	return ActionRequest{Type: ActionSystemMessage, Payload: text}
}

// Result is the outcome of applying one invocation.
type Result struct {
	// State is the navigation state after the command.
	State State
	// Actions is the output to render, in order.
	Actions []ActionRequest
	// Stop signals that the session must end.
	Stop bool
}
