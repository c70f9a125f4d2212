package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommand    EventType = "command"
	EventTransition EventType = "transition"
	EventFailure    EventType = "failure"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CommandEvent describes one processed command line.
type CommandEvent struct {
	EventBase
	Kind Kind     `json:"kind"`
	Args []string `json:"args,omitempty"`
	Path string   `json:"path"`
	Err  error    `json:"-"`
}

// TransitionEvent describes a change of the current directory.
type TransitionEvent struct {
	EventBase
	Kind Kind   `json:"kind"`
	From string `json:"from"`
	To   string `json:"to"`
}

// LifecycleHooks defines callbacks for navigator observability.
type LifecycleHooks struct {
	OnCommand    func(context.Context, *CommandEvent)
	OnTransition func(context.Context, *TransitionEvent)
	OnFailure    func(context.Context, *CommandEvent)
}
