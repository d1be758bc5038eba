package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Event is the host's hook payload, read from stdin on every file
// edit/write. Only the fields qualhook needs are decoded; everything
// else the host sends is ignored.
type Event struct {
	HookEventName string    `json:"hook_event_name"`
	ToolInput     ToolInput `json:"tool_input"`
}

// ToolInput carries the edited file path.
type ToolInput struct {
	FilePath string `json:"file_path"`
}

// DecodeEvent parses a hook event from the host.
func DecodeEvent(r io.Reader) (Event, error) {
	var ev Event
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return Event{}, fmt.Errorf("invalid hook input: %w", err)
	}
	return ev, nil
}

// Output is the envelope the host expects on stdout when the hook has
// feedback. A clean run prints nothing at all.
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

// SpecificOutput carries the feedback channel payload.
type SpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// EncodeOutput writes the feedback envelope for the host.
func EncodeOutput(w io.Writer, eventName, message string) error {
	if eventName == "" {
		eventName = "PostToolUse"
	}
	out := Output{
		HookSpecificOutput: SpecificOutput{
			HookEventName:     eventName,
			AdditionalContext: message,
		},
	}
	return json.NewEncoder(w).Encode(out)
}
