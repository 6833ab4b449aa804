package generation

import "context"

// TextConnector produces one text completion for a system/user prompt pair.
// Implemented by the OpenAI connector and its mock.
type TextConnector interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
