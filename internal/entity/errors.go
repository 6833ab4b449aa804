package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Wizard session errors
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrSessionDone      = errors.New("wizard session is already submitted")
	ErrStepOutOfRange   = errors.New("step transition out of range")
	ErrTemplateRequired = errors.New("a generated template for the current answers is required")
	ErrPlanRequired     = errors.New("a pricing plan must be selected")
	ErrUnknownPlan      = errors.New("unknown pricing plan")
	ErrUnknownField     = errors.New("unknown answer field")
	ErrWrongStep        = errors.New("action not allowed at current step")

	// Record errors
	ErrRecordNotFound  = errors.New("landing page record not found")
	ErrProfileNotFound = errors.New("profile not found")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidFormat    = errors.New("invalid format")

	// ErrGenerationTimeout marks a generation call that exhausted its
	// configured deadline, retries included.
	ErrGenerationTimeout = errors.New("generation timed out")
)

// ProviderError reports a failed call to the text-generation provider:
// network failure, timeout, or a non-success status. Transient by nature,
// so it is the only generation error class eligible for retry.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ParseError means the provider returned text that is not valid JSON after
// code-fence stripping. Indicates prompt drift rather than an outage, so the
// raw output is kept for logging.
type ParseError struct {
	Err error
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON from provider: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError means the parsed document is missing a required section or has
// the wrong item count.
type SchemaError struct {
	Section string
	Detail  string
}

func (e *SchemaError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid section %q: %s", e.Section, e.Detail)
	}
	return fmt.Sprintf("missing section: %s", e.Section)
}

// PersistenceError wraps a failed submission write. The submit transaction
// rolls back as a whole, so no partial state is left behind.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
