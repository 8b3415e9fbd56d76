package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"fattureincloud-mcp/internal/invoicing"
	"fattureincloud-mcp/internal/logger"
	"fattureincloud-mcp/pkg/models"
)

// Result is the text answer to a tool call.
type Result struct {
	Text string
	// Kind is empty on success and for unknown tools.
	Kind invoicing.Kind
}

// Failed reports whether the call ended with a failure.
func (r Result) Failed() bool {
	return r.Kind != ""
}

// Dispatcher runs tools from a Registry. It never returns an error: every
// outcome, including panics, is turned into text for the caller.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a Dispatcher over registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Registry returns the tools the dispatcher serves.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Call runs the named tool with args.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (res Result) {
	requestID := uuid.NewString()
	log := logger.WithTool("dispatcher", name, requestID)

	def, ok := d.registry.Get(name)
	if !ok {
		log.Warn().Msg("Unknown tool requested")
		return Result{Text: fmt.Sprintf("Tool %s non trovato", name)}
	}

	start := time.Now()
	log.Info().
		Bool("confirmation_required", def.RequiresConfirmation).
		Msg("Tool call started")

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Dur("duration", time.Since(start)).
				Msg("Tool call panicked")
			res = Result{
				Text: fmt.Sprintf("Errore: %v\n%s", r, debug.Stack()),
				Kind: invoicing.KindInternal,
			}
		}
	}()

	value, err := def.Handler(ctx, args)
	if err != nil {
		return failure(log, err, time.Since(start))
	}

	text, err := encode(value)
	if err != nil {
		return failure(log, pkgerrors.WithStack(err), time.Since(start))
	}

	log.Info().
		Dur("duration", time.Since(start)).
		Msg("Tool call completed")
	return Result{Text: text}
}

// failure renders err. Business failures become a JSON payload the assistant
// can act on; anything else becomes diagnostic text with a stack trace.
func failure(log zerolog.Logger, err error, elapsed time.Duration) Result {
	kind := invoicing.KindOf(err)

	var tooled *invoicing.Error
	if errors.As(err, &tooled) && tooled.IsBusiness() {
		log.Warn().
			Str("kind", string(kind)).
			Str("reason", tooled.Message).
			Dur("duration", elapsed).
			Msg("Tool call rejected")
		text, encErr := encode(models.Failure{Success: false, Error: tooled.Message, Kind: string(kind)})
		if encErr == nil {
			return Result{Text: text, Kind: kind}
		}
		err = encErr
	}

	log.Error().
		Err(err).
		Str("kind", string(kind)).
		Dur("duration", elapsed).
		Msg("Tool call failed")
	return Result{
		Text: fmt.Sprintf("Errore: %s\n%s", err.Error(), stackOf(err)),
		Kind: kind,
	}
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// stackOf returns the deepest stack trace recorded in err's chain, or the
// current stack when none was recorded.
func stackOf(err error) string {
	var trace pkgerrors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			trace = st.StackTrace()
		}
	}
	if trace == nil {
		return string(debug.Stack())
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", trace), "\n")
}

// encode renders v as indented JSON without escaping non-ASCII or HTML
// characters. Nil slices render as [].
func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	text := strings.TrimSuffix(buf.String(), "\n")
	if text == "null" {
		return "[]", nil
	}
	return text, nil
}
