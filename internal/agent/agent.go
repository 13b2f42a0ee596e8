// Package agent implements the interactive conversation loop between the
// operator, the model transport, and the local tool registry. The loop
// alternates between soliciting user input and resuming with tool results
// until the input source is exhausted or the transport fails.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seaward/remora/internal/tools"
)

// Console labels for the user-facing transcript. The transcript is
// advisory output, separate from both the conversation state and the
// structured zap log.
var (
	userLabel     = color.New(color.FgBlue, color.Bold).Sprint("You")
	modelLabel    = color.New(color.FgYellow, color.Bold).Sprint("Claude")
	toolLabel     = color.New(color.FgGreen, color.Bold).Sprint("tool")
	errorLabel    = color.New(color.FgRed, color.Bold).Sprint("ERROR")
	apiErrorLabel = color.New(color.FgRed, color.Bold).Sprint("API ERROR")
)

// Agent owns the conversation history, the tool registry, and the turn
// loop. One Agent serves one session; its state lives for the process
// lifetime and is only ever touched by the loop itself.
type Agent struct {
	transport      Transport
	registry       *tools.Registry
	getUserMessage func() (string, bool)
	out            io.Writer
	logger         *zap.Logger
	maxToolTurns   int

	sessionID    string
	conversation []anthropic.MessageParam
}

// Options configure a new Agent.
type Options struct {
	Transport Transport
	Registry  *tools.Registry

	// GetUserMessage returns one line of user input per call. The second
	// return value is false once the input source is exhausted, which is
	// distinct from an empty line.
	GetUserMessage func() (string, bool)

	Out    io.Writer   // defaults to os.Stdout
	Logger *zap.Logger // defaults to a no-op logger

	// MaxToolTurns bounds consecutive model turns within a single user
	// turn. Zero means tool chains are unbounded.
	MaxToolTurns int
}

// New creates an Agent with the provided options.
func New(opts Options) (*Agent, error) {
	if opts.Transport == nil {
		return nil, errors.New("agent requires a model transport")
	}
	if opts.Registry == nil {
		return nil, errors.New("agent requires a tool registry")
	}
	if opts.GetUserMessage == nil {
		return nil, errors.New("agent requires a user input source")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Agent{
		transport:      opts.Transport,
		registry:       opts.Registry,
		getUserMessage: opts.GetUserMessage,
		out:            out,
		logger:         logger,
		maxToolTurns:   opts.MaxToolTurns,
		sessionID:      uuid.NewString(),
	}, nil
}

// Run drives the conversation until the input source is exhausted (clean
// stop, nil error) or the transport fails (the transport error is
// returned). Conversation history is append-only; a failed run leaves the
// turns accumulated so far untouched.
func (a *Agent) Run(ctx context.Context) error {
	a.logger.Info("session started",
		zap.String("session", a.sessionID),
		zap.Int("tools", len(a.registry.All())),
	)

	toolDefs := a.registry.Definitions()

	awaitingUserInput := true
	modelTurns := 0
	for {
		if awaitingUserInput {
			fmt.Fprintf(a.out, "%s: ", userLabel)
			line, ok := a.getUserMessage()
			if !ok {
				a.logger.Info("input closed, stopping",
					zap.String("session", a.sessionID),
					zap.Int("turns", len(a.conversation)),
				)
				return nil
			}
			a.conversation = append(a.conversation, anthropic.NewUserMessage(anthropic.NewTextBlock(line)))
			modelTurns = 0
		}

		message, err := a.transport.Send(ctx, a.conversation, toolDefs)
		if err != nil {
			fmt.Fprintf(a.out, "%s: %s\n", apiErrorLabel, err.Error())
			a.logger.Error("transport call failed",
				zap.String("session", a.sessionID),
				zap.Error(err),
			)
			return err
		}
		a.conversation = append(a.conversation, assistantParam(message.Content))
		modelTurns++

		results := a.processBlocks(message.Content)
		if len(results) == 0 {
			awaitingUserInput = true
			continue
		}

		if a.maxToolTurns > 0 && modelTurns >= a.maxToolTurns {
			err := fmt.Errorf("tool chain exceeded %d model turns without user input", a.maxToolTurns)
			fmt.Fprintf(a.out, "%s: %s\n", errorLabel, err.Error())
			a.logger.Error("tool chain bound reached",
				zap.String("session", a.sessionID),
				zap.Int("maxToolTurns", a.maxToolTurns),
			)
			return err
		}

		// Resume with the tool results as a single user turn, without
		// prompting. This is what lets the model chain tool calls.
		a.conversation = append(a.conversation, anthropic.NewUserMessage(results...))
		awaitingUserInput = false
	}
}

// processBlocks walks the assistant's content blocks in order: text blocks
// are displayed immediately, tool_use blocks are dispatched one at a time.
// The returned results preserve the order the tool_use blocks appeared in.
func (a *Agent) processBlocks(blocks []anthropic.ContentBlockUnion) []anthropic.ContentBlockParamUnion {
	var results []anthropic.ContentBlockParamUnion
	for _, block := range blocks {
		switch block.Type {
		case "text":
			fmt.Fprintf(a.out, "%s: %s\n", modelLabel, block.Text)
		case "tool_use":
			results = append(results, a.executeTool(block.ID, block.Name, block.Input))
		}
	}
	return results
}

// executeTool resolves and runs one tool_use request, always producing a
// tool_result block. Tool failures are data for the model to react to,
// never control flow at this level.
func (a *Agent) executeTool(id, name string, input json.RawMessage) anthropic.ContentBlockParamUnion {
	fmt.Fprintf(a.out, "%s: %s(%s)\n", toolLabel, name, string(input))

	tool, ok := a.registry.Lookup(name)
	if !ok {
		a.logger.Warn("tool not found",
			zap.String("session", a.sessionID),
			zap.String("tool", name),
		)
		return anthropic.NewToolResultBlock(id, "tool not found", true)
	}

	args := map[string]any{}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			a.logger.Warn("undecodable tool input",
				zap.String("session", a.sessionID),
				zap.String("tool", name),
				zap.Error(err),
			)
			return anthropic.NewToolResultBlock(id, fmt.Sprintf("invalid tool input: %s", err), true)
		}
	}

	a.logger.Debug("dispatching tool",
		zap.String("session", a.sessionID),
		zap.String("tool", name),
		zap.String("input", string(input)),
	)

	result, err := tool.Execute(args)
	if err != nil {
		var verr *tools.ValidationError
		if errors.As(err, &verr) {
			a.logger.Warn("tool arguments rejected",
				zap.String("session", a.sessionID),
				zap.String("tool", name),
				zap.Error(err),
			)
		} else {
			a.logger.Error("tool execution failed",
				zap.String("session", a.sessionID),
				zap.String("tool", name),
				zap.Error(err),
			)
		}
		fmt.Fprintf(a.out, "%s: %s\n", errorLabel, err.Error())
		return anthropic.NewToolResultBlock(id, err.Error(), true)
	}

	return anthropic.NewToolResultBlock(id, result, false)
}

// assistantParam rebuilds an assistant turn from response content blocks so
// it can be appended to the conversation.
func assistantParam(blocks []anthropic.ContentBlockUnion) anthropic.MessageParam {
	params := make([]anthropic.ContentBlockParamUnion, 0, len(blocks))
	for _, block := range blocks {
		switch block.Type {
		case "text":
			params = append(params, anthropic.NewTextBlock(block.Text))
		case "tool_use":
			params = append(params, anthropic.NewToolUseBlock(block.ID, json.RawMessage(block.Input), block.Name))
		}
	}
	return anthropic.NewAssistantMessage(params...)
}
