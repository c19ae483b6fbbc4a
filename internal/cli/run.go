package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/domain"
)

// Built-in operation names.
const (
	OpSay   = "say"
	OpSet   = "set"
	OpAdd   = "add"
	OpVars  = "vars"
	OpGroup = "group"
)

// Session holds the state shared by every chain a script run spawns:
// the variable table and the output writer. Nested chains get fresh queues
// but operate on the same session.
type Session struct {
	Out  io.Writer
	Vars map[string]any
}

// NewSession creates an empty session writing to out.
func NewSession(out io.Writer) *Session {
	return &Session{Out: out, Vars: make(map[string]any)}
}

// Builder returns the scripting surface builder. Every chain instance
// (including nested group chains) is built from it.
func (s *Session) Builder() tendril.Builder {
	return func(ctrl domain.Controller, surface *domain.Surface) *domain.Surface {
		surface.Handle(OpSay, s.say)
		surface.Handle(OpSet, s.set)
		surface.Handle(OpAdd, s.add)
		surface.Handle(OpVars, s.vars)
		surface.Handle(OpGroup, s.group)
		return nil
	}
}

// Enqueue records the steps on the given chain. Groups are recorded as a
// single group action carrying their nested steps.
func Enqueue(ctrl domain.Controller, steps []StepSpec) {
	for _, step := range steps {
		if len(step.Steps) > 0 {
			ctrl.Call(OpGroup, step.Steps)
			continue
		}
		ctrl.Call(step.Op, step.Args...)
	}
}

// Run executes a script on a fresh chain.
func (s *Session) Run(ctx context.Context, script *Script, light bool, logger *slog.Logger, opts ...tendril.Option) error {
	opts = append(opts, tendril.WithLogger(logger))
	var ch *tendril.Chain
	if light {
		ch = tendril.NewLight(s.Builder(), opts...)
	} else {
		ch = tendril.New(s.Builder(), opts...)
	}
	Enqueue(ch.Controller(), script.Steps)
	return ch.Run(ctx)
}

func (s *Session) say(ctx context.Context, ctrl domain.Controller, args ...any) error {
	words := make([]string, len(args))
	for i, a := range args {
		words[i] = fmt.Sprintf("%v", s.interpolate(a))
	}
	fmt.Fprintln(s.Out, strings.Join(words, " "))
	ctrl.Next()
	return nil
}

func (s *Session) set(ctx context.Context, ctrl domain.Controller, args ...any) error {
	if len(args) != 2 {
		return fmt.Errorf("set expects 2 args (name, value), got %d", len(args))
	}
	name, ok := args[0].(string)
	if !ok {
		return fmt.Errorf("set: name must be a string, got %T", args[0])
	}
	s.Vars[name] = s.interpolate(args[1])
	ctrl.Next()
	return nil
}

func (s *Session) add(ctx context.Context, ctrl domain.Controller, args ...any) error {
	if len(args) != 2 {
		return fmt.Errorf("add expects 2 args (name, delta), got %d", len(args))
	}
	name, ok := args[0].(string)
	if !ok {
		return fmt.Errorf("add: name must be a string, got %T", args[0])
	}
	delta, err := toFloat(s.interpolate(args[1]))
	if err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	current, err := toFloat(s.Vars[name])
	if err != nil {
		return fmt.Errorf("add %s: current value: %w", name, err)
	}
	s.Vars[name] = current + delta
	ctrl.Next()
	return nil
}

func (s *Session) vars(ctx context.Context, ctrl domain.Controller, args ...any) error {
	names := make([]string, 0, len(s.Vars))
	for name := range s.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.Out, "%s=%v\n", name, s.Vars[name])
	}
	ctrl.Next()
	return nil
}

// group runs its nested steps on a sub-chain; the parent chain stays
// suspended until the sub-chain ends.
func (s *Session) group(ctx context.Context, ctrl domain.Controller, args ...any) error {
	if len(args) != 1 {
		return fmt.Errorf("group expects its nested steps as a single argument")
	}
	steps, ok := args[0].([]StepSpec)
	if !ok {
		return fmt.Errorf("group: expected nested steps, got %T", args[0])
	}
	return ctrl.Nest(func(child domain.Controller, _ ...any) {
		Enqueue(child, steps)
	})
}

// interpolate replaces "$name" string arguments with the session variable of
// that name. Unknown names pass through untouched.
func (s *Session) interpolate(arg any) any {
	str, ok := arg.(string)
	if !ok || !strings.HasPrefix(str, "$") {
		return arg
	}
	if v, found := s.Vars[str[1:]]; found {
		return v
	}
	return arg
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("not a number: %v (%T)", v, v)
	}
}
