package domain

import "context"

// EventType defines the category of the event.
type EventType string

const (
	EventChainBegin EventType = "chain_begin"
	EventChainEnd   EventType = "chain_end"
	EventActionExec EventType = "action_exec"
	EventTrapFire   EventType = "trap_fire"
)

// ChainEvent marks a chain lifecycle boundary. Begin fires once per chain
// instance before its first action; End fires once per queue exhaustion and
// re-arms if the queue is later extended or the cursor rewound.
type ChainEvent struct {
	Type      EventType `json:"type"`
	ChainID   string    `json:"chain_id"`
	Step      int       `json:"step"`
	Recording bool      `json:"recording"`
}

// ActionEvent represents one action execution.
type ActionEvent struct {
	ChainID string `json:"chain_id"`
	Step    int    `json:"step"`
	Op      string `json:"op"`
	Args    []any  `json:"args,omitempty"`
}

// TrapEvent represents a trap firing during replay.
type TrapEvent struct {
	ChainID      string `json:"chain_id"`
	Op           string `json:"op"`
	RegisteredAt int    `json:"registered_at"`
	FiredAt      int    `json:"fired_at"`
}

// LifecycleHooks defines callbacks for engine observability.
// All hooks are optional and run synchronously on the chain's own turn.
type LifecycleHooks struct {
	OnBegin  func(context.Context, *ChainEvent)
	OnEnd    func(context.Context, *ChainEvent)
	OnAction func(context.Context, *ActionEvent)
	OnTrap   func(context.Context, *TrapEvent)
}
