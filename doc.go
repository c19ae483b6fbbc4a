/*
Package tendril is a fluent, deferred call-chain engine: it intercepts every
operation a builder exposes, queues the call instead of executing it, and then
drives the queue one action at a time, with nested sub-chains that suspend
their parent and optional replay controls when recording is enabled.

# Concept

A chain is built from a builder callback that registers named operations on an
operation surface. Calling an operation on the chain does not run it; it
records an action (path + arguments) on the chain's queue and returns the
chain for further calls. Once Run is invoked, the driver resolves each action
against the live surface and executes it. Handlers advance the chain by
calling Next on their controller, spawn sub-chains with Nest, or — in
recording mode — move the cursor with Trap, Down, and Jump.

# Key Properties

  - Deferred execution: a synchronous burst of fluent calls is fully queued
    before any of them run.
  - Strict ordering: actions execute in enqueue order unless replay controls
    reposition the cursor.
  - Suspension by nesting only: a parent chain is blocked exactly while a
    child chain it spawned has not signaled its end.
  - Two modes: recording (default, replay available) and light (destructive
    consumption, lower retention).

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/tendril"
		"github.com/aretw0/tendril/pkg/domain"
	)

	func main() {
		sum := 0
		builder := func(ctrl domain.Controller, s *domain.Surface) *domain.Surface {
			s.Handle("add", func(ctx context.Context, c domain.Controller, args ...any) error {
				sum += args[0].(int)
				c.Next()
				return nil
			})
			s.Handle("report", func(ctx context.Context, c domain.Controller, args ...any) error {
				fmt.Println("sum:", sum)
				c.Next()
				return nil
			})
			return nil
		}

		ch := tendril.New(builder)
		ch.Call("add", 5).Call("add", 10).Call("report")
		if err := ch.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package tendril
