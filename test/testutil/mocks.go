// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"sync"
	"time"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/protocol"
)

// CommandCapture captures commands sent through a channel so tests can
// assert on what the screens submitted.
type CommandCapture struct {
	Commands []protocol.Command
	ch       chan protocol.Command
	mu       sync.RWMutex
}

// NewCommandCapture creates a new command capture instance
func NewCommandCapture() *CommandCapture {
	ch := make(chan protocol.Command, 100)
	capture := &CommandCapture{
		Commands: make([]protocol.Command, 0),
		ch:       ch,
	}

	go func() {
		for cmd := range ch {
			capture.mu.Lock()
			capture.Commands = append(capture.Commands, cmd)
			capture.mu.Unlock()
		}
	}()

	return capture
}

// Channel returns the send channel for commands
func (c *CommandCapture) Channel() chan<- protocol.Command {
	return c.ch
}

// LastCommand returns the most recent command sent, or nil if none
func (c *CommandCapture) LastCommand() protocol.Command {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.Commands) == 0 {
		return nil
	}
	return c.Commands[len(c.Commands)-1]
}

// CommandCount returns the number of commands captured
func (c *CommandCapture) CommandCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Commands)
}

// AllCommands returns a copy of all captured commands
func (c *CommandCapture) AllCommands() []protocol.Command {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]protocol.Command, len(c.Commands))
	copy(result, c.Commands)
	return result
}

// Close closes the capture channel
func (c *CommandCapture) Close() {
	close(c.ch)
}

// WaitForCommands waits until at least n commands have been captured.
// Screens send commands from goroutines, so tests need a grace period.
func (c *CommandCapture) WaitForCommands(n int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.RLock()
		count := len(c.Commands)
		c.mu.RUnlock()
		if count >= n {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}
