// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     exception
// Description: Registry configuration and compaction strategies
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package exception

import (
	"fmt"
	"strings"
)

// Default configuration values
const (
	DefaultBufferMax = 4096
	DefaultCapacity  = 1024
	DefaultIDOffset  = 1
)

// Strategy selects the compaction algorithm
type Strategy int

const (
	// StrategyBuffered copies occupied slots through a scratch slice
	StrategyBuffered Strategy = iota
	// StrategyInPlace moves occupied slots forward without extra storage
	StrategyInPlace
)

// String returns the configuration name of the strategy
func (s Strategy) String() string {
	switch s {
	case StrategyBuffered:
		return "buffered"
	case StrategyInPlace:
		return "inplace"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "buffered", "buffer":
		return StrategyBuffered, nil
	case "inplace", "in-place", "in_place":
		return StrategyInPlace, nil
	default:
		return StrategyBuffered, fmt.Errorf("unknown compaction strategy %q", name)
	}
}

// Config holds registry limits
type Config struct {
	// BufferMax is the maximum byte length of names and descriptions
	BufferMax int
	// Capacity is the fixed number of slots
	Capacity int
	// IDOffset is the first id of the builtin catalogue and of AddNext;
	// it must be positive
	IDOffset int
	Strategy Strategy
}

// DefaultConfig returns the default registry configuration
func DefaultConfig() Config {
	return Config{
		BufferMax: DefaultBufferMax,
		Capacity:  DefaultCapacity,
		IDOffset:  DefaultIDOffset,
		Strategy:  StrategyBuffered,
	}
}

// applyDefaults fills unset or invalid values
func (c *Config) applyDefaults() {
	if c.BufferMax <= 0 {
		c.BufferMax = DefaultBufferMax
	}
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if c.IDOffset <= 0 {
		c.IDOffset = DefaultIDOffset
	}
	if c.Strategy != StrategyBuffered && c.Strategy != StrategyInPlace {
		c.Strategy = StrategyBuffered
	}
}
