// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     script
// Description: YAML batch scripts of registry operations
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
)

// Op names a script operation
type Op string

const (
	OpAdd     Op = "add"
	OpAddNext Op = "add-next"
	OpRemove  Op = "remove"
	OpFind    Op = "find"
	OpCompact Op = "compact"
	OpList    Op = "list"
	OpThrow   Op = "throw"
)

// Expected outcomes of a step
const (
	OutcomeOK              = "ok"
	OutcomeNotFound        = "not-found"
	OutcomeDuplicate       = "duplicate"
	OutcomeFull            = "full"
	OutcomeRejected        = "rejected"
	OutcomeInvalidArgument = "invalid-argument"
)

var (
	ErrInvalidScript = errors.New("invalid script")
	ErrUnexpected    = errors.New("unexpected outcome")
)

// Script is a named sequence of steps
type Script struct {
	Name string `yaml:"name"`
	// ContinueOnError records unexpected outcomes and carries on
	ContinueOnError bool   `yaml:"continue_on_error"`
	Steps           []Step `yaml:"steps"`

	Source string `yaml:"-"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op          Op     `yaml:"op"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	ID          *int   `yaml:"id,omitempty"`
	Message     string `yaml:"message,omitempty"`
	Expect      string `yaml:"expect,omitempty"`

	// Line is the position of the step in its source file
	Line int `yaml:"-"`
}

// UnmarshalYAML records the source line of the step
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	type plain Step
	if err := node.Decode((*plain)(s)); err != nil {
		return err
	}
	s.Line = node.Line
	return nil
}

// Parse decodes and validates a script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, exfcerror.Wrap(errors.Join(ErrInvalidScript, err), "failed to parse script").
			WithCode(exfcerror.CodeInvalidFormat)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile reads the script at path
func ReadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exfcerror.Wrap(err, "failed to read script").
			WithCode(exfcerror.CodeMissingConfig).
			WithDetail("path", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, exfcerror.Wrap(err, path)
	}
	s.Source = path
	return s, nil
}

// Validate checks that every step names a known op with the fields it needs
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return exfcerror.Wrap(errors.Join(ErrInvalidScript, err), fmt.Sprintf("step %d (line %d)", i+1, step.Line)).
				WithCode(exfcerror.CodeInvalidFormat).
				WithDetail("step", i+1).
				WithDetail("line", step.Line)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpAdd:
		if s.ID == nil {
			return errors.New("add requires id")
		}
		fallthrough
	case OpAddNext:
		if s.Name == "" {
			return fmt.Errorf("%s requires name", s.Op)
		}
	case OpRemove, OpFind, OpThrow:
		if s.Name == "" && s.ID == nil {
			return fmt.Errorf("%s requires name or id", s.Op)
		}
	case OpCompact, OpList:
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}

	switch s.Expect {
	case "", OutcomeOK, OutcomeNotFound, OutcomeDuplicate, OutcomeFull, OutcomeRejected, OutcomeInvalidArgument:
		return nil
	default:
		return fmt.Errorf("unknown expectation %q", s.Expect)
	}
}
