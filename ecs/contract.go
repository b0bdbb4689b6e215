package ecs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntityNotAlive     = errors.New("ecs: entity not alive")
	ErrDuplicateComponent = errors.New("ecs: component already present")
	ErrMissingComponent   = errors.New("ecs: component not present")
	ErrInvalidHandle      = errors.New("ecs: invalid storage handle")
	ErrForeignType        = errors.New("ecs: component type not from this world's type set")
	ErrMissingCoComponent = errors.New("ecs: required co-component missing")
)

// Mode selects how a World reacts to contract violations.
type Mode int

//go:generate go tool stringer -type=Mode

const (
	// Strict panics with a *ContractError.
	Strict Mode = iota
	// Lenient logs a warning and skips the offending operation.
	Lenient
)

var ErrUnknownMode = errors.New("ecs: unknown mode")

// ParseMode accepts a mode name in any case.
func ParseMode(s string) (Mode, error) {
	for m := Strict; m <= Lenient; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return Strict, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ContractError describes a broken precondition on the entity/component API.
type ContractError struct {
	Op     string
	Entity EntityID
	Type   string
	Err    error
}

func (e *ContractError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: entity %d: %v", e.Op, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s %s: entity %d: %v", e.Op, e.Type, e.Entity, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// Violate reports a contract violation. In Strict mode it panics; in Lenient
// mode it logs and returns the error so the caller can skip the work.
func (w *World) Violate(op string, id EntityID, typeName string, err error) error {
	cerr := &ContractError{Op: op, Entity: id, Type: typeName, Err: err}
	if w.mode == Strict {
		panic(cerr)
	}
	w.logger.Warn("contract violation",
		"op", op,
		"entity", int(id),
		"type", typeName,
		"err", err,
	)
	return cerr
}
