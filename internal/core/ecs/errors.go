package ecs

import "github.com/pkg/errors"

// ErrorKind classifies the programmer-error-class conditions the ECS
// reports as errors rather than silent no-ops. See SPEC_FULL.md §7 for the
// full taxonomy and the reasoning behind which conditions get a *Error and
// which get a silent nil/false/no-op instead.
type ErrorKind int

const (
	// ErrComponentIDOutOfRange: a component ID >= MaxComponentTypes was
	// passed to AddComponent.
	ErrComponentIDOutOfRange ErrorKind = iota
	// ErrUnknownComponent: AddComponent/RemoveComponent targeted an
	// unregistered component ID.
	ErrUnknownComponent
	// ErrUnknownEntity: an entity ID >= the world's entity counter was
	// passed to AddComponent.
	ErrUnknownEntity
	// ErrTooManyComponentTypes: RegisterComponent was called more
	// times than MaxComponentTypes allows.
	ErrTooManyComponentTypes
)

func (k ErrorKind) String() string {
	switch k {
	case ErrComponentIDOutOfRange:
		return "component id out of range"
	case ErrUnknownComponent:
		return "unknown component"
	case ErrUnknownEntity:
		return "unknown entity"
	case ErrTooManyComponentTypes:
		return "too many component types registered"
	default:
		return "unknown ecs error"
	}
}

// Error is the ECS's error type. It carries enough context (operation,
// entity, component) for a host to log something actionable without the
// core needing to know how the host wants to report it — the core only
// raises these for contract violations by the caller, never for
// data-driven out-of-range conditions (those return nil/false/no-op, see
// PoolCapacityExceeded and DoubleAdd in SPEC_FULL.md §7).
type Error struct {
	Kind   ErrorKind
	Op     string
	Entity EntityID
	Comp   ComponentID
	cause  error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.String()
	if e.Entity != NullEntity {
		msg += " (entity " + itoa(uint64(e.Entity)) + ")"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, op string, entity EntityID, comp ComponentID) *Error {
	return &Error{Kind: kind, Op: op, Entity: entity, Comp: comp, cause: errors.WithStack(errors.New(kind.String()))}
}

// itoa avoids pulling in strconv purely for a handful of digits inside a
// hot error-formatting path that should rarely execute.
func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
