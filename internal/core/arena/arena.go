// Package arena provides a contiguous, bump-style memory region that backs
// every allocation made by the ECS in internal/core/ecs.
//
// An Arena hands out memory by advancing a cursor; it never frees a single
// object. Capacity is fixed at creation time and the whole region is
// released at once with Release. This trades per-object flexibility for
// allocator-free hot paths and maximal locality between an object and
// whatever it allocates next — exactly the property the ECS's pools rely on
// to keep sparse, dense and data arrays adjacent in memory.
package arena

import (
	"unsafe"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Error is returned by Arena constructors and allocations. The Kind field
// lets callers distinguish construction failure from exhaustion without
// string matching.
type Error struct {
	Kind    Kind
	Op      string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Op + ": " + e.Kind.String() + ": " + e.Cause.Error()
	}
	return e.Op + ": " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Kind classifies an arena Error.
type Kind int

const (
	// ErrCreation means the underlying allocation for the arena itself failed.
	ErrCreation Kind = iota
	// ErrOutOfMemory means the bump cursor would exceed the arena's capacity.
	ErrOutOfMemory
)

func (k Kind) String() string {
	switch k {
	case ErrCreation:
		return "arena creation failed"
	case ErrOutOfMemory:
		return "arena out of memory"
	default:
		return "unknown arena error"
	}
}

// Arena is a single contiguous byte buffer with a bump cursor. It is not
// safe for concurrent use; the ECS built on top of it is single-threaded by
// design (see the package-level docs in ecs).
type Arena struct {
	buf      []byte
	cursor   int
	released bool
}

// Create acquires sizeBytes of process memory and returns an Arena with its
// cursor at zero. sizeBytes must be positive.
func Create(sizeBytes int) (*Arena, error) {
	if sizeBytes <= 0 {
		return nil, &Error{Kind: ErrCreation, Op: "Create", Cause: errors.Errorf("size must be positive, got %d", sizeBytes)}
	}

	buf, err := allocateBacking(sizeBytes)
	if err != nil {
		return nil, &Error{Kind: ErrCreation, Op: "Create", Cause: errors.Wrap(err, "backing allocation")}
	}

	return &Arena{buf: buf}, nil
}

// allocateBacking is split out so a future implementation could swap in
// mmap-backed memory without touching the bump-cursor logic above.
func allocateBacking(sizeBytes int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("allocation panicked: %v", r)
		}
	}()
	return make([]byte, sizeBytes), nil
}

// Alloc advances the cursor by the padding necessary to satisfy alignment
// plus bytes, and returns a pointer to the newly reserved region. Returned
// bytes are not zeroed; callers that need zero-initialized memory must
// clear it themselves.
func (a *Arena) Alloc(bytes, alignment int) (unsafe.Pointer, error) {
	if a.released {
		klog.Errorf("arena: Alloc called after Release (bytes=%d)", bytes)
		return nil, &Error{Kind: ErrOutOfMemory, Op: "Alloc", Cause: errors.New("arena already released")}
	}
	if alignment <= 0 {
		alignment = 1
	}

	base := uintptr(unsafe.Pointer(&a.buf[0]))
	current := base + uintptr(a.cursor)
	padding := int((uintptr(alignment) - current%uintptr(alignment)) % uintptr(alignment))

	needed := a.cursor + padding + bytes
	if needed > len(a.buf) {
		return nil, &Error{
			Kind: ErrOutOfMemory,
			Op:   "Alloc",
			Cause: errors.Errorf("cursor %d + padding %d + bytes %d exceeds capacity %d",
				a.cursor, padding, bytes, len(a.buf)),
		}
	}

	start := a.cursor + padding
	a.cursor = needed

	return unsafe.Pointer(&a.buf[start]), nil
}

// TypedAlloc reserves space for a single T and returns a typed pointer into
// the arena.
func TypedAlloc[T any](a *Arena) (*T, error) {
	var zero T
	ptr, err := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// TypedArray reserves space for n contiguous Ts and returns a Go slice
// backed directly by the arena region — the slice's backing array never
// moves, matching the "arrays never reallocate" contract pools depend on.
func TypedArray[T any](a *Arena, n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	ptr, err := a.Alloc(elemSize*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(ptr), n), nil
}

// Release frees the underlying buffer. All outstanding pointers into it
// become invalid in one step; there is no per-object destructor
// invocation and no partial/reset release in this core.
func (a *Arena) Release() {
	a.buf = nil
	a.cursor = 0
	a.released = true
}

// Used returns the number of bytes currently claimed by the bump cursor.
func (a *Arena) Used() int {
	return a.cursor
}

// Capacity returns the total size the arena was created with.
func (a *Arena) Capacity() int {
	return len(a.buf)
}
