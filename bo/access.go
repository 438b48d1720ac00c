package bo

import (
	"github.com/cockroachdb/errors"

	"github.com/gokms/armsoc/internal/drm"
)

// AccessOp selects the CPU access mode for Acquire and Release.
type AccessOp uint32

const (
	AccessRead AccessOp = iota
	AccessWrite
)

var accessOpMapping = make(map[AccessOp]string)

func (op AccessOp) String() string {
	return accessOpMapping[op]
}

func init() {
	accessOpMapping[AccessRead] = "AccessRead"
	accessOpMapping[AccessWrite] = "AccessWrite"
}

// Acquire takes CPU access to the buffer's memory, serializing against the
// display hardware through the kernel's exclusion primitive. Acquires nest:
// only the outermost call reaches the kernel, inner calls just bump the depth
// counter. A write acquire while the buffer is held shared fails with
// ErrAccessConflict and changes nothing.
//
// The first write acquire marks the buffer dirty.
func (o *Object) Acquire(op AccessOp) error {
	if o.acquireCnt > 0 {
		if op == AccessWrite && !o.exclusive {
			return ErrAccessConflict
		}
		o.acquireCnt++
		return nil
	}

	flags := drm.CPUAcquireShared
	if op == AccessWrite {
		flags = drm.CPUAcquireExclusive
	}
	if err := o.dev.raw.CPUAcquire(o.handle, flags); err != nil {
		return errors.Wrapf(err, "cpu acquire of buffer %d failed", o.handle)
	}

	o.exclusive = op == AccessWrite
	o.acquireCnt = 1
	if o.exclusive {
		o.dirty = true
	}
	return nil
}

// Release drops one level of CPU access. Only the outermost release reaches
// the kernel. A failed kernel release is reported but leaves the depth counter
// consistent; releasing below zero is a caller bug and panics.
func (o *Object) Release(op AccessOp) error {
	if o.acquireCnt <= 0 {
		panic("release of cpu access that was never acquired")
	}
	o.acquireCnt--
	if o.acquireCnt > 0 {
		return nil
	}
	if err := o.dev.raw.CPURelease(o.handle); err != nil {
		return errors.Wrapf(err, "cpu release of buffer %d failed", o.handle)
	}
	return nil
}

// AcquireDepth reports the current CPU access nesting depth.
func (o *Object) AcquireDepth() int {
	return o.acquireCnt
}

// HeldExclusive reports whether the current CPU access, if any, is exclusive.
func (o *Object) HeldExclusive() bool {
	return o.acquireCnt > 0 && o.exclusive
}
