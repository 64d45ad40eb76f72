// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"
)

// BufferUsage specifies how a buffer is bound.
type BufferUsage uint32

const (
	// BufferUsageVertex marks a vertex buffer.
	BufferUsageVertex BufferUsage = 1 << iota
	// BufferUsageIndex marks an index buffer.
	BufferUsageIndex
	// BufferUsageUniform marks a uniform buffer.
	BufferUsageUniform
)

// Buffer is a block of host memory handed to a draw command.
type Buffer struct {
	Label string
	Usage BufferUsage
	data  []byte
}

// Size returns the buffer length in bytes.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Bytes returns the buffer contents. The slice must not be modified.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// BufferAllocator creates buffers for per-frame vertex, index and uniform
// data. Allocation failure is reported as an error wrapping
// ErrOutOfMemory.
type BufferAllocator interface {
	Allocate(label string, usage BufferUsage, data []byte) (*Buffer, error)
	Release(b *Buffer)
}

// HostAllocator is a BufferAllocator backed by Go memory with an optional
// byte budget. It is safe for concurrent use.
type HostAllocator struct {
	mu     sync.Mutex
	budget int
	used   int
}

// NewHostAllocator returns an allocator that holds at most budget bytes
// at once. A budget of zero or less is unlimited.
func NewHostAllocator(budget int) *HostAllocator {
	return &HostAllocator{budget: budget}
}

// Allocate copies data into a new buffer.
func (a *HostAllocator) Allocate(label string, usage BufferUsage, data []byte) (*Buffer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.budget > 0 && a.used+len(data) > a.budget {
		return nil, fmt.Errorf("render: allocate %q (%d bytes, %d of %d in use): %w",
			label, len(data), a.used, a.budget, ErrOutOfMemory)
	}
	a.used += len(data)
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Buffer{Label: label, Usage: usage, data: buf}, nil
}

// Release returns the buffer's bytes to the budget. Releasing a buffer
// twice has no effect.
func (a *HostAllocator) Release(b *Buffer) {
	if b == nil || b.data == nil {
		return
	}
	a.mu.Lock()
	a.used -= len(b.data)
	a.mu.Unlock()
	b.data = nil
}

// Used returns the number of bytes currently allocated.
func (a *HostAllocator) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}

// Ensure HostAllocator implements BufferAllocator.
var _ BufferAllocator = (*HostAllocator)(nil)
