/*
Copyright 2025 Meldq Authors. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package leftist implements a mergeable priority queue backed by a leftist
// heap. Top, Len and IsEmpty are O(1); Push, Pop and Merge are O(log n).
//
// The ordering predicate is caller-supplied and may fail on any comparison.
// Every mutating operation provides strong failure safety: when the predicate
// (or element duplication during a copy) reports an error, the operation
// returns that error wrapped and the heap - and, for Merge, the other heap -
// is observably identical to its state before the call.
package leftist

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/meldq/leftist/logger"
)

var (
	ErrIllegalArguments = errors.New("illegal arguments")
	ErrInvalidOptions   = errors.New("invalid options")
	ErrEmptyHeap        = errors.New("heap is empty")
	ErrOperationFailed  = errors.New("operation failed")
)

// LessFunc reports whether a has strictly lower priority than b.
// An error aborts the ongoing operation without modifying the heap.
type LessFunc[T any] func(a, b T) (bool, error)

// CloneFunc duplicates an element during Clone and CopyFrom.
type CloneFunc[T any] func(v T) (T, error)

// Less adapts an ordered type's natural "<" to a LessFunc, which makes the
// maximum element the top of the heap.
func Less[T cmp.Ordered](a, b T) (bool, error) {
	return a < b, nil
}

type node[T any] struct {
	val   T
	left  *node[T]
	right *node[T]

	// null-path length: 1 for a leaf, npl(right)+1 otherwise.
	npl int
}

func nplOf[T any](x *node[T]) int {
	if x == nil {
		return 0
	}
	return x.npl
}

// Heap is a leftist-heap priority queue. It is not safe for concurrent use.
type Heap[T any] struct {
	root *node[T]
	n    int

	less    LessFunc[T]
	cloneFn CloneFunc[T]

	id      string
	log     logger.Logger
	metrics bool
}

// New returns an empty heap ordered by less. A nil opts selects DefaultOptions.
func New[T any](less LessFunc[T], opts *Options[T]) (*Heap[T], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrIllegalArguments)
	}

	if opts == nil {
		opts = DefaultOptions[T]()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Heap[T]{
		less:    less,
		cloneFn: opts.cloneFn,
		id:      opts.id,
		log:     opts.log,
		metrics: opts.metrics,
	}, nil
}

// NewOrdered returns an empty heap over an ordered element type using the
// natural "<" predicate, so Top yields the maximum element.
func NewOrdered[T cmp.Ordered](opts *Options[T]) (*Heap[T], error) {
	return New(Less[T], opts)
}

// meld merges two heap-ordered leftist subtrees into one, consuming both.
// No node of either input is modified until every deeper recursive call has
// returned without error: the comparator call is the only failure point in a
// frame and it happens before any mutation. A non-nil error therefore
// guarantees both input trees are still exactly as passed in.
func (h *Heap[T]) meld(a, b *node[T]) (*node[T], error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}

	lower, err := h.less(a.val, b.val)
	if err != nil {
		return nil, err
	}
	if lower {
		a, b = b, a
	}

	r, err := h.meld(a.right, b)
	if err != nil {
		return nil, err
	}
	a.right = r

	if nplOf(a.left) < nplOf(a.right) {
		a.left, a.right = a.right, a.left
	}
	a.npl = nplOf(a.right) + 1

	return a, nil
}

// Push inserts v. When the comparator fails the heap is left untouched and
// the returned error wraps both ErrOperationFailed and the comparator's error.
func (h *Heap[T]) Push(v T) error {
	root, err := h.meld(h.root, &node[T]{val: v, npl: 1})
	if err != nil {
		h.abortOp("push", err)
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	h.root = root
	h.n++

	if h.metrics {
		metricsPushesTotal.WithLabelValues(h.id).Inc()
		metricsSize.WithLabelValues(h.id).Set(float64(h.n))
	}
	return nil
}

// Top returns the highest-priority element without removing it.
func (h *Heap[T]) Top() (T, error) {
	if h.n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.root.val, nil
}

// Pop removes and returns the highest-priority element. When the comparator
// fails while re-melding the root's children, the heap is left untouched.
func (h *Heap[T]) Pop() (T, error) {
	var zero T

	if h.n == 0 {
		return zero, ErrEmptyHeap
	}

	old := h.root

	root, err := h.meld(old.left, old.right)
	if err != nil {
		h.abortOp("pop", err)
		return zero, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	old.left = nil
	old.right = nil

	h.root = root
	h.n--

	if h.metrics {
		metricsPopsTotal.WithLabelValues(h.id).Inc()
		metricsSize.WithLabelValues(h.id).Set(float64(h.n))
	}
	return old.val, nil
}

// Merge absorbs every element of other into h and empties other, using h's
// comparator to order the union. Merging a heap with itself, with nil or with
// an empty heap is a no-op. On comparator failure neither heap is modified;
// in particular other keeps all of its elements.
func (h *Heap[T]) Merge(other *Heap[T]) error {
	if other == nil || other == h || other.n == 0 {
		return nil
	}

	root, err := h.meld(h.root, other.root)
	if err != nil {
		h.abortOp("merge", err)
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	h.root = root
	h.n += other.n

	other.root = nil
	other.n = 0

	if h.metrics {
		metricsMergesTotal.WithLabelValues(h.id).Inc()
		metricsSize.WithLabelValues(h.id).Set(float64(h.n))
	}
	if other.metrics {
		metricsSize.WithLabelValues(other.id).Set(0)
	}
	return nil
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int {
	return h.n
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.n == 0
}

// Clear drops all elements.
func (h *Heap[T]) Clear() {
	h.root = nil
	h.n = 0

	if h.metrics {
		metricsSize.WithLabelValues(h.id).Set(0)
	}
}

// Values returns the elements in no particular order.
func (h *Heap[T]) Values() []T {
	vs := make([]T, 0, h.n)
	var walk func(x *node[T])
	walk = func(x *node[T]) {
		if x == nil {
			return
		}
		vs = append(vs, x.val)
		walk(x.left)
		walk(x.right)
	}
	walk(h.root)
	return vs
}

// Clone returns an independent deep copy sharing no nodes with h. Element
// duplication errors propagate as-is and no partially-built heap is returned.
func (h *Heap[T]) Clone() (*Heap[T], error) {
	root, err := h.cloneTree(h.root)
	if err != nil {
		return nil, err
	}

	return &Heap[T]{
		root:    root,
		n:       h.n,
		less:    h.less,
		cloneFn: h.cloneFn,
		id:      newHeapID(),
		log:     h.log,
		metrics: h.metrics,
	}, nil
}

// CopyFrom replaces h's contents, comparator and clone function with deep
// copies of other's. The clone of other's tree is built in full before h is
// touched: on any duplication error h is left completely unmodified.
// Copying a heap from itself is a no-op.
func (h *Heap[T]) CopyFrom(other *Heap[T]) error {
	if other == nil {
		return fmt.Errorf("%w: nil heap", ErrIllegalArguments)
	}
	if other == h {
		return nil
	}

	root, err := other.cloneTree(other.root)
	if err != nil {
		return err
	}

	h.root = root
	h.n = other.n
	h.less = other.less
	h.cloneFn = other.cloneFn

	if h.metrics {
		metricsSize.WithLabelValues(h.id).Set(float64(h.n))
	}
	return nil
}

func (h *Heap[T]) cloneTree(x *node[T]) (*node[T], error) {
	if x == nil {
		return nil, nil
	}

	val, err := h.cloneFn(x.val)
	if err != nil {
		return nil, err
	}

	left, err := h.cloneTree(x.left)
	if err != nil {
		return nil, err
	}

	right, err := h.cloneTree(x.right)
	if err != nil {
		return nil, err
	}

	return &node[T]{val: val, left: left, right: right, npl: x.npl}, nil
}

func (h *Heap[T]) abortOp(op string, err error) {
	h.log.Debugf("leftist heap %s: %s aborted, state preserved: %v", h.id, op, err)

	if h.metrics {
		metricsAbortedTotal.WithLabelValues(h.id, op).Inc()
	}
}
