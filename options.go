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

package leftist

import (
	"fmt"

	"github.com/meldq/leftist/logger"
	"github.com/rs/xid"
)

type Options[T any] struct {
	log logger.Logger

	// id labels the heap in log lines and metric series.
	id string

	cloneFn CloneFunc[T]

	metrics bool
}

func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		log:     logger.NewMemoryLogger(),
		id:      newHeapID(),
		cloneFn: identityClone[T],
		metrics: false,
	}
}

func newHeapID() string {
	return xid.New().String()
}

func identityClone[T any](v T) (T, error) {
	return v, nil
}

func (opts *Options[T]) Validate() error {
	if opts == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidOptions)
	}

	if opts.log == nil {
		return fmt.Errorf("%w: invalid Logger", ErrInvalidOptions)
	}

	if opts.id == "" {
		return fmt.Errorf("%w: empty heap id", ErrInvalidOptions)
	}

	if opts.cloneFn == nil {
		return fmt.Errorf("%w: invalid CloneFunc", ErrInvalidOptions)
	}

	return nil
}

func (opts *Options[T]) WithLogger(log logger.Logger) *Options[T] {
	opts.log = log
	return opts
}

func (opts *Options[T]) WithID(id string) *Options[T] {
	opts.id = id
	return opts
}

// WithCloneFunc sets the element duplication function used by Clone and
// CopyFrom, e.g. for element types holding owned references.
func (opts *Options[T]) WithCloneFunc(cloneFn CloneFunc[T]) *Options[T] {
	opts.cloneFn = cloneFn
	return opts
}

// WithMetrics enables per-heap prometheus metrics, labelled by the heap id.
func (opts *Options[T]) WithMetrics(metrics bool) *Options[T] {
	opts.metrics = metrics
	return opts
}
