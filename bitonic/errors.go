// Copyright 2025 go-bitonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitonic

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthNotPowerOfTwo is matched by every *LengthNotPowerOfTwoError
	// through errors.Is.
	ErrLengthNotPowerOfTwo = errors.New("bitonic: length is not a power of two")

	// ErrInvalidSortOrder is matched by every *InvalidSortOrderError.
	ErrInvalidSortOrder = errors.New("bitonic: invalid sort order")
)

// LengthNotPowerOfTwoError is returned when the slice handed to a sort
// function does not have a power-of-two length. The slice is left unmodified.
type LengthNotPowerOfTwoError struct {
	Length int
}

func (e *LengthNotPowerOfTwoError) Error() string {
	return fmt.Sprintf("bitonic: length of x is not a power of two (len(x): %d)", e.Length)
}

// Is reports whether target is ErrLengthNotPowerOfTwo.
func (e *LengthNotPowerOfTwoError) Is(target error) bool {
	return target == ErrLengthNotPowerOfTwo
}

// InvalidSortOrderError is returned for a SortOrder outside of
// {Ascending, Descending} or an order name that cannot be parsed.
type InvalidSortOrderError struct {
	Order SortOrder
	Name  string
}

func (e *InvalidSortOrderError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("bitonic: invalid sort order %q", e.Name)
	}
	return fmt.Sprintf("bitonic: invalid sort order %d", int(e.Order))
}

// Is reports whether target is ErrInvalidSortOrder.
func (e *InvalidSortOrderError) Is(target error) bool {
	return target == ErrInvalidSortOrder
}
