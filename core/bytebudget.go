// Copyright 2021 The The 420Integrated Development Group
// This file is part of the go-420coin library.
//
// The go-420coin library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-420coin library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-420coin library. If not, see <http://www.gnu.org/licenses/>.

package core

import (
	"fmt"
	"math"
)

// ByteBudget tracks the number of input bytes a batch may still consume.
// The zero value is a budget with no bytes available.
type ByteBudget uint64

// AddBytes makes bytes available to the batch.
func (bb *ByteBudget) AddBytes(amount uint64) *ByteBudget {
	if uint64(*bb) > math.MaxUint64-amount {
		panic("byte budget pushed above uint64")
	}
	*(*uint64)(bb) += amount
	return bb
}

// SubBytes deducts the given amount from the budget if enough bytes are
// available and returns an error otherwise.
func (bb *ByteBudget) SubBytes(amount uint64) error {
	if uint64(*bb) < amount {
		return ErrBatchTooLarge
	}
	*(*uint64)(bb) -= amount
	return nil
}

// Bytes returns the number of bytes remaining in the budget.
func (bb *ByteBudget) Bytes() uint64 {
	return uint64(*bb)
}

func (bb *ByteBudget) String() string {
	return fmt.Sprintf("%d", *bb)
}
