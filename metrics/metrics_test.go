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

package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	r := NewRegistry()
	c := NewRegisteredCounter("eof/validate/success", r)
	c.Inc(1)
	c.Inc(2)
	c.Inc(-5)
	assert.Equal(t, int64(3), c.Count())

	same := GetOrRegisterCounter("eof/validate/success", r)
	assert.Equal(t, int64(3), same.Count())
	assert.Panics(t, func() { NewRegisteredCounter("eof/validate/success", r) })
}

func TestTimer(t *testing.T) {
	r := NewRegistry()
	tm := NewRegisteredTimer("eof/validate/duration", r)
	tm.Update(time.Millisecond)
	tm.UpdateSince(time.Now().Add(-time.Millisecond))
	assert.Equal(t, int64(2), tm.Count())
	assert.True(t, tm.Total() >= 1900*time.Microsecond, "total %v", tm.Total())
}

func TestRegistryEach(t *testing.T) {
	r := NewRegistry()
	GetOrRegisterCounter("b/counter", r).Inc(1)
	GetOrRegisterCounter("a/counter", r).Inc(2)
	GetOrRegisterTimer("c/timer", r)

	var names []string
	r.Each(func(name string, metric interface{}) {
		names = append(names, name)
	})
	assert.Equal(t, []string{"a/counter", "b/counter", "c/timer"}, names)

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
	assert.Equal(t, "a_counter", families[0].GetName())

	r.Unregister("a/counter")
	assert.Nil(t, r.Get("a/counter"))
	families, err = r.Gatherer().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}

func TestPromNameCollision(t *testing.T) {
	r := NewRegistry()
	GetOrRegisterCounter("eof/validate", r).Inc(1)

	_, err := r.register("eof_validate", newCounter)
	var collision *NameCollisionError
	require.True(t, errors.As(err, &collision), "have %v", err)
	assert.Equal(t, "eof/validate", collision.Owner)
	assert.Equal(t, "eof_validate", collision.PromName)

	msg := panicMessage(func() { GetOrRegisterCounter("eof_validate", r) })
	assert.Contains(t, msg, "collides with eof/validate")
	assert.Panics(t, func() { NewRegisteredTimer("eof.validate", r) })

	// the original is untouched and the name is free again once removed
	assert.Equal(t, int64(1), GetOrRegisterCounter("eof/validate", r).Count())
	r.Unregister("eof/validate")
	assert.NotPanics(t, func() { NewRegisteredCounter("eof_validate", r) })
}

func panicMessage(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return ""
}

func TestPromName(t *testing.T) {
	assert.Equal(t, "eof_validate_truncated_push", promName("eof/validate/truncated_push"))
	assert.Equal(t, "a_b_c", promName("a.b-c"))
}
