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
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Counter holds an int64 value that can only be incremented.
type Counter interface {
	Inc(int64)
	Count() int64
}

// NewRegisteredCounter constructs and registers a new Counter. It panics if
// the name, or the Prometheus name it maps to, is already taken.
func NewRegisteredCounter(name string, r *Registry) Counter {
	m, err := orDefault(r).register(name, newCounter)
	if err != nil {
		panic(fmt.Errorf("could not create new counter: %w", err))
	}
	return m.(Counter)
}

// GetOrRegisterCounter returns an existing Counter or constructs and registers
// a new one.
func GetOrRegisterCounter(name string, r *Registry) Counter {
	m, err := orDefault(r).register(name, newCounter)
	if _, dup := err.(errDuplicate); err != nil && !dup {
		panic(fmt.Errorf("could not get or create new counter: %w", err))
	}
	return m.(Counter)
}

type counter struct {
	prometheus.Counter
}

func newCounter(name string) interface{} {
	return &counter{prometheus.NewCounter(prometheus.CounterOpts{Name: name})}
}

// Inc increments the counter by the given amount. Negative values are
// ignored.
func (c *counter) Inc(v int64) {
	if v > 0 {
		c.Add(float64(v))
	}
}

// Count returns the current count.
func (c *counter) Count() int64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		panic(fmt.Errorf("calling Count with invalid metric: %w", err))
	}
	return int64(m.GetCounter().GetValue())
}
