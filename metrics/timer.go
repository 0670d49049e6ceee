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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Timer captures the duration of events.
type Timer interface {
	Update(time.Duration)
	UpdateSince(time.Time)
	Count() int64
	Total() time.Duration
}

// NewRegisteredTimer constructs and registers a new Timer. It panics if the
// name, or the Prometheus name it maps to, is already taken.
func NewRegisteredTimer(name string, r *Registry) Timer {
	m, err := orDefault(r).register(name, newTimer)
	if err != nil {
		panic(fmt.Errorf("could not create new timer: %w", err))
	}
	return m.(Timer)
}

// GetOrRegisterTimer returns an existing Timer or constructs and registers a
// new one.
func GetOrRegisterTimer(name string, r *Registry) Timer {
	m, err := orDefault(r).register(name, newTimer)
	if _, dup := err.(errDuplicate); err != nil && !dup {
		panic(fmt.Errorf("could not get or create new timer: %w", err))
	}
	return m.(Timer)
}

type timer struct {
	prometheus.Histogram
}

func newTimer(name string) interface{} {
	return &timer{prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    name,
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	})}
}

// Update records the duration of an event.
func (t *timer) Update(d time.Duration) {
	t.Observe(d.Seconds())
}

// UpdateSince records the duration of an event that started at ts.
func (t *timer) UpdateSince(ts time.Time) {
	t.Update(time.Since(ts))
}

// Count returns the number of recorded events.
func (t *timer) Count() int64 {
	return int64(t.histogram().GetSampleCount())
}

// Total returns the sum of all recorded durations.
func (t *timer) Total() time.Duration {
	return time.Duration(t.histogram().GetSampleSum() * float64(time.Second))
}

func (t *timer) histogram() *dto.Histogram {
	var m dto.Metric
	if err := t.Write(&m); err != nil {
		panic(fmt.Errorf("reading timer: %w", err))
	}
	return m.GetHistogram()
}
