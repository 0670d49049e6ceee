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

// Package metrics exposes process metrics through a Prometheus registry while
// keeping the path-style metric names used throughout the code base
// ("eof/validate/success").
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultRegistry is the registry used when nil is passed to the
// NewRegistered* and GetOrRegister* constructors.
var DefaultRegistry = NewRegistry()

// Registry holds named metrics and the Prometheus registry they are
// collected by.
type Registry struct {
	mu      sync.Mutex
	metrics map[string]interface{}
	owners  map[string]string // prometheus name -> metric name
	prom    *prometheus.Registry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]interface{}),
		owners:  make(map[string]string),
		prom:    prometheus.NewRegistry(),
	}
}

// Gatherer returns the Prometheus view of the registry, for use with an
// exposition handler.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.prom
}

// Get returns the metric registered under name, or nil.
func (r *Registry) Get(name string) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.metrics[name]
}

// Each calls fn for every registered metric in name order.
func (r *Registry) Each(fn func(name string, metric interface{})) {
	r.mu.Lock()
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	metrics := make(map[string]interface{}, len(r.metrics))
	for k, v := range r.metrics {
		metrics[k] = v
	}
	r.mu.Unlock()

	sort.Strings(names)
	for _, name := range names {
		fn(name, metrics[name])
	}
}

// Unregister removes the metric registered under name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.metrics[name].(prometheus.Collector); ok {
		r.prom.Unregister(m)
	}
	if _, ok := r.metrics[name]; ok {
		delete(r.owners, promName(name))
	}
	delete(r.metrics, name)
}

// register adds the metric built by create under name. If a metric with the
// name exists it is returned together with an errDuplicate. Names that only
// differ in characters promName replaces cannot both be registered.
func (r *Registry) register(name string, create func(promName string) interface{}) (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.metrics[name]; ok {
		return m, errDuplicate(name)
	}
	pname := promName(name)
	if owner, ok := r.owners[pname]; ok {
		return nil, &NameCollisionError{Name: name, Owner: owner, PromName: pname}
	}
	m := create(pname)
	if c, ok := m.(prometheus.Collector); ok {
		if err := r.prom.Register(c); err != nil {
			return nil, fmt.Errorf("could not register %s: %w", name, err)
		}
	}
	r.metrics[name] = m
	r.owners[pname] = name
	return m, nil
}

// NameCollisionError is returned when a metric name maps to the same
// Prometheus name as an already registered metric.
type NameCollisionError struct {
	Name     string
	Owner    string
	PromName string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("metric %s collides with %s (both export as %s)", e.Name, e.Owner, e.PromName)
}

type errDuplicate string

func (name errDuplicate) Error() string {
	return fmt.Sprintf("duplicate metric: %s", string(name))
}

// promName converts a path-style metric name into a valid Prometheus one.
func promName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		}
		return '_'
	}, name)
}

func orDefault(r *Registry) *Registry {
	if r == nil {
		return DefaultRegistry
	}
	return r
}
