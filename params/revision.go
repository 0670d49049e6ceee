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

package params

import (
	"fmt"
	"strings"
)

// Revision identifies a protocol upgrade. Revisions are ordered: a later
// revision includes every rule of the ones before it.
type Revision uint8

const (
	Frontier Revision = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	Berlin
	London
	Paris
	Shanghai

	// LatestRevision is the most recent revision known to this package.
	LatestRevision = Shanghai
)

var revisionNames = [...]string{
	Frontier:         "Frontier",
	Homestead:        "Homestead",
	TangerineWhistle: "TangerineWhistle",
	SpuriousDragon:   "SpuriousDragon",
	Byzantium:        "Byzantium",
	Constantinople:   "Constantinople",
	Petersburg:       "Petersburg",
	Istanbul:         "Istanbul",
	Berlin:           "Berlin",
	London:           "London",
	Paris:            "Paris",
	Shanghai:         "Shanghai",
}

// Revisions returns every known revision in activation order.
func Revisions() []Revision {
	revs := make([]Revision, 0, len(revisionNames))
	for r := Frontier; r <= LatestRevision; r++ {
		revs = append(revs, r)
	}
	return revs
}

func (r Revision) String() string {
	if r > LatestRevision {
		return fmt.Sprintf("Revision(%d)", uint8(r))
	}
	return revisionNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Revision) MarshalText() ([]byte, error) {
	if r > LatestRevision {
		return nil, fmt.Errorf("unknown revision %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Revision) UnmarshalText(input []byte) error {
	rev, err := ParseRevision(string(input))
	if err != nil {
		return err
	}
	*r = rev
	return nil
}

// ParseRevision resolves a revision by name. Matching is case-insensitive.
func ParseRevision(name string) (Revision, error) {
	for i, n := range revisionNames {
		if strings.EqualFold(n, name) {
			return Revision(i), nil
		}
	}
	return 0, fmt.Errorf("unknown revision %q", name)
}

// IsShanghai returns whether r includes the Shanghai rules, which is where
// the EVM object format becomes available.
func (r Revision) IsShanghai() bool { return r >= Shanghai }

func (r Revision) IsParis() bool            { return r >= Paris }
func (r Revision) IsLondon() bool           { return r >= London }
func (r Revision) IsBerlin() bool           { return r >= Berlin }
func (r Revision) IsIstanbul() bool         { return r >= Istanbul }
func (r Revision) IsPetersburg() bool       { return r >= Petersburg }
func (r Revision) IsConstantinople() bool   { return r >= Constantinople }
func (r Revision) IsByzantium() bool        { return r >= Byzantium }
func (r Revision) IsSpuriousDragon() bool   { return r >= SpuriousDragon }
func (r Revision) IsTangerineWhistle() bool { return r >= TangerineWhistle }
func (r Revision) IsHomestead() bool        { return r >= Homestead }
