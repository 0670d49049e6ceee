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

package tests

import (
	"fmt"
	"sort"

	"github.com/420integrated/go-420eof/params"
)

// Forks table defines supported forks and the revision they select. Test
// fixtures use the historical names, some of which are aliases.
var Forks = map[string]params.Revision{
	"Frontier":          params.Frontier,
	"Homestead":         params.Homestead,
	"EIP150":            params.TangerineWhistle,
	"TangerineWhistle":  params.TangerineWhistle,
	"EIP158":            params.SpuriousDragon,
	"SpuriousDragon":    params.SpuriousDragon,
	"Byzantium":         params.Byzantium,
	"Constantinople":    params.Constantinople,
	"ConstantinopleFix": params.Petersburg,
	"Petersburg":        params.Petersburg,
	"Istanbul":          params.Istanbul,
	"Berlin":            params.Berlin,
	"London":            params.London,
	"Merge":             params.Paris,
	"Paris":             params.Paris,
	"Shanghai":          params.Shanghai,
}

// Returns the set of defined fork names
func AvailableForks() []string {
	var availableForks []string
	for k := range Forks {
		availableForks = append(availableForks, k)
	}
	sort.Strings(availableForks)
	return availableForks
}

// GetRevision resolves a fork name to its revision.
func GetRevision(fork string) (params.Revision, error) {
	rev, ok := Forks[fork]
	if !ok {
		return 0, UnsupportedForkError{fork}
	}
	return rev, nil
}

// UnsupportedForkError is returned when a test requests a fork that isn't implemented.
type UnsupportedForkError struct {
	Name string
}

func (e UnsupportedForkError) Error() string {
	return fmt.Sprintf("unsupported fork %q", e.Name)
}
