// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package truthtable

import (
	"github.com/consensys/go-boolex/pkg/logic"
)

// Minimizer reduces a boolean function over a given variable ordering to a
// minimal textual expression.  The function itself is described by the
// ascending truth table row indices at which it holds.  For a maxterm
// reduction, those are the rows at which the original expression is false.
// Implementations live outside this package, and must be deterministic for
// identical inputs.
type Minimizer interface {
	Minimize(variables []string, trueAt []uint, maxterm bool) (string, error)
}

// Mode determines which reduction Simplify reports.
type Mode uint

const (
	// SHORTEST reports whichever of the minterm and maxterm reductions is
	// textually shorter, preferring the minterm reduction on a tie.
	SHORTEST Mode = iota
	// MINTERM reports the minterm (sum of products) reduction.
	MINTERM
	// MAXTERM reports the maxterm (product of sums) reduction.
	MAXTERM
)

// Simplify a given tree by delegating to a minimizer.  The minimizer is
// always applied exactly twice, once per polarity, with the mode then
// selecting which result is reported.
func Simplify(tree *logic.Tree, mode Mode, minimizer Minimizer) (string, error) {
	var minterms, maxterms []uint
	//
	rows, err := Enumerate(tree)
	//
	if err != nil {
		return "", err
	}
	//
	for i, row := range rows {
		if row.Value {
			minterms = append(minterms, uint(i))
		} else {
			maxterms = append(maxterms, uint(i))
		}
	}
	//
	minText, err := minimizer.Minimize(tree.Variables(), minterms, false)
	//
	if err != nil {
		return "", err
	}
	//
	maxText, err := minimizer.Minimize(tree.Variables(), maxterms, true)
	//
	if err != nil {
		return "", err
	}
	//
	switch mode {
	case MINTERM:
		return minText, nil
	case MAXTERM:
		return maxText, nil
	}
	// Prefer the minterm reduction on a tie
	if len(maxText) < len(minText) {
		return maxText, nil
	}
	//
	return minText, nil
}
