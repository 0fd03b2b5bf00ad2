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
package logic

import (
	"fmt"
	"strings"
)

// Operator identifies one of the six binary connectives.  Operators are
// ordered by how tightly they bind, from loosest (OR) to tightest (NAND), and
// this ordering is what the parser and the display form agree on.
type Operator uint

// OR represents logical disjunction.
const OR Operator = 0

// AND represents logical conjunction.
const AND Operator = 1

// XOR represents exclusive disjunction.
const XOR Operator = 2

// XNOR represents the negation of exclusive disjunction.
const XNOR Operator = 3

// NOR represents the negation of disjunction.
const NOR Operator = 4

// NAND represents the negation of conjunction.
const NAND Operator = 5

// operator names, indexed by operator.
var operatorNames = []string{"OR", "AND", "XOR", "XNOR", "NOR", "NAND"}

// OperatorOf returns the operator with a given (case-insensitive) name, or
// false if the name matches no operator.
func OperatorOf(name string) (Operator, bool) {
	for i, n := range operatorNames {
		if strings.EqualFold(name, n) {
			return Operator(i), true
		}
	}
	//
	return 0, false
}

// Valid checks whether this operator is one of the six recognised
// connectives.  Invalid values can arise through explicit conversion.
func (p Operator) Valid() bool {
	return p <= NAND
}

// Combine applies this operator to a given pair of operands.
func (p Operator) Combine(lhs bool, rhs bool) bool {
	switch p {
	case OR:
		return lhs || rhs
	case NOR:
		return !(lhs || rhs)
	case AND:
		return lhs && rhs
	case NAND:
		return !(lhs && rhs)
	case XOR:
		return lhs != rhs
	case XNOR:
		return lhs == rhs
	}
	//
	panic("unreachable")
}

// String returns the (upper case) name of this operator.
func (p Operator) String() string {
	if p.Valid() {
		return operatorNames[p]
	}
	//
	return fmt.Sprintf("Operator(%d)", uint(p))
}
