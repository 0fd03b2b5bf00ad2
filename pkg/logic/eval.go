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

// Assignment maps variable names to boolean values.  An assignment is
// complete for a given tree when every variable referenced by the tree is
// present.
type Assignment map[string]bool

// Evaluate computes the boolean value of a given node under a given
// assignment.  Every variable referenced by the node must be assigned,
// otherwise evaluation fails with an UnboundVariableError.
func Evaluate(node Node, assignment Assignment) (bool, error) {
	switch n := node.(type) {
	case *Variable:
		val, ok := assignment[n.name]
		//
		if !ok {
			return false, &UnboundVariableError{n.name}
		}
		// Apply any negation
		return val != n.negated, nil
	case *Expression:
		lhs, err := Evaluate(n.left, assignment)
		//
		if err != nil {
			return false, err
		}
		//
		rhs, err := Evaluate(n.right, assignment)
		//
		if err != nil {
			return false, err
		}
		// Apply any negation
		return n.operator.Combine(lhs, rhs) != n.negated, nil
	}
	//
	panic("unknown node encountered")
}
