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
	"slices"
)

// Tree binds a root node to the set of variables it references.  The variable
// set is derived once, by a lexical scan of the tree, and held sorted in
// ascending order without duplicates.
type Tree struct {
	root Node
	// Variables referenced by root, sorted and without duplicates.
	variables []string
}

// NewTree constructs a tree around a given root node, deriving its variable
// set.
func NewTree(root Node) *Tree {
	variables := scanVariables(root, nil)
	// Sort and remove duplicates
	slices.Sort(variables)
	variables = slices.Compact(variables)
	//
	return &Tree{root, variables}
}

// Root returns the root node of this tree.
func (p *Tree) Root() Node {
	return p.root
}

// Variables returns the variables referenced by this tree, sorted in
// ascending order without duplicates.
func (p *Tree) Variables() []string {
	return p.variables
}

// Evaluate computes the boolean value of this tree under a given assignment.
func (p *Tree) Evaluate(assignment Assignment) (bool, error) {
	return Evaluate(p.root, assignment)
}

// String returns the infix rendering of this tree.
func (p *Tree) String() string {
	return p.root.String()
}

// Functional returns the prefix-call rendering of this tree.
func (p *Tree) Functional() string {
	return p.root.Functional()
}

// Collect every variable name referenced by a node, in lexical order and
// including duplicates.
func scanVariables(node Node, variables []string) []string {
	switch n := node.(type) {
	case *Variable:
		return append(variables, n.name)
	case *Expression:
		variables = scanVariables(n.left, variables)
		return scanVariables(n.right, variables)
	}
	//
	panic("unknown node encountered")
}
