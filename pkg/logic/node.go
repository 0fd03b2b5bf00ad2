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

// Node represents an immutable expression tree.  A node is either a variable
// (leaf) or an expression combining two subtrees with a binary connective,
// and either kind may carry an additional negation.  Nodes are never mutated
// in place; operations which change a node return a fresh one, and subtrees
// may be shared freely between trees as a result.
type Node interface {
	// Negated reports whether this node carries a negation.
	Negated() bool
	// Negate returns this node with its negation flipped.
	Negate() Node
	// Equal determines whether this node is structurally identical to
	// another.
	Equal(Node) bool
	// String returns the infix rendering of this node.
	String() string
	// Functional returns the prefix-call rendering of this node.
	Functional() string
}

// ============================================================================
// Variable
// ============================================================================

// Variable is a leaf node referencing a single named boolean input.
type Variable struct {
	name    string
	negated bool
}

// NewVariable constructs a (possibly negated) variable with a given name.
// Names must be exactly one alphanumeric character.
func NewVariable(name string, negated bool) (*Variable, error) {
	if !validName(name) {
		return nil, &InvalidNameError{name}
	}
	//
	return &Variable{name, negated}, nil
}

// Name returns the name of the boolean input this variable references.
func (p *Variable) Name() string {
	return p.name
}

// Negated reports whether this variable carries a negation.
func (p *Variable) Negated() bool {
	return p.negated
}

// Negate returns this variable with its negation flipped.
func (p *Variable) Negate() Node {
	return &Variable{p.name, !p.negated}
}

// Equal determines whether this node is structurally identical to another.
func (p *Variable) Equal(other Node) bool {
	if o, ok := other.(*Variable); ok {
		return p.name == o.name && p.negated == o.negated
	}
	//
	return false
}

// ============================================================================
// Expression
// ============================================================================

// Expression is a node combining two subtrees with one of the six binary
// connectives.  Observe that NAND, NOR and XNOR are connectives in their own
// right, not negations of AND, OR and XOR: the negation flag always means one
// further NOT layered on top of whatever this node otherwise evaluates to.
type Expression struct {
	operator Operator
	left     Node
	right    Node
	negated  bool
}

// NewExpression constructs a (possibly negated) expression combining two
// given subtrees with a given connective.
func NewExpression(operator Operator, left Node, right Node, negated bool) (*Expression, error) {
	if !operator.Valid() {
		return nil, &InvalidOperatorError{operator.String()}
	} else if left == nil || right == nil {
		panic("expression with missing operand")
	}
	//
	return &Expression{operator, left, right, negated}, nil
}

// Operator returns the connective combining the two subtrees of this
// expression.
func (p *Expression) Operator() Operator {
	return p.operator
}

// Left returns the left subtree of this expression.
func (p *Expression) Left() Node {
	return p.left
}

// Right returns the right subtree of this expression.
func (p *Expression) Right() Node {
	return p.right
}

// Negated reports whether this expression carries a negation.
func (p *Expression) Negated() bool {
	return p.negated
}

// Negate returns this expression with its negation flipped.
func (p *Expression) Negate() Node {
	return &Expression{p.operator, p.left, p.right, !p.negated}
}

// Equal determines whether this node is structurally identical to another.
func (p *Expression) Equal(other Node) bool {
	if o, ok := other.(*Expression); ok {
		return p.operator == o.operator && p.negated == o.negated &&
			p.left.Equal(o.left) && p.right.Equal(o.right)
	}
	//
	return false
}

// Valid variable names are single alphanumeric characters.
func validName(name string) bool {
	runes := []rune(name)
	//
	if len(runes) != 1 {
		return false
	}
	//
	c := runes[0]
	//
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
