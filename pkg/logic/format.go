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
	"strings"
)

// String returns the infix rendering of this variable, e.g. "x" or "NOT x".
func (p *Variable) String() string {
	if p.negated {
		return "NOT " + p.name
	}
	//
	return p.name
}

// Functional returns the prefix-call rendering of this variable, e.g. "x" or
// "not(x)".
func (p *Variable) Functional() string {
	if p.negated {
		return "not(" + p.name + ")"
	}
	//
	return p.name
}

// String returns the infix rendering of this expression, e.g. "a AND b" or
// "NOT (a AND b)".  Subtrees are bracketed only where required for the
// rendering to read back as the same expression: that is, when a subtree
// binds more loosely than this expression, or binds equally whilst sitting in
// the right operand position.
func (p *Expression) String() string {
	var builder strings.Builder
	//
	builder.WriteString(subString(p.left, p.operator, false))
	builder.WriteString(" ")
	builder.WriteString(p.operator.String())
	builder.WriteString(" ")
	builder.WriteString(subString(p.right, p.operator, true))
	//
	if p.negated {
		return "NOT (" + builder.String() + ")"
	}
	//
	return builder.String()
}

// Functional returns the prefix-call rendering of this expression, e.g.
// "and(a, b)" or "not(and(a, b))".
func (p *Expression) Functional() string {
	var builder strings.Builder
	//
	builder.WriteString(strings.ToLower(p.operator.String()))
	builder.WriteString("(")
	builder.WriteString(p.left.Functional())
	builder.WriteString(", ")
	builder.WriteString(p.right.Functional())
	builder.WriteString(")")
	//
	if p.negated {
		return "not(" + builder.String() + ")"
	}
	//
	return builder.String()
}

// Render a subtree of an expression with a given connective, bracketing it
// where necessary.  Negated expressions bracket themselves, and variables
// never need brackets since NOT binds tighter than any connective.
func subString(node Node, parent Operator, right bool) string {
	if e, ok := node.(*Expression); ok && !e.negated {
		if e.operator < parent || (e.operator == parent && right) {
			return "(" + e.String() + ")"
		}
	}
	//
	return node.String()
}
