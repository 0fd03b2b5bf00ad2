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
)

// InvalidNameError indicates an attempt to construct a variable whose name is
// not exactly one alphanumeric character.
type InvalidNameError struct {
	// Name is the offending variable name.
	Name string
}

func (p *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid variable name %q", p.Name)
}

// InvalidOperatorError indicates an attempt to construct an expression from
// something which is not one of the six recognised connectives.
type InvalidOperatorError struct {
	// Operator is the offending operator (as text).
	Operator string
}

func (p *InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator %q", p.Operator)
}

// UnboundVariableError indicates an evaluation over an assignment which lacks
// a variable referenced by the expression.  Evaluation never defaults a
// missing variable.
type UnboundVariableError struct {
	// Name is the unassigned variable.
	Name string
}

func (p *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", p.Name)
}

// MalformedInterchangeError indicates that a nested mapping does not describe
// a valid expression, for example because a discriminant key is missing or
// because both discriminants are present at once.
type MalformedInterchangeError struct {
	// Message describes what was malformed.
	Message string
}

func (p *MalformedInterchangeError) Error() string {
	return fmt.Sprintf("malformed interchange form: %s", p.Message)
}
