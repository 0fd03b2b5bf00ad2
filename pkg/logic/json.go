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
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"
)

// The interchange form of an expression is a nested mapping.  A variable maps
// to {name, negated} and an expression to {operator, left, right, negated},
// where left and right are themselves interchange forms.  The name and
// operator keys discriminate the two kinds, hence exactly one of them must be
// present.  A missing negated key is read as false.

// ToMap converts a given node into its interchange form.
func ToMap(node Node) map[string]any {
	switch n := node.(type) {
	case *Variable:
		return map[string]any{
			"name":    n.name,
			"negated": n.negated,
		}
	case *Expression:
		return map[string]any{
			"operator": n.operator.String(),
			"left":     ToMap(n.left),
			"right":    ToMap(n.right),
			"negated":  n.negated,
		}
	}
	//
	panic("unknown node encountered")
}

// FromMap reconstructs a node from its interchange form, such that
// FromMap(ToMap(n)) is structurally identical to n for every valid node.
func FromMap(mapping map[string]any) (Node, error) {
	var (
		_, hasName     = mapping["name"]
		_, hasOperator = mapping["operator"]
	)
	//
	switch {
	case hasName && hasOperator:
		return nil, &MalformedInterchangeError{"both name and operator present"}
	case hasName:
		return variableFromMap(mapping)
	case hasOperator:
		return expressionFromMap(mapping)
	}
	//
	return nil, &MalformedInterchangeError{"neither name nor operator present"}
}

// ToJSON converts a given node into its interchange form, rendered as JSON.
func ToJSON(node Node) ([]byte, error) {
	return json.Marshal(ToMap(node))
}

// FromJSON reconstructs a node from its interchange form, rendered as JSON.
func FromJSON(bytes []byte) (Node, error) {
	parser := parsers.Get()
	defer parsers.Put(parser)
	// Parse bytes as raw JSON
	value, err := parser.ParseBytes(bytes)
	//
	if err != nil {
		return nil, &MalformedInterchangeError{err.Error()}
	}
	//
	return fromValue(value)
}

var parsers fastjson.ParserPool

// ============================================================================
// Decoding (mappings)
// ============================================================================

func variableFromMap(mapping map[string]any) (Node, error) {
	name, ok := mapping["name"].(string)
	//
	if !ok {
		return nil, &MalformedInterchangeError{"name must be a string"}
	}
	//
	negated, err := negatedFromMap(mapping)
	//
	if err != nil {
		return nil, err
	}
	//
	variable, err := NewVariable(name, negated)
	//
	if err != nil {
		return nil, err
	}
	//
	return variable, nil
}

func expressionFromMap(mapping map[string]any) (Node, error) {
	text, ok := mapping["operator"].(string)
	//
	if !ok {
		return nil, &MalformedInterchangeError{"operator must be a string"}
	}
	//
	operator, ok := OperatorOf(text)
	//
	if !ok {
		return nil, &InvalidOperatorError{text}
	}
	//
	left, err := operandFromMap(mapping, "left")
	//
	if err != nil {
		return nil, err
	}
	//
	right, err := operandFromMap(mapping, "right")
	//
	if err != nil {
		return nil, err
	}
	//
	negated, err := negatedFromMap(mapping)
	//
	if err != nil {
		return nil, err
	}
	//
	expression, err := NewExpression(operator, left, right, negated)
	//
	if err != nil {
		return nil, err
	}
	//
	return expression, nil
}

func operandFromMap(mapping map[string]any, key string) (Node, error) {
	operand, ok := mapping[key]
	//
	if !ok {
		return nil, &MalformedInterchangeError{fmt.Sprintf("missing operand %q", key)}
	}
	//
	submap, ok := operand.(map[string]any)
	//
	if !ok {
		return nil, &MalformedInterchangeError{fmt.Sprintf("operand %q must be a mapping", key)}
	}
	//
	return FromMap(submap)
}

func negatedFromMap(mapping map[string]any) (bool, error) {
	raw, ok := mapping["negated"]
	//
	if !ok {
		// Absent negation reads as false
		return false, nil
	}
	//
	negated, ok := raw.(bool)
	//
	if !ok {
		return false, &MalformedInterchangeError{"negated must be a boolean"}
	}
	//
	return negated, nil
}

// ============================================================================
// Decoding (JSON)
// ============================================================================

func fromValue(value *fastjson.Value) (Node, error) {
	if value.Type() != fastjson.TypeObject {
		return nil, &MalformedInterchangeError{"expected a mapping"}
	}
	//
	var (
		hasName     = value.Exists("name")
		hasOperator = value.Exists("operator")
	)
	//
	switch {
	case hasName && hasOperator:
		return nil, &MalformedInterchangeError{"both name and operator present"}
	case hasName:
		return variableFromValue(value)
	case hasOperator:
		return expressionFromValue(value)
	}
	//
	return nil, &MalformedInterchangeError{"neither name nor operator present"}
}

func variableFromValue(value *fastjson.Value) (Node, error) {
	name := value.GetStringBytes("name")
	//
	if name == nil {
		return nil, &MalformedInterchangeError{"name must be a string"}
	}
	//
	negated, err := negatedFromValue(value)
	//
	if err != nil {
		return nil, err
	}
	//
	variable, err := NewVariable(string(name), negated)
	//
	if err != nil {
		return nil, err
	}
	//
	return variable, nil
}

func expressionFromValue(value *fastjson.Value) (Node, error) {
	text := value.GetStringBytes("operator")
	//
	if text == nil {
		return nil, &MalformedInterchangeError{"operator must be a string"}
	}
	//
	operator, ok := OperatorOf(string(text))
	//
	if !ok {
		return nil, &InvalidOperatorError{string(text)}
	}
	//
	left, err := operandFromValue(value, "left")
	//
	if err != nil {
		return nil, err
	}
	//
	right, err := operandFromValue(value, "right")
	//
	if err != nil {
		return nil, err
	}
	//
	negated, err := negatedFromValue(value)
	//
	if err != nil {
		return nil, err
	}
	//
	expression, err := NewExpression(operator, left, right, negated)
	//
	if err != nil {
		return nil, err
	}
	//
	return expression, nil
}

func operandFromValue(value *fastjson.Value, key string) (Node, error) {
	operand := value.Get(key)
	//
	if operand == nil {
		return nil, &MalformedInterchangeError{fmt.Sprintf("missing operand %q", key)}
	}
	//
	return fromValue(operand)
}

func negatedFromValue(value *fastjson.Value) (bool, error) {
	negated := value.Get("negated")
	//
	if negated == nil {
		// Absent negation reads as false
		return false, nil
	}
	//
	switch negated.Type() {
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	}
	//
	return false, &MalformedInterchangeError{"negated must be a boolean"}
}
