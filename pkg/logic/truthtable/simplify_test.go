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
	"errors"
	"slices"
	"testing"
)

func Test_Simplify_01(t *testing.T) {
	var (
		minimizer = &stubMinimizer{minText: "a", maxText: "b"}
		tree      = parseExpr(t, "a and b or a and c")
	)
	//
	if _, err := Simplify(tree, SHORTEST, minimizer); err != nil {
		t.Errorf("simplification failed (%v)", err)
	}
	// Both polarities are reduced, minterms first
	if len(minimizer.calls) != 2 {
		t.Errorf("minimizer called %d times, expected 2", len(minimizer.calls))
		t.FailNow()
	}
	//
	checkCall(t, minimizer.calls[0], []string{"a", "b", "c"}, []uint{5, 6, 7}, false)
	checkCall(t, minimizer.calls[1], []string{"a", "b", "c"}, []uint{0, 1, 2, 3, 4}, true)
}

func Test_Simplify_02(t *testing.T) {
	checkSimplify(t, MINTERM, "a and b", "min", "max", "min")
}

func Test_Simplify_03(t *testing.T) {
	checkSimplify(t, MAXTERM, "a and b", "min", "max", "max")
}

func Test_Simplify_04(t *testing.T) {
	checkSimplify(t, SHORTEST, "a and b", "a", "a + b", "a")
}

func Test_Simplify_05(t *testing.T) {
	checkSimplify(t, SHORTEST, "a and b", "a + b", "a", "a")
}

func Test_Simplify_06(t *testing.T) {
	// Ties fall to the minterm reduction
	checkSimplify(t, SHORTEST, "a and b", "x", "y", "x")
}

func Test_Simplify_07(t *testing.T) {
	var (
		failure   = errors.New("no reduction")
		minimizer = &stubMinimizer{err: failure}
	)
	//
	if _, err := Simplify(parseExpr(t, "a or b"), SHORTEST, minimizer); err == nil {
		t.Errorf("expected minimizer failure to propagate")
	}
}

func Test_Simplify_08(t *testing.T) {
	var (
		minimizer = &stubMinimizer{minText: "0", maxText: "1"}
		tree      = parseExpr(t, "a and not a")
	)
	// A contradiction has no minterms at all
	if _, err := Simplify(tree, SHORTEST, minimizer); err != nil {
		t.Errorf("simplification failed (%v)", err)
	}
	//
	checkCall(t, minimizer.calls[0], []string{"a"}, nil, false)
	checkCall(t, minimizer.calls[1], []string{"a"}, []uint{0, 1}, true)
}

// ============================================================================
// Framework
// ============================================================================

type minimizeCall struct {
	variables []string
	trueAt    []uint
	maxterm   bool
}

// stubMinimizer records every call made of it, returning canned results.
type stubMinimizer struct {
	calls   []minimizeCall
	minText string
	maxText string
	err     error
}

func (p *stubMinimizer) Minimize(variables []string, trueAt []uint, maxterm bool) (string, error) {
	p.calls = append(p.calls, minimizeCall{variables, trueAt, maxterm})
	//
	if p.err != nil {
		return "", p.err
	} else if maxterm {
		return p.maxText, nil
	}
	//
	return p.minText, nil
}

func checkSimplify(t *testing.T, mode Mode, input string, minText string, maxText string, expected string) {
	minimizer := &stubMinimizer{minText: minText, maxText: maxText}
	//
	actual, err := Simplify(parseExpr(t, input), mode, minimizer)
	//
	if err != nil {
		t.Errorf("simplification failed (%v)", err)
	} else if actual != expected {
		t.Errorf("simplified to %q, expected %q", actual, expected)
	}
}

func checkCall(t *testing.T, call minimizeCall, variables []string, trueAt []uint, maxterm bool) {
	if !slices.Equal(call.variables, variables) {
		t.Errorf("minimizer given variables %v, expected %v", call.variables, variables)
	}
	//
	if !slices.Equal(call.trueAt, trueAt) {
		t.Errorf("minimizer given rows %v, expected %v", call.trueAt, trueAt)
	}
	//
	if call.maxterm != maxterm {
		t.Errorf("minimizer given maxterm=%t, expected %t", call.maxterm, maxterm)
	}
}
