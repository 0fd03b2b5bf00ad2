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
	"fmt"
	"testing"

	"github.com/consensys/go-boolex/pkg/logic"
	"github.com/consensys/go-boolex/pkg/logic/bexp"
)

func Test_Table_01(t *testing.T) {
	checkEnumerate(t, "a or b", "0111")
}

func Test_Table_02(t *testing.T) {
	checkEnumerate(t, "a and b", "0001")
}

func Test_Table_03(t *testing.T) {
	checkEnumerate(t, "not a", "10")
}

func Test_Table_04(t *testing.T) {
	rows := enumerateExpr(t, "a and b or a and c")
	// Three variables give eight rows
	if len(rows) != 8 {
		t.Errorf("enumerated %d rows, expected 8", len(rows))
	}
	// Row a=1, b=0, c=1 sits at index 5
	row := rows[5]
	//
	if !row.Assignment["a"] || row.Assignment["b"] || !row.Assignment["c"] {
		t.Errorf("unexpected assignment %v at index 5", row.Assignment)
	}
	//
	if !row.Value {
		t.Errorf("expected true at a=1, b=0, c=1")
	}
}

func Test_Table_05(t *testing.T) {
	var (
		rows = enumerateExpr(t, "a and b or b and c")
		seen = make(map[string]bool)
	)
	// Every bit pattern appears exactly once, in ascending order
	for i, row := range rows {
		key := fmt.Sprintf("%t:%t:%t", row.Assignment["a"], row.Assignment["b"], row.Assignment["c"])
		//
		if seen[key] {
			t.Errorf("assignment %v duplicated at index %d", row.Assignment, i)
		}
		//
		seen[key] = true
	}
	//
	if len(seen) != 8 {
		t.Errorf("saw %d distinct assignments, expected 8", len(seen))
	}
}

func Test_Table_06(t *testing.T) {
	// Leftmost variable is the most significant bit
	rows := enumerateExpr(t, "a or b")
	//
	if rows[1].Assignment["a"] || !rows[1].Assignment["b"] {
		t.Errorf("unexpected assignment %v at index 1", rows[1].Assignment)
	}
	//
	if !rows[2].Assignment["a"] || rows[2].Assignment["b"] {
		t.Errorf("unexpected assignment %v at index 2", rows[2].Assignment)
	}
}

// Formatting

func Test_Table_10(t *testing.T) {
	checkFormat(t, "a or b",
		"| a | b | a OR b |",
		"+---+---+--------+",
		"| 0 | 0 |   0    |",
		"| 0 | 1 |   1    |",
		"| 1 | 0 |   1    |",
		"| 1 | 1 |   1    |")
}

func Test_Table_11(t *testing.T) {
	checkFormat(t, "not a",
		"| a | NOT a |",
		"+---+-------+",
		"| 0 |   1   |",
		"| 1 |   0   |")
}

func Test_Table_12(t *testing.T) {
	checkFormat(t, "a * (b + c)",
		"| a | b | c | a AND (b OR c) |",
		"+---+---+---+----------------+",
		"| 0 | 0 | 0 |       0        |",
		"| 0 | 0 | 1 |       0        |",
		"| 0 | 1 | 0 |       0        |",
		"| 0 | 1 | 1 |       0        |",
		"| 1 | 0 | 0 |       0        |",
		"| 1 | 0 | 1 |       1        |",
		"| 1 | 1 | 0 |       1        |",
		"| 1 | 1 | 1 |       1        |")
}

func Test_Table_13(t *testing.T) {
	tree := parseExpr(t, "a or b")
	//
	text, err := Format(tree)
	//
	if err != nil {
		t.Errorf("formatting failed (%v)", err)
	}
	//
	expected := "| a | b | a OR b |\n+---+---+--------+\n| 0 | 0 |   0    |\n" +
		"| 0 | 1 |   1    |\n| 1 | 0 |   1    |\n| 1 | 1 |   1    |\n"
	//
	if text != expected {
		t.Errorf("unexpected table:\n%s", text)
	}
}

// ============================================================================
// Framework
// ============================================================================

// Check the value column of a given expression against an expected vector of
// 1s and 0s, one per row in ascending binary order.
func checkEnumerate(t *testing.T, input string, expected string) {
	rows := enumerateExpr(t, input)
	//
	if len(rows) != len(expected) {
		t.Errorf("enumerated %d rows, expected %d", len(rows), len(expected))
		t.FailNow()
	}
	//
	for i, row := range rows {
		if row.Value != (expected[i] == '1') {
			t.Errorf("row %d of %q gave %t, expected %c", i, input, row.Value, expected[i])
		}
	}
}

func checkFormat(t *testing.T, input string, expected ...string) {
	lines, err := FormatRows(parseExpr(t, input))
	//
	if err != nil {
		t.Errorf("formatting %q failed (%v)", input, err)
		t.FailNow()
	}
	//
	if len(lines) != len(expected) {
		t.Errorf("formatted %d lines, expected %d", len(lines), len(expected))
		t.FailNow()
	}
	//
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("line %d was %q, expected %q", i, line, expected[i])
		}
	}
}

func enumerateExpr(t *testing.T, input string) []Row {
	rows, err := Enumerate(parseExpr(t, input))
	//
	if err != nil {
		t.Errorf("enumerating %q failed (%v)", input, err)
		t.FailNow()
	}
	//
	return rows
}

func parseExpr(t *testing.T, input string) *logic.Tree {
	tree, errs := bexp.Parse(input)
	//
	if len(errs) != 0 {
		t.Errorf("input %q rejected (%s)", input, errs[0].Message())
		t.FailNow()
	}
	//
	return tree
}
