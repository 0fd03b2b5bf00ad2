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
	"strings"

	"github.com/consensys/go-boolex/pkg/logic"
)

// Row pairs one complete variable assignment with the value the expression
// takes under it.
type Row struct {
	// Assignment of every variable for this row.
	Assignment logic.Assignment
	// Value of the expression under the assignment.
	Value bool
}

// Enumerate all assignments of a given tree in ascending binary order, where
// the leftmost variable is the most significant bit.  Thus, for n variables,
// row i assigns variables[j] the value of bit n-1-j of i, giving exactly 2^n
// rows.
func Enumerate(tree *logic.Tree) ([]Row, error) {
	var (
		variables = tree.Variables()
		n         = len(variables)
		rows      = make([]Row, 1<<n)
	)
	//
	for i := range rows {
		assignment := make(logic.Assignment, n)
		//
		for j, variable := range variables {
			assignment[variable] = i&(1<<(n-1-j)) != 0
		}
		//
		value, err := tree.Evaluate(assignment)
		//
		if err != nil {
			return nil, err
		}
		//
		rows[i] = Row{assignment, value}
	}
	//
	return rows, nil
}

// FormatRows renders the truth table of a given tree as lines of text: a
// header labelling each column with its variable (and the expression itself
// for the result column), a separator, and one line per assignment with 1 or
// 0 centred beneath each label.
func FormatRows(tree *logic.Tree) ([]string, error) {
	var (
		variables = tree.Variables()
		display   = tree.String()
		lines     = make([]string, 0, (1<<len(variables))+2)
		cells     = make([]string, len(variables))
	)
	//
	rows, err := Enumerate(tree)
	//
	if err != nil {
		return nil, err
	}
	// Header row (e.g. "| a | b | a OR b |")
	lines = append(lines, fmt.Sprintf("| %s | %s |",
		strings.Join(variables, " | "), display))
	// Separator row (e.g. "+---+---+--------+")
	for i, variable := range variables {
		cells[i] = strings.Repeat("-", len(variable))
	}
	//
	lines = append(lines, fmt.Sprintf("+-%s-+-%s-+",
		strings.Join(cells, "-+-"), strings.Repeat("-", len(display))))
	// Data rows
	for _, row := range rows {
		for i, variable := range variables {
			cells[i] = center(bit(row.Assignment[variable]), len(variable))
		}
		//
		lines = append(lines, fmt.Sprintf("| %s | %s |",
			strings.Join(cells, " | "), center(bit(row.Value), len(display))))
	}
	//
	return lines, nil
}

// Format renders the truth table of a given tree as a single newline
// terminated string.
func Format(tree *logic.Tree) (string, error) {
	lines, err := FormatRows(tree)
	//
	if err != nil {
		return "", err
	}
	//
	return strings.Join(lines, "\n") + "\n", nil
}

func bit(value bool) string {
	if value {
		return "1"
	}
	//
	return "0"
}

// Centre text within a field of a given width, placing any odd space on the
// right.
func center(text string, width int) string {
	n := width - len(text)
	//
	if n <= 0 {
		return text
	}
	//
	left := n / 2
	//
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", n-left)
}
