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
package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir determines the (relative) location of the repository-level test
// directory, which holds example suites shipped alongside the binary.
const TestDir = "../../../testdata"

func Test_Suite_01(t *testing.T) {
	s, err := Load("testdata/core.yaml")
	//
	require.NoError(t, err)
	assert.Equal(t, "core", s.Name)
	assert.Len(t, s.Cases, 13)
	assert.Empty(t, s.Run())
}

func Test_Suite_02(t *testing.T) {
	s, err := Load("testdata/errors.yaml")
	//
	require.NoError(t, err)
	assert.Empty(t, s.Run())
}

func Test_Suite_03(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	//
	assert.Error(t, err)
}

func Test_Suite_04(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("cases: \"not a list\""), 0600))
	//
	_, err := Load(filename)
	//
	assert.Error(t, err)
}

func Test_Suite_05(t *testing.T) {
	s, err := Load(filepath.Join(TestDir, "examples.yaml"))
	//
	require.NoError(t, err)
	assert.Empty(t, s.Run())
}

// Failing expectations

func Test_Suite_10(t *testing.T) {
	s := Suite{Name: "bad", Cases: []Case{
		{Name: "wrong display", Input: "a or b", Display: "a AND b"},
	}}
	//
	assert.Len(t, s.Run(), 1)
}

func Test_Suite_11(t *testing.T) {
	c := Case{Name: "accepted", Input: "a or b", Invalid: true}
	//
	assert.Len(t, c.Run(), 1)
}

func Test_Suite_12(t *testing.T) {
	c := Case{Name: "rejected", Input: "a + + b", Display: "a OR b"}
	//
	assert.Len(t, c.Run(), 1)
}

func Test_Suite_13(t *testing.T) {
	c := Case{Name: "wrong truth", Input: "a or b", Truth: "0001"}
	//
	assert.Len(t, c.Run(), 1)
}

func Test_Suite_14(t *testing.T) {
	c := Case{Name: "wrong variables", Input: "a or b", Variables: []string{"a", "c"}}
	//
	assert.Len(t, c.Run(), 1)
}

func Test_Suite_15(t *testing.T) {
	// Claimed equivalent over different variables
	c := Case{Name: "mismatched", Input: "a or b", Equivalent: []string{"a or c"}}
	//
	assert.Len(t, c.Run(), 1)
}

func Test_Suite_16(t *testing.T) {
	// Claimed equivalent differing at some assignment
	c := Case{Name: "inequivalent", Input: "a or b", Equivalent: []string{"a and b"}}
	//
	assert.Len(t, c.Run(), 1)
}

func Test_Suite_17(t *testing.T) {
	// Several expectations can fail at once
	c := Case{Name: "doubly wrong", Input: "a or b", Display: "a AND b", Functional: "and(a, b)"}
	//
	assert.Len(t, c.Run(), 2)
}

func Test_Suite_18(t *testing.T) {
	c := Case{
		Name:       "all good",
		Input:      "not a or b",
		Display:    "NOT a OR b",
		Functional: "or(not(a), b)",
		Variables:  []string{"a", "b"},
		Truth:      "1101",
		Equivalent: []string{"b or not a", "(not a) + b"},
	}
	//
	assert.Empty(t, c.Run())
}
