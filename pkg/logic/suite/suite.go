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

// Package suite provides declarative checks over the expression toolchain.
// A suite is a YAML file of cases, where each case names an input expression
// along with expectations about it: how it renders, which variables it
// ranges over, its truth vector, other expressions it is equivalent to, or
// simply that it must be rejected.
package suite

import (
	"os"
	"slices"
	"strings"

	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/consensys/go-boolex/pkg/logic"
	"github.com/consensys/go-boolex/pkg/logic/bexp"
	"github.com/consensys/go-boolex/pkg/logic/truthtable"
)

// Case describes one input expression and the expectations held over it.
// All expectations are optional, and only those given are checked.
type Case struct {
	// Name identifies this case within its suite.
	Name string `yaml:"name"`
	// Input expression handed to the parser.
	Input string `yaml:"input"`
	// Invalid indicates the input must be rejected with a syntax error.
	Invalid bool `yaml:"invalid,omitempty"`
	// Display gives the expected infix rendering.
	Display string `yaml:"display,omitempty"`
	// Functional gives the expected prefix rendering.
	Functional string `yaml:"functional,omitempty"`
	// Variables gives the expected variable ordering.
	Variables []string `yaml:"variables,omitempty"`
	// Truth gives the expected truth vector, one 1 or 0 per truth table row
	// in ascending binary order.
	Truth string `yaml:"truth,omitempty"`
	// Equivalent lists expressions which must evaluate identically to the
	// input under every assignment.
	Equivalent []string `yaml:"equivalent,omitempty"`
}

// Suite is a named collection of cases, usually loaded from a YAML file.
type Suite struct {
	Name  string `yaml:"suite"`
	Cases []Case `yaml:"cases"`
}

// Load a suite from a given YAML file.
func Load(path string) (*Suite, error) {
	var s Suite
	//
	bytes, err := os.ReadFile(path)
	//
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to read suite %#v", path)
	}
	//
	if err := yaml.Unmarshal(bytes, &s); err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to parse suite %#v", path)
	}
	//
	return &s, nil
}

// Run every case in this suite, reporting one error per failed expectation.
// An empty result means the suite passed.
func (p *Suite) Run() []error {
	var errs []error
	//
	log.Debugf("running suite %q (%d cases)", p.Name, len(p.Cases))
	//
	for _, c := range p.Cases {
		errs = append(errs, c.Run()...)
	}
	//
	return errs
}

// Run all expectations held by this case.
func (p *Case) Run() []error {
	log.Debugf("checking case %q", p.Name)
	//
	tree, syntaxErrs := bexp.Parse(p.Input)
	// Check validity expectation first, since nothing else applies to a
	// rejected input.
	if p.Invalid {
		if len(syntaxErrs) == 0 {
			return []error{pkgErrors.Errorf("case %q: input %q unexpectedly accepted", p.Name, p.Input)}
		}
		//
		return nil
	} else if len(syntaxErrs) != 0 {
		return []error{pkgErrors.Errorf("case %q: input %q rejected (%s)", p.Name, p.Input, syntaxErrs[0].Message())}
	}
	//
	var errs []error
	//
	if p.Display != "" && tree.String() != p.Display {
		errs = append(errs, pkgErrors.Errorf("case %q: display was %q, expected %q", p.Name, tree.String(), p.Display))
	}
	//
	if p.Functional != "" && tree.Functional() != p.Functional {
		errs = append(errs,
			pkgErrors.Errorf("case %q: functional was %q, expected %q", p.Name, tree.Functional(), p.Functional))
	}
	//
	if len(p.Variables) != 0 && !slices.Equal(tree.Variables(), p.Variables) {
		errs = append(errs,
			pkgErrors.Errorf("case %q: variables were %v, expected %v", p.Name, tree.Variables(), p.Variables))
	}
	//
	errs = append(errs, p.checkTruth(tree)...)
	errs = append(errs, p.checkEquivalents(tree)...)
	//
	return errs
}

func (p *Case) checkTruth(tree *logic.Tree) []error {
	if p.Truth == "" {
		return nil
	}
	//
	vector, err := truthVector(tree)
	//
	if err != nil {
		return []error{pkgErrors.Wrapf(err, "case %q", p.Name)}
	}
	//
	if vector != p.Truth {
		return []error{pkgErrors.Errorf("case %q: truth vector was %s, expected %s", p.Name, vector, p.Truth)}
	}
	//
	return nil
}

// Check each claimed equivalent parses, ranges over the same variables, and
// shares the truth vector of the original input.
func (p *Case) checkEquivalents(tree *logic.Tree) []error {
	var errs []error
	//
	for _, input := range p.Equivalent {
		other, syntaxErrs := bexp.Parse(input)
		//
		if len(syntaxErrs) != 0 {
			errs = append(errs,
				pkgErrors.Errorf("case %q: equivalent %q rejected (%s)", p.Name, input, syntaxErrs[0].Message()))
			continue
		}
		//
		if !slices.Equal(other.Variables(), tree.Variables()) {
			errs = append(errs,
				pkgErrors.Errorf("case %q: equivalent %q ranges over %v, not %v", p.Name, input,
					other.Variables(), tree.Variables()))
			continue
		}
		//
		vector, err := truthVector(tree)
		//
		if err == nil {
			var otherVector string
			// Equivalence is semantic, hence compared row by row rather than
			// structurally.
			if otherVector, err = truthVector(other); err == nil && vector != otherVector {
				errs = append(errs, pkgErrors.Errorf("case %q: %q differs from %q at some assignment (%s vs %s)",
					p.Name, input, p.Input, otherVector, vector))
			}
		}
		//
		if err != nil {
			errs = append(errs, pkgErrors.Wrapf(err, "case %q", p.Name))
		}
	}
	//
	return errs
}

func truthVector(tree *logic.Tree) (string, error) {
	var builder strings.Builder
	//
	rows, err := truthtable.Enumerate(tree)
	//
	if err != nil {
		return "", err
	}
	//
	for _, row := range rows {
		if row.Value {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	//
	return builder.String(), nil
}
