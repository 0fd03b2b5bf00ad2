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
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-boolex/pkg/logic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr",
	Short: "Evaluate a boolean expression under an assignment.",
	Long: `Evaluate a given boolean expression under the assignment given via --assign,
which must bind every variable of the expression.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		tree := readTree(cmd, args)
		assignment := parseAssignment(GetStringSlice(cmd, "assign"))
		//
		value, err := tree.Evaluate(assignment)
		// Sanity check all variables were bound
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(value)
	},
}

// Parse a set of "x=b" bindings, where b is anything strconv.ParseBool
// accepts (1, 0, true, false, etc).
func parseAssignment(bindings []string) logic.Assignment {
	assignment := make(logic.Assignment, len(bindings))
	//
	for _, binding := range bindings {
		var (
			split = strings.SplitN(binding, "=", 2)
			value bool
			err   error
		)
		//
		if len(split) == 2 {
			value, err = strconv.ParseBool(split[1])
		} else {
			err = fmt.Errorf("expected \"name=value\"")
		}
		//
		if err != nil {
			fmt.Printf("invalid assignment %q (%v)\n", binding, err)
			os.Exit(2)
		}
		//
		assignment[split[0]] = value
	}
	//
	return assignment
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringSliceP("assign", "a", nil, "bind a variable (e.g. a=1)")
	evalCmd.Flags().String("from", "", "read the JSON interchange form from a given file")
}
