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

	"github.com/consensys/go-boolex/pkg/logic/suite"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] suite_file ...",
	Short: "Check one or more declarative suites of expressions.",
	Long: `Check one or more declarative suites of expressions, where each suite is a
YAML file of cases pairing an input expression with expectations over it
(rendering, variables, truth vector, equivalences, or rejection).`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		failures := 0
		//
		for _, filename := range args {
			s, err := suite.Load(filename)
			// Sanity check for errors
			if err != nil {
				fmt.Println(err)
				os.Exit(3)
			}
			// Report failures
			for _, err := range s.Run() {
				fmt.Println(err)
				failures++
			}
			//
			log.Infof("checked suite %q", s.Name)
		}
		//
		if failures != 0 {
			fmt.Printf("failed %d check(s)\n", failures)
			os.Exit(4)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
