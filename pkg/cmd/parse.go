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

	"github.com/consensys/go-boolex/pkg/logic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] expr",
	Short: "Parse a boolean expression and display it.",
	Long: `Parse a given boolean expression and display it in canonical infix form.
Alternatively, display it in functional (prefix) form, or as its JSON
interchange form.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		tree := readTree(cmd, args)
		//
		switch {
		case GetFlag(cmd, "json"):
			bytes, err := logic.ToJSON(tree.Root())
			// Sanity check for errors
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(string(bytes))
		case GetFlag(cmd, "functional"):
			fmt.Println(tree.Functional())
		default:
			fmt.Println(tree.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("functional", false, "display in functional (prefix) form")
	parseCmd.Flags().Bool("json", false, "display in JSON interchange form")
	parseCmd.Flags().String("from", "", "read the JSON interchange form from a given file")
}
