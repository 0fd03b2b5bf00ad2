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

	"github.com/consensys/go-boolex/pkg/logic/truthtable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] expr",
	Short: "Print the truth table of a boolean expression.",
	Long: `Print the truth table of a given boolean expression, with one row per
assignment in ascending binary order (leftmost variable most significant).`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		tree := readTree(cmd, args)
		//
		lines, err := truthtable.FormatRows(tree)
		// Sanity check for errors
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Warn when the table will not fit the terminal
		checkTableWidth(len(lines[0]))
		//
		for _, line := range lines {
			fmt.Println(line)
		}
	},
}

func checkTableWidth(tableWidth int) {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && tableWidth > width {
			log.Warnf("table is %d columns wide, but terminal only %d", tableWidth, width)
		}
	}
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().String("from", "", "read the JSON interchange form from a given file")
}
