package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-boolex/pkg/logic"
	"github.com/consensys/go-boolex/pkg/logic/bexp"
	"github.com/consensys/go-boolex/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringSlice gets an expected flag, or panic if an error arises.
func GetStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Obtain the expression tree a command operates over.  With --from, the tree
// is decoded from a JSON interchange file; otherwise the remaining arguments
// are joined up and parsed as an expression.
func readTree(cmd *cobra.Command, args []string) *logic.Tree {
	if filename := GetString(cmd, "from"); filename != "" {
		return readTreeFile(filename)
	}
	//
	tree, errors := bexp.Parse(strings.Join(args, " "))
	// Check for errors
	if len(errors) != 0 {
		// Report errors
		for _, err := range errors {
			printSyntaxError(&err)
		}
		// Fail
		os.Exit(4)
	}
	// Done
	return tree
}

// Read an expression tree from a JSON interchange file.
func readTreeFile(filename string) *logic.Tree {
	bytes, err := os.ReadFile(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	root, err := logic.FromJSON(bytes)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return logic.NewTree(root)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}
