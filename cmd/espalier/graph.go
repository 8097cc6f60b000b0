package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okvist/espalier/internal/demo"
	"github.com/okvist/espalier/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine>",
	Short: "Export a machine's state diagram",
	Long:  `Builds the named demo machine and outputs a Mermaid stateDiagram-v2 of its declared states and transitions.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, _, err := demo.New(args[0])
		if err != nil {
			return err
		}

		fmt.Print(graph.GenerateMermaid(machine.Describe()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
