package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/okvist/espalier"
	"github.com/okvist/espalier/internal/demo"
	"github.com/okvist/espalier/pkg/script"
)

// runCmd replays events against a demo machine, either from a YAML script
// or from a comma-separated --events list.
var runCmd = &cobra.Command{
	Use:   "run <machine>",
	Short: "Replay events against a demo machine",
	Long: `Builds the named demo machine (door or tcp) and dispatches a sequence of
events against it, printing the state reached after each dispatch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptPath, _ := cmd.Flags().GetString("script")
		eventList, _ := cmd.Flags().GetString("events")

		logger := cliLogger(cmd)
		machine, registry, err := demo.New(args[0], espalier.WithLogger(logger))
		if err != nil {
			return err
		}

		var s *script.Script
		switch {
		case scriptPath != "":
			s, err = script.Load(scriptPath)
			if err != nil {
				return err
			}
		case eventList != "":
			s = &script.Script{}
			for _, name := range strings.Split(eventList, ",") {
				s.Steps = append(s.Steps, script.Step{Event: strings.TrimSpace(name)})
			}
		default:
			return fmt.Errorf("provide --script or --events (known events: %v)", registry.Names())
		}

		p := termenv.ColorProfile()
		fmt.Printf("%s %s\n",
			termenv.String("machine:").Foreground(p.Color("#818cf8")),
			args[0])
		fmt.Printf("%s %s\n",
			termenv.String("initial:").Foreground(p.Color("#818cf8")),
			machine.CurrentStateName())

		runner := script.NewRunner(registry, logger)
		results, err := runner.Run(machine, s)
		for _, r := range results {
			fmt.Printf("  %s %s %s\n",
				termenv.String(r.Event).Foreground(p.Color("#a78bfa")),
				termenv.String("->").Faint(),
				termenv.String(r.State).Foreground(p.Color("#34d399")))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "replay aborted: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("script", "s", "", "YAML script of events to replay")
	runCmd.Flags().StringP("events", "e", "", "Comma-separated event names to dispatch")
}
