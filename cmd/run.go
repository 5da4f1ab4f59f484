package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"process-scheduler/internal/core"
	"process-scheduler/internal/render"
	"process-scheduler/internal/requests"
	"process-scheduler/internal/responses"
	"process-scheduler/internal/schedulers"
)

func newRunCmd(c *cli) *cobra.Command {
	var (
		policyName string
		quantumRaw string
		file       string
		idleName   string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a process file under one or all policies",
		Long: `Reads processes from a CSV file (pid,arrival,burst[,priority]) and prints
the Gantt schedule and timing table. Use --policy all to compare every policy.`,
		Example: `  scheduler run --file processes.csv --policy sjf
  scheduler run --file processes.csv --policy rr --quantum 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := readProcesses(cmd, file)
			if err != nil {
				return err
			}
			if idleName == "" {
				idleName = c.cfg.IdleStrategy
			}
			idle, err := schedulers.ParseIdleStrategy(idleName)
			if err != nil {
				return err
			}

			policies := schedulers.Policies
			if policyName != "all" {
				policy, err := schedulers.ParsePolicy(policyName)
				if err != nil {
					return err
				}
				policies = []schedulers.Policy{policy}
			}

			var quantum int
			if containsRoundRobin(policies) {
				if !cmd.Flags().Changed("quantum") && c.cfg.RoundRobinTimeQuantum > 0 {
					quantumRaw = strconv.Itoa(c.cfg.RoundRobinTimeQuantum)
				}
				if quantum, err = schedulers.ParseQuantum(quantumRaw); err != nil {
					return err
				}
			}

			results := make([]responses.ScheduleResponse, 0, len(policies))
			for _, policy := range policies {
				result, err := schedulers.Simulate(processes, policy, quantum,
					schedulers.WithIdleStrategy(idle),
					schedulers.WithLogger(c.logger),
				)
				if err != nil {
					return err
				}
				results = append(results, schedulers.GenerateResponse(processes, result))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(responses.AllAlgorithmsResponse{Results: results})
			}
			for _, r := range results {
				render.WriteSchedule(out, r)
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&policyName, "policy", "p", "all", "Policy: fcfs, sjf, priority, rr or all")
	cmd.Flags().StringVarP(&quantumRaw, "quantum", "q", "", "Round robin time quantum (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "Process CSV file, - for stdin")
	cmd.Flags().StringVar(&idleName, "idle", "", "Idle clock strategy: jump or tick (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

func readProcesses(cmd *cobra.Command, file string) ([]core.Process, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening process file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return requests.LoadProcesses(r)
}

func containsRoundRobin(policies []schedulers.Policy) bool {
	for _, p := range policies {
		if p == schedulers.RoundRobin {
			return true
		}
	}
	return false
}
