package main

import (
	"os"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a new task",
	Long: `Fetch a new task from the bound round. Use --type to pick the task
type when the round allows it; without --type the server picks a random one.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		taskType, _ := cmd.Flags().GetString("type")

		c, err := getClient(cmd.Context())
		if err != nil {
			handleError(err)
		}

		task, err := c.FetchNewTask(cmd.Context(), taskType)
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, task, jsonOutput)
	},
}

func init() {
	fetchCmd.Flags().String("type", "", "Task type to fetch (e.g. \"json\")")
	rootCmd.AddCommand(fetchCmd)
}

var submitCmd = &cobra.Command{
	Use:   "submit <task-id> <answer>",
	Short: "Submit an answer",
	Long:  `Submit an answer for a task and print the resulting task state.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient(cmd.Context())
		if err != nil {
			handleError(err)
		}

		task, err := c.SubmitAnswer(cmd.Context(), args[0], args[1])
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, task, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
