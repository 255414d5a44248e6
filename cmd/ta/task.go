package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taskarena/taskarena/pkg/arena"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Inspect existing tasks",
}

var taskGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a task by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient(cmd.Context())
		if err != nil {
			handleError(err)
		}

		task, err := c.GetTask(cmd.Context(), args[0])
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, task, jsonOutput)
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks on the bound round",
	Long: `List existing tasks of a given type and status on the bound round.
This does not fetch new tasks.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		taskType, _ := cmd.Flags().GetString("type")
		statusName, _ := cmd.Flags().GetString("status")
		offset, _ := cmd.Flags().GetInt("offset")
		count, _ := cmd.Flags().GetInt("count")

		status, err := arena.ParseTaskStatus(statusName)
		if err != nil {
			handleError(err)
		}

		c, err := getClient(cmd.Context())
		if err != nil {
			handleError(err)
		}

		tasks, err := c.GetTasks(cmd.Context(), taskType, status, offset, count)
		if err != nil {
			handleError(err)
		}

		printTaskList(os.Stdout, tasks, jsonOutput)
	},
}

var challengeCmd = &cobra.Command{
	Use:   "challenge <id>",
	Short: "Show a challenge and its rounds",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient(cmd.Context())
		if err != nil {
			handleError(err)
		}

		challenge, err := c.GetChallenge(cmd.Context(), args[0])
		if err != nil {
			handleError(err)
		}

		printChallenge(os.Stdout, challenge, jsonOutput)
	},
}

func init() {
	taskListCmd.Flags().String("type", "", "Task type filter")
	taskListCmd.Flags().String("status", "pending", "Status filter (pending, success, failed)")
	taskListCmd.Flags().Int("offset", 0, "Cursor offset")
	taskListCmd.Flags().Int("count", arena.MaxPageSize, "Maximum number of tasks (<= 50)")

	taskCmd.AddCommand(taskGetCmd)
	taskCmd.AddCommand(taskListCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(challengeCmd)
}
