package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskarena/taskarena/internal/history"
	"github.com/taskarena/taskarena/internal/solver"
	"github.com/taskarena/taskarena/pkg/arena"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Fetch and solve tasks automatically",
	Long: `Repeatedly fetch a new task, solve it with the registered solver for
its type, and submit the answer. Stops on the first unsuccessful submission,
when the round runs out of tasks, or after --max tasks.

Registered solver types: ` + fmt.Sprint(solver.Types()),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		taskType, _ := cmd.Flags().GetString("type")
		maxTasks, _ := cmd.Flags().GetInt("max")

		c, err := getClient(cmd.Context())
		if err != nil {
			handleError(err)
		}

		store, err := openHistory()
		if err != nil {
			handleError(err)
		}
		defer store.Close()

		solved := 0
		for i := 0; i < maxTasks; i++ {
			task, err := c.FetchNewTask(cmd.Context(), taskType)
			if err != nil {
				var over *arena.TasksOverError
				if errors.As(err, &over) {
					logger.Info().Int("solved", solved).Msg("no tasks left")
					fmt.Printf("Round exhausted after %d solved tasks\n", solved)
					return
				}
				handleError(err)
			}

			s, ok := solver.For(task.TypeID)
			if !ok {
				handleError(fmt.Errorf("%w: no solver registered for task type %q",
					arena.ErrInvalidArgument, task.TypeID))
			}

			answer, err := s.Solve(task.Question)
			if err != nil {
				handleError(fmt.Errorf("failed to solve task %s: %w", task.ID, err))
			}

			result, err := c.SubmitAnswer(cmd.Context(), task.ID, answer)
			if err != nil {
				handleError(err)
			}

			if _, err := store.Record(history.Attempt{
				TaskID:   task.ID,
				TypeID:   task.TypeID,
				Question: task.Question,
				Answer:   answer,
				Status:   result.Status,
				Points:   result.Points,
			}); err != nil {
				logger.Warn().Err(err).Msg("failed to record attempt")
			}

			if result.Status != arena.StatusSuccess {
				logger.Error().
					Str("task", task.ID).
					Str("answer", answer).
					Stringer("status", result.Status).
					Msg("submission rejected")
				fmt.Printf("Failed on task %s after %d solved tasks\n", task.ID, solved)
				os.Exit(ExitGeneralError)
			}

			solved++
			logger.Info().
				Str("task", task.ID).
				Int("points", result.Points).
				Msg("solved")
		}

		fmt.Printf("Solved %d tasks\n", solved)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solve attempts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := openHistory()
		if err != nil {
			handleError(err)
		}
		defer store.Close()

		attempts, err := store.List(limit)
		if err != nil {
			handleError(err)
		}

		printAttempts(os.Stdout, attempts, jsonOutput)
	},
}

func init() {
	solveCmd.Flags().String("type", "json", "Task type to solve")
	solveCmd.Flags().Int("max", 50, "Maximum number of tasks to attempt")
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to list")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(historyCmd)
}
