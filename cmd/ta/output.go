package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taskarena/taskarena/internal/history"
	"github.com/taskarena/taskarena/pkg/arena"
)

// printTask prints a single task to the writer
func printTask(w io.Writer, task *arena.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(task)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "Type:\t%s\n", task.TypeID)
	fmt.Fprintf(tw, "Status:\t%s\n", task.Status)
	fmt.Fprintf(tw, "Points:\t%d\n", task.Points)
	fmt.Fprintf(tw, "Cost:\t%d\n", task.Cost)
	fmt.Fprintf(tw, "Question:\t%s\n", task.Question)
	if task.UserHint != nil && *task.UserHint != "" {
		fmt.Fprintf(tw, "Hint:\t%s\n", *task.UserHint)
	}
	if task.TeamAnswer != nil {
		fmt.Fprintf(tw, "Answer:\t%s\n", *task.TeamAnswer)
	}
	tw.Flush()
}

// printTaskList prints tasks in a compact table
func printTaskList(w io.Writer, tasks []*arena.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tPOINTS")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", task.ID, task.TypeID, task.Status, task.Points)
	}
	tw.Flush()
}

// printChallenge prints challenge metadata and its rounds
func printChallenge(w io.Writer, challenge *arena.Challenge, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(challenge)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", challenge.ID)
	if challenge.Title != nil {
		fmt.Fprintf(tw, "Title:\t%s\n", *challenge.Title)
	}
	if challenge.Description != nil {
		fmt.Fprintf(tw, "Description:\t%s\n", *challenge.Description)
	}
	tw.Flush()

	if len(challenge.Rounds) == 0 {
		fmt.Fprintln(w, "No rounds")
		return
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tSTART\tEND\tTYPE CHOICE")
	for _, round := range challenge.Rounds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n",
			round.ID,
			round.StartTimestamp.Format("2006-01-02 15:04"),
			round.EndTimestamp.Format("2006-01-02 15:04"),
			round.CanChooseType,
		)
	}
	tw.Flush()
}

// printAttempts prints recorded solve attempts
func printAttempts(w io.Writer, attempts []*history.Attempt, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(attempts)
		return
	}

	if len(attempts) == 0 {
		fmt.Fprintln(w, "No attempts recorded")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tTASK\tTYPE\tANSWER\tSTATUS\tPOINTS")
	for _, attempt := range attempts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			attempt.CreatedAt.Format("2006-01-02 15:04:05"),
			attempt.TaskID,
			attempt.TypeID,
			attempt.Answer,
			attempt.Status,
			attempt.Points,
		)
	}
	tw.Flush()
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.Encode(map[string]string{"error": err.Error()})
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}
