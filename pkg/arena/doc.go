// Package arena provides a Go client for the task-challenge competition API.
//
// A challenge is a named competition made of one or more time-bounded rounds.
// During a round a team fetches tasks, computes answers, and submits them
// back; the server scores each submission and reports the task status.
//
// # Getting Started
//
// Create a client bound to an explicit round:
//
//	client, err := arena.New(ctx, secret, "https://challenge.example.com/",
//	    arena.WithRoundID("projects-course-1"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or let the client pick the currently running round of a challenge:
//
//	client, err := arena.New(ctx, secret, "https://challenge.example.com/",
//	    arena.WithChallengeID("projects-course"),
//	)
//
// The base URL must not include the "api/" suffix; the client appends it.
//
// # Working With Tasks
//
// Fetch a new task and submit an answer:
//
//	task, err := client.FetchNewTask(ctx, "json")
//	if err != nil {
//	    var over *arena.TasksOverError
//	    if errors.As(err, &over) {
//	        // no tasks of this type left on the round
//	    }
//	}
//
//	result, err := client.SubmitAnswer(ctx, task.ID, answer)
//	if result.Status == arena.StatusSuccess {
//	    // solved
//	}
//
// List previously created tasks, or look one up by id:
//
//	tasks, err := client.GetTasks(ctx, "json", arena.StatusPending, 0, 50)
//	task, err := client.GetTask(ctx, taskID)
//
// # Error Handling
//
// Precondition failures (missing round/challenge id, disallowed type choice,
// page size over the ceiling) wrap ErrInvalidArgument and are raised before
// any network call. Recognized server conditions surface as TasksOverError,
// ErrNoRoundCurrentlyRunning, or DeserializationError. Any other non-2xx
// response is returned as *HTTPError with the status and body preserved.
package arena
