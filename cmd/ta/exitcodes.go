package main

// Exit codes for the CLI
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitUsage         = 2
	ExitTasksOver     = 3
	ExitNoRound       = 4
	ExitServerError   = 5
	ExitBadPayload    = 6
	ExitNotConfigured = 7
)
