package main

// Exit codes for the CLI
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitBadInput     = 2
	ExitEmptyInput   = 3
	ExitRenderFailed = 4
)
