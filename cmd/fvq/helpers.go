package main

import "github.com/apt1002/fvq-go/internal/imageio"

// outPathOrDefault returns args[1] if given, else a temp-dir default
// derived from args[0] and the tool name.
func outPathOrDefault(args []string, toolName string) string {
	if len(args) > 1 {
		return args[1]
	}
	return imageio.DefaultOutPath(args[0], toolName)
}
