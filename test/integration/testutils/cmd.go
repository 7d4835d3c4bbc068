package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

var multiSpaceRegex = regexp.MustCompile(" +")

// RunSchedm executes a schedm command with the given arguments string (split
// by spaces). Use RunSchedmArgs when arguments contain spaces that should be
// preserved.
func RunSchedm(ctx context.Context, env []string, binary, cmdArgs string) (stdout, stderr []byte, err error) {
	// Sanitize command.
	cmdArgs = strings.TrimSpace(cmdArgs)
	cmdArgs = multiSpaceRegex.ReplaceAllString(cmdArgs, " ")

	// Split into args.
	var args []string
	if cmdArgs != "" {
		args = strings.Split(cmdArgs, " ")
	}

	return RunSchedmArgs(ctx, env, binary, args)
}

// RunSchedmArgs executes a schedm command with pre-split arguments.
// This preserves arguments that contain spaces (e.g. multi word task titles).
func RunSchedmArgs(ctx context.Context, env []string, binary string, args []string) (stdout, stderr []byte, err error) {
	var outData, errData bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &outData
	cmd.Stderr = &errData

	// Set env: os.Environ() first, then custom env overrides on top.
	// In Go's exec.Cmd, when duplicate keys exist, the last one wins.
	newEnv := append([]string{}, os.Environ()...)
	newEnv = append(newEnv, env...)
	newEnv = append(newEnv, "SCHEDM_NO_LOG=true")
	cmd.Env = newEnv

	err = cmd.Run()

	return outData.Bytes(), errData.Bytes(), err
}
