// Package shell works out which shell will display the prompt.
package shell

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/wasabi0522/repostatus/internal/exec"
	"github.com/wasabi0522/repostatus/internal/render"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._]+`)

// Normalize reduces a process command name such as "-zsh" or
// "/usr/local/bin/bash" to the bare shell name.
func Normalize(comm string) string {
	comm = strings.TrimSpace(comm)
	if comm == "" {
		return ""
	}
	return unsafeChars.ReplaceAllString(filepath.Base(comm), "")
}

// ParentName returns the normalized command name of process pid, which is
// expected to be the parent of this process. A process that no longer
// exists has an empty name.
func ParentName(e exec.Executor, pid int) (string, error) {
	out, err := e.Output("", "ps", "-p", strconv.Itoa(pid), "-ocomm=")
	if exec.IsExitCode(err, 1) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("inspecting parent process %d: %w", pid, err)
	}
	return Normalize(out), nil
}

// Options controls mode resolution.
type Options struct {
	// Override names the shell explicitly and skips parent detection.
	Override string
	// Plain forces plain templates, e.g. for --interactive or a terminal
	// on stdout.
	Plain bool
	// NoColor drops escape sequences entirely. It takes precedence over Plain.
	NoColor bool
	// ParentPID is inspected when no override is given.
	ParentPID int
}

// Resolve picks the render mode. Detection only runs when none of NoColor,
// Plain or Override decide it.
func Resolve(e exec.Executor, opts Options) (render.Mode, error) {
	if opts.NoColor {
		return render.ModeNoColor, nil
	}
	if opts.Plain {
		return render.ModePlain, nil
	}
	name := Normalize(opts.Override)
	if name == "" {
		detected, err := ParentName(e, opts.ParentPID)
		if err != nil {
			return "", err
		}
		name = detected
	}
	return render.ParseMode(name), nil
}
