// Package integration provides CLI integration tests for warebot.
// Each test runs the built binary in an isolated environment with its
// own config and data directory.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// warebotBin is the path to the built warebot binary.
	warebotBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetWarebotBin sets the path to the warebot binary (called from TestMain).
func SetWarebotBin(path string) {
	warebotBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// testConfigYAML disables simulated faults and delays so scripted
// sessions behave deterministically and run fast.
const testConfigYAML = `mode: auto
robot_id: ROBOT_001
sim:
  obstacle_chance: 0
  reroute_failure_chance: 0
  scan_failure_rate: 0
  travel_time: 0s
  reroute_time: 0s
  scan_time: 0s
  pick_time: 0s
  drop_time: 0s
  charge_time: 0s
  pack_time_per_item: 0s
`

// TestEnv provides an isolated test environment with its own config
// and data directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates a new isolated test environment with a
// deterministic config.yaml already in place.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build warebot: %v", buildErr)
	}
	if warebotBin == "" {
		t.Fatal("warebot binary not built (warebotBin is empty)")
	}

	tempDir := t.TempDir()
	env := &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: filepath.Join(tempDir, "config"),
		DataDir:   filepath.Join(tempDir, "data"),
	}

	if err := os.MkdirAll(env.ConfigDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	configPath := filepath.Join(env.ConfigDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return env
}

// Result captures the output of one warebot invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunWarebot runs the warebot binary with the given stdin and args in
// this environment.
func (e *TestEnv) RunWarebot(stdin string, args ...string) Result {
	e.t.Helper()

	cmd := exec.Command(warebotBin, args...)
	cmd.Env = append(os.Environ(),
		"WAREBOT_CONFIG_DIR="+e.ConfigDir,
		"WAREBOT_DATA_DIR="+e.DataDir,
	)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("run warebot %v: %v", args, err)
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunWarebot runs warebot and fails the test on a nonzero exit.
func (e *TestEnv) MustRunWarebot(stdin string, args ...string) Result {
	e.t.Helper()

	result := e.RunWarebot(stdin, args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("warebot %v exited %d\nstdout:\n%s\nstderr:\n%s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
