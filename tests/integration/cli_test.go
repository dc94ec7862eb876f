// CLI integration tests for the warebot binary: version and check
// commands, scripted shell sessions, and journal persistence across
// sessions.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	// Find project root by looking for go.mod
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	// Build warebot binary into a temp directory
	tmpDir, err := os.MkdirTemp("", "warebot-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "warebot")
	SetWarebotBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/warebot")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	// Cleanup binary
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestVersionCommand(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunWarebot("", "version")
	if !strings.Contains(result.Stdout, "warebot") {
		t.Errorf("version output = %q, want it to contain %q", result.Stdout, "warebot")
	}
}

func TestCheckCommand(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunWarebot("", "check")
	if !strings.Contains(result.Stdout, "checks passed") {
		t.Errorf("check output missing summary:\n%s", result.Stdout)
	}
	if strings.Contains(result.Stdout, "FAIL") {
		t.Errorf("check reported failures:\n%s", result.Stdout)
	}
}

func TestShellListsSeededInventory(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunWarebot("items\nquit\n", "shell")
	for _, id := range []string{"SKU001", "SKU002", "SKU003", "SKU004", "SKU005"} {
		if !strings.Contains(result.Stdout, id) {
			t.Errorf("inventory listing missing %s:\n%s", id, result.Stdout)
		}
	}
	if !strings.Contains(result.Stdout, "Total items: 5") {
		t.Errorf("inventory listing missing total:\n%s", result.Stdout)
	}
}

func TestShellEndOfInputExitsGracefully(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunWarebot("", "shell")
	if !strings.Contains(result.Stdout, "Shutting down") {
		t.Errorf("end of input did not shut down gracefully:\n%s", result.Stdout)
	}
}

func TestShellOrderFulfillment(t *testing.T) {
	env := NewTestEnv(t)

	stdin := strings.Join([]string{
		"addorder",
		"SKU002", // item id
		"2",      // quantity
		"",       // finish order
		"run",
		"status",
		"quit",
	}, "\n") + "\n"

	result := env.MustRunWarebot(stdin, "shell")
	if !strings.Contains(result.Stdout, "Order ORD0001 queued with 2 items") {
		t.Errorf("order not queued:\n%s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "SUCCESS") {
		t.Errorf("workflow did not complete:\n%s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "Queue:    0 pending, 1 completed") {
		t.Errorf("status does not reflect completion:\n%s", result.Stdout)
	}
}

func TestDemoCommand(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunWarebot("", "demo")
	if !strings.Contains(result.Stdout, "Demo: queued order ORD0001") {
		t.Errorf("demo did not queue its order:\n%s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "SUCCESS") {
		t.Errorf("demo workflow did not complete:\n%s", result.Stdout)
	}
}

func TestHistoryPersistsAcrossSessions(t *testing.T) {
	env := NewTestEnv(t)

	// First session fulfills the demo order, writing the journal.
	env.MustRunWarebot("demo\nquit\n", "shell")

	// A fresh session reads history from the same data directory.
	result := env.MustRunWarebot("history 50\nquit\n", "shell")
	if !strings.Contains(result.Stdout, "OPERATION HISTORY") {
		t.Errorf("second session has no history:\n%s", result.Stdout)
	}
	if !strings.Contains(result.Stdout, "SUCCESS") {
		t.Errorf("history missing completed task entry:\n%s", result.Stdout)
	}
}

func TestModePersistedInConfigIsHonored(t *testing.T) {
	env := NewTestEnv(t)

	// Overwrite the config with semi-auto mode.
	configPath := filepath.Join(env.ConfigDir, "config.yaml")
	semi := strings.Replace(testConfigYAML, "mode: auto", "mode: semi", 1)
	if err := os.WriteFile(configPath, []byte(semi), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result := env.MustRunWarebot("status\nquit\n", "shell")
	if !strings.Contains(result.Stdout, "SEMI_AUTO") {
		t.Errorf("config mode not honored:\n%s", result.Stdout)
	}
}

func TestModeFlagOverridesConfig(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunWarebot("status\nquit\n", "shell", "--mode", "semi")
	if !strings.Contains(result.Stdout, "SEMI_AUTO") {
		t.Errorf("--mode flag not honored:\n%s", result.Stdout)
	}
}
