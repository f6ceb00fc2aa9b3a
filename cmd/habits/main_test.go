package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// The workflow tests drive a prebuilt binary. Build it into ../../bin or
// point HABITS_BIN_DIR at its directory; otherwise they are skipped.
func habitsBinary(t *testing.T) string {
	t.Helper()

	binDir := os.Getenv("HABITS_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join("..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "habits")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s; build it first", cliPath)
	}
	return cliPath
}

func isolatedEnv(t *testing.T, tempDir string) []string {
	t.Helper()

	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "HABITS_") {
			continue
		}
		env = append(env, e)
	}
	return append(env,
		"HOME="+tempDir,
		"HABITS_LOG_DIR="+filepath.Join(tempDir, "logs"),
	)
}

func writeScript(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, "session.habits")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

func runCLI(t *testing.T, cliPath string, env []string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(cliPath, args...)
	cmd.Env = env
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestEndToEndScript(t *testing.T) {
	cliPath := habitsBinary(t)
	tempDir := t.TempDir()
	env := isolatedEnv(t, tempDir)

	script := writeScript(t, tempDir,
		"# morning routine",
		"user add alice",
		"add Read -d 'ten pages'",
		"add Stretch",
		"status 2 finished",
		"done 1",
		"list --sort=status",
		"delete 2",
		"history 1",
	)

	stdout, stderr, err := runCLI(t, cliPath, env, "", "run", script)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr)
	}

	for _, want := range []string{
		"Added habit #1: Read",
		"Added habit #2: Stretch",
		"Habit #2 is now FINISHED",
		"Deleted habit #2",
		"Read (#1)",
		"Streak: 1 day(s)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q\n%s", want, stdout)
		}
	}

	if _, err := os.Stat(filepath.Join(tempDir, "logs", "habits.log")); err != nil {
		t.Errorf("expected log file in HABITS_LOG_DIR: %v", err)
	}
}

func TestEndToEndScriptStopsOnError(t *testing.T) {
	cliPath := habitsBinary(t)
	tempDir := t.TempDir()
	env := isolatedEnv(t, tempDir)

	script := writeScript(t, tempDir,
		"user add alice",
		"show 7",
		"add Never",
	)

	stdout, stderr, err := runCLI(t, cliPath, env, "", "run", script)
	if err == nil {
		t.Fatal("expected non-zero exit")
	}
	if !strings.Contains(stderr, "line 2") {
		t.Errorf("expected failing line in stderr, got: %s", stderr)
	}
	if strings.Contains(stdout, "Never") {
		t.Errorf("commands after the failure should not run:\n%s", stdout)
	}

	_, _, err = runCLI(t, cliPath, env, "", "run", "--keep-going", script)
	if err != nil {
		t.Errorf("--keep-going should exit cleanly, got %v", err)
	}
}

func TestEndToEndShellDefaultUser(t *testing.T) {
	cliPath := habitsBinary(t)
	tempDir := t.TempDir()
	env := append(isolatedEnv(t, tempDir), "HABITS_DEFAULT_USER=bob", "HABITS_PROMPT=> ")

	stdout, stderr, err := runCLI(t, cliPath, env, "add Swim\nuser list\nexit\n")
	if err != nil {
		t.Fatalf("shell failed: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "* bob (1 habits)") {
		t.Errorf("expected active default user in listing:\n%s", stdout)
	}
	if !strings.Contains(stdout, "> ") {
		t.Errorf("expected configured prompt:\n%s", stdout)
	}
}
