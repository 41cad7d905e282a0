// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> config -> validator/catalog -> report output.
//
// Tests build the real sid binary once and exec it against a temporary
// dataset, because exit codes are part of the tool's contract (CI gates
// key off them) and only a real process carries them faithfully. Each test
// environment gets its own HOME so global config and the audit log never
// touch the developer's machine.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the sid binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "sid-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "sid"
		if os.PathSeparator == '\\' {
			binaryName = "sid.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state: a working directory with a data/
// subdirectory and an isolated HOME.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary dataset directory for one test.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()

	env := &testEnv{t: t, dir: dir, home: filepath.Join(dir, "home"), binary: binary}
	if err := os.MkdirAll(env.home, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0755); err != nil {
		t.Fatal(err)
	}
	return env
}

// write creates a file under the environment directory.
func (e *testEnv) write(rel, content string) {
	e.t.Helper()
	path := filepath.Join(e.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatal(err)
	}
}

// read returns the content of a file under the environment directory.
func (e *testEnv) read(rel string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, filepath.FromSlash(rel)))
	if err != nil {
		e.t.Fatal(err)
	}
	return string(data)
}

// run executes sid with the given args and returns stdout+stderr,
// failing the test on nonzero exit.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, code := e.runExit(args...)
	if code != 0 {
		e.t.Fatalf("sid %v exited %d\noutput: %s", args, code, out)
	}
	return out
}

// runExit executes sid and returns combined output and the exit code.
func (e *testEnv) runExit(args ...string) (string, int) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return string(out), exitErr.ExitCode()
	}
	e.t.Fatalf("sid %v failed to run: %v\noutput: %s", args, err, out)
	return "", -1
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// validButter is a fully valid record: every rule satisfied, sources cited.
const validButter = `{
  "id": "butter",
  "name": {"en": "Butter", "fr": "Beurre"},
  "category": "dairy",
  "composition": {"water": 16.2, "protein": 0.9, "total_fat": 81.1, "carbohydrates": 0.1},
  "physical": {"density_g_per_ml": 0.911, "smoke_point_celsius": 150},
  "sources": ["USDA FoodData Central, FDC ID 173430"]
}
`

// warnSalt is valid but cites no sources.
const warnSalt = `{
  "id": "salt",
  "name": {"en": "Salt"},
  "category": "seasoning",
  "composition": {"water": 0.2},
  "physical": {"density_g_per_ml": 2.16},
  "sources": []
}
`
