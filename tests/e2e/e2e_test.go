package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "teicheck-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "teicheck")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/teicheck")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/corpus", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Test Command ---

func TestE2E_TestPerfectCorpus(t *testing.T) {
	out, code := run(t, "test", fixturePath("perfect"))
	defer os.RemoveAll(filepath.Join(fixturePath("perfect"), ".teicheck"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Found 1 collection(s)")
	assert.Contains(t, out, "Found 1 resource(s)")
	assert.Contains(t, out, "poem.xml")
}

func TestE2E_TestBrokenCorpusExitsNonZero(t *testing.T) {
	out, code := run(t, "test", fixturePath("broken"))
	defer os.RemoveAll(filepath.Join(fixturePath("broken"), ".teicheck"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "malformed.xml")
	assert.Contains(t, out, "failed validation")
}

func TestE2E_TestVerbose(t *testing.T) {
	out, code := run(t, "test", "-v", "verbose", fixturePath("perfect"))
	defer os.RemoveAll(filepath.Join(fixturePath("perfect"), ".teicheck"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "well formed:")
}

func TestE2E_TestUnknownVerbosity(t *testing.T) {
	out, code := run(t, "test", "-v", "shouty", fixturePath("perfect"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "shouty")
}

// --- History ---

func TestE2E_History(t *testing.T) {
	_, code := run(t, "test", fixturePath("perfect"))
	defer os.RemoveAll(filepath.Join(fixturePath("perfect"), ".teicheck"))
	assert.Equal(t, 0, code)

	out, code := run(t, "history", fixturePath("perfect"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "passed")
}

// --- Version ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "teicheck")
}
