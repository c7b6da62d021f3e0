package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	// 1. Create a temporary directory
	tempDir := t.TempDir()

	// 2. Create pcalc-hello executable
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose, EnvPlain, EnvPlain)

	helloCmdPath := filepath.Join(tempDir, "pcalc-hello")

	// Write source to a temporary file
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write pcalc-hello source: %v", err)
	}
	log.Printf("Written pcalc-hello source to %s", srcFile)

	// Compile pcalc-hello
	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile pcalc-hello: %v", err)
	}

	// 3. Compile the main pcalc binary
	pcalcBinaryPath := filepath.Join(tempDir, "pcalc")
	cmd = exec.Command("go", "build", "-o", pcalcBinaryPath, "../pcalc")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile pcalc binary: %v", err)
	}

	// Define random values for global flags
	expectedCurrency := "XYZ"
	expectedVerbose := true
	expectedPlain := true

	// 4. Call pcalc binary with extension and global flags
	args := []string{
		"-currency", expectedCurrency,
		"-v",
		"-plain",
		"hello", // The extension subcommand
		"world",
	}

	pcalcCmd := exec.Command(pcalcBinaryPath, args...)
	oldPath := os.Getenv("PATH")
	pcalcCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + oldPath}
	pcalcCmd.Dir = tempDir // no .env file there

	var stdout, stderr bytes.Buffer
	pcalcCmd.Stdout = &stdout
	pcalcCmd.Stderr = &stderr

	if err := pcalcCmd.Run(); err != nil {
		t.Fatalf("pcalc command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	// 5. Verify output
	output := stdout.String()

	expectedLines := []string{
		EnvCurrency + "=" + expectedCurrency,
		EnvVerbose + "=" + strconv.FormatBool(expectedVerbose),
		EnvPlain + "=" + strconv.FormatBool(expectedPlain),
		"args=[world]",
	}
	for _, expectedLine := range expectedLines {
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}

	if stderr.Len() > 0 {
		t.Logf("Stderr from pcalc command: %s", stderr.String())
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, code := RunExtension("does-not-exist", nil)
	if found || code != 0 {
		t.Errorf("RunExtension(does-not-exist) = %v, %d, want false, 0", found, code)
	}
}

func TestKnown(t *testing.T) {
	for _, name := range []string{"calc", "session", "topic", "help"} {
		if !Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}
	if Known("hello") {
		t.Error(`Known("hello") = true, want false`)
	}
}
