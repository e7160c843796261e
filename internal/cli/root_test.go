package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "turbocheck/internal/checks/builtin"
	"turbocheck/internal/config"
	"turbocheck/internal/engine"
	"turbocheck/internal/testutil"

	"github.com/spf13/cobra"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{Use: "turbocheck"}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		checksListQuiet = false
		cfg.Checklist.Manifest = ""
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunVerify_Passes(t *testing.T) {
	base := testutil.Project(t)
	c := config.New()
	c.Workspace.Dir = base

	cmd, stdout, stderr := newTestCommand()
	code := runVerify(cmd, c)
	if code != engine.ExitPassed {
		t.Fatalf("exit code = %d, want 0; stdout=%s stderr=%s", code, stdout, stderr)
	}
	if !strings.HasPrefix(stdout.String(), "=== TurboJPEG Integration Verification ===\n\n1. Checking required files:\n") {
		t.Fatalf("unexpected report start: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "✓ All checks passed! The TurboJPEG integration should work correctly.\n") {
		t.Fatalf("missing success line: %s", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunVerify_Fails(t *testing.T) {
	base := testutil.Project(t)
	testutil.Remove(t, base, "turbojpeg.dll")
	c := config.New()
	c.Workspace.Dir = base

	cmd, stdout, _ := newTestCommand()
	if code := runVerify(cmd, c); code != engine.ExitFailed {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "✗ Some checks failed. Please review the issues above.\n") {
		t.Fatalf("missing failure line: %s", stdout.String())
	}
}

func TestRunVerify_InvalidConfigIsFatal(t *testing.T) {
	c := config.New()
	c.Output.Out = filepath.Join(t.TempDir(), "results")

	cmd, stdout, stderr := newTestCommand()
	if code := runVerify(cmd, c); code != engine.ExitFatal {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should reach stdout, got %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "Error: cannot infer output format") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunVerify_VerboseLogsToStderrOnly(t *testing.T) {
	base := testutil.Project(t)
	c := config.New()
	c.Workspace.Dir = base
	c.Runtime.Verbose = true

	cmd, stdout, stderr := newTestCommand()
	runVerify(cmd, c)
	if !strings.Contains(stderr.String(), "[DEBUG] phase required-files: passed=true") {
		t.Fatalf("expected debug diagnostics, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "[DEBUG]") {
		t.Fatal("diagnostics must not reach stdout")
	}
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo("1.2.3", "abc123", "2026-01-01")
	out, err := executeRoot(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	want := "turbocheck 1.2.3\ncommit: abc123\nbuilt:  2026-01-01\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestChecksListQuiet(t *testing.T) {
	out, err := executeRoot(t, "checks", "list", "-q")
	if err != nil {
		t.Fatalf("checks list failed: %v", err)
	}
	want := "required-files\ncmake-content\ndart-ffi-content\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestChecksShow(t *testing.T) {
	out, err := executeRoot(t, "checks", "show", "cmake-content")
	if err != nil {
		t.Fatalf("checks show failed: %v", err)
	}
	for _, want := range []string{
		"PHASE: cmake-content",
		"Checking CMakeLists.txt content",
		"Target: CMakeLists.txt",
		`JPEG wrapper target: contains "add_library(jpeg_decoder_wrapper SHARED"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := executeRoot(t, "checks", "show", "nope"); err == nil {
		t.Fatal("expected error for unknown phase")
	}
}

func TestChecksListWithManifest(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "m.yaml")
	if err := os.WriteFile(manifest, []byte("phases:\n  - {id: headers, title: Checking headers, kind: files, items: [{description: Header, path: codec.h}]}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeRoot(t, "checks", "list", "--manifest", manifest)
	if err != nil {
		t.Fatalf("checks list failed: %v", err)
	}
	if !strings.Contains(out, "PHASE: headers") || !strings.Contains(out, "  Header: codec.h\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "required-files") {
		t.Fatal("manifest must replace the built-in checklist")
	}
}
