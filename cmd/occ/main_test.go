package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func resetDebugFlags() {
	dParse = false
	dAST = false
	dText = false
}

func TestVersion(t *testing.T) {
	if version == "" {
		t.Error("version should not be empty")
	}
}

func TestDebugFlagsExist(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)

	expectedFlags := []string{"dparse", "dast", "dtext"}
	for _, flagName := range expectedFlags {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag --%s to exist", flagName)
		}
	}
}

func TestNormalizeFlags(t *testing.T) {
	got := normalizeFlags([]string{"-dparse", "file.c", "-dast", "--dtext", "-x"})
	want := []string{"--dparse", "file.c", "--dast", "--dtext", "-x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestCheckOnly(t *testing.T) {
	resetDebugFlags()
	testFile := writeTestFile(t, "test.c", "int main() { return 0; }")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{testFile})
	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !strings.Contains(errOut.String(), "checking") {
		t.Errorf("expected progress message, got %q", errOut.String())
	}
}

func TestDParseFlag(t *testing.T) {
	resetDebugFlags()
	testFile := writeTestFile(t, "test.c", "int main() { return 0; }")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dparse", testFile})
	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error for -dparse, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "int main()") {
		t.Errorf("expected output to contain 'int main()', got %q", output)
	}
	if !strings.Contains(output, "return 0;") {
		t.Errorf("expected output to contain 'return 0;', got %q", output)
	}

	// The same output lands next to the input as input.parsed.c
	parsed, err := os.ReadFile(strings.TrimSuffix(testFile, ".c") + ".parsed.c")
	if err != nil {
		t.Fatalf("expected .parsed.c output file: %v", err)
	}
	if string(parsed) != output {
		t.Error("file output differs from stdout output")
	}
}

func TestDASTFlag(t *testing.T) {
	resetDebugFlags()
	testFile := writeTestFile(t, "test.c", "int x[4];")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dast", testFile})
	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error for -dast, got %v", err)
	}

	output := out.String()
	for _, fragment := range []string{"kind: Program", "kind: VarDecl", "name: x", "array_size: 4"} {
		if !strings.Contains(output, fragment) {
			t.Errorf("expected output to contain %q, got %q", fragment, output)
		}
	}
}

func TestDTextFlag(t *testing.T) {
	resetDebugFlags()
	testFile := writeTestFile(t, "test.txt", "It rained. The river rose.\n\nNobody minded.\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dtext", testFile})
	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error for -dtext, got %v", err)
	}

	output := out.String()
	for _, fragment := range []string{"paragraph 1", "paragraph 2", "It rained ."} {
		if !strings.Contains(output, fragment) {
			t.Errorf("expected output to contain %q, got %q", fragment, output)
		}
	}
}

func TestParseErrorReported(t *testing.T) {
	resetDebugFlags()
	testFile := writeTestFile(t, "bad.c", "int f() {\n    if (x;\n}\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dparse", testFile})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for malformed input")
	}

	if !strings.Contains(errOut.String(), "line 2") {
		t.Errorf("expected a positioned diagnostic, got %q", errOut.String())
	}
}

func TestMissingFileReported(t *testing.T) {
	resetDebugFlags()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dparse", filepath.Join(t.TempDir(), "absent.c")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(errOut.String(), "error reading") {
		t.Errorf("expected read error message, got %q", errOut.String())
	}
}

func TestNoArgsShowsHelp(t *testing.T) {
	resetDebugFlags()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Errorf("expected help output, got %q", out.String())
	}
}
