package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv("KBDWRAP_STYLE", "")

	cfg := filepath.Join(t.TempDir(), "settings.toml")
	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(append([]string{"--config", cfg, "--locale", "en"}, args...))

	err := root.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestToggleCommand(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		sels   []string
		want   string
		notice bool
	}{
		{"wrap", "Press Ctrl now\n", []string{"0:6-0:10"}, "Press <kbd>Ctrl</kbd> now\n", false},
		{"unwrap at caret", "Press <kbd>Ctrl</kbd> now\n", []string{"0:12"}, "Press Ctrl now\n", false},
		{"two selections", "a b\n", []string{"0:0-0:1", "0:2-0:3"}, "<kbd>a</kbd> <kbd>b</kbd>\n", false},
		{"nothing to do", "plain\n", []string{"0:2"}, "plain\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"toggle", "-"}
			for _, s := range tt.sels {
				args = append(args, "--sel", s)
			}

			res := execute(t, tt.input, args...)
			if res.err != nil {
				t.Fatalf("execute error: %v", res.err)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.want)
			}
			if got := strings.Contains(res.stderr, "Please select text"); got != tt.notice {
				t.Errorf("notice shown = %v, stderr = %q", got, res.stderr)
			}
		})
	}
}

func TestToggleWrite(t *testing.T) {
	path := writeFile(t, "keys.md", "Use Esc\r\n")

	res := execute(t, "", "toggle", path, "--sel", "0:4-0:7", "--write")
	if res.err != nil {
		t.Fatalf("execute error: %v", res.err)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want nothing with --write", res.stdout)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "Use <kbd>Esc</kbd>\r\n" {
		t.Errorf("file = %q", data)
	}
}

func TestToggleErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad selection", []string{"toggle", "-", "--sel", "x"}},
		{"selection out of range", []string{"toggle", "-", "--sel", "9:0"}},
		{"missing file", []string{"toggle", filepath.Join(os.TempDir(), "kbdwrap-missing.md")}},
		{"no args", []string{"toggle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := execute(t, "one line", tt.args...); res.err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if res := execute(t, "", "--log-level", "loud", "menu"); res.err == nil {
		t.Error("expected an error for an invalid log level")
	}
}

func TestRenderCommand(t *testing.T) {
	res := execute(t, "Press <kbd>Esc</kbd>\n", "render", "-", "--style", "github")
	if res.err != nil {
		t.Fatalf("execute error: %v", res.err)
	}
	if !strings.Contains(res.stdout, `<body class="kbd-style-github">`) || !strings.Contains(res.stdout, "<kbd>Esc</kbd>") {
		t.Errorf("stdout = %q", res.stdout)
	}

	if res := execute(t, "x", "render", "-", "--style", "neon"); res.err == nil {
		t.Error("expected an error for an unknown style")
	}
}

func TestPreviewCommand(t *testing.T) {
	res := execute(t, "Hit <kbd>Ctrl</kbd>+<kbd>Z</kbd>\n", "preview", "-", "--color", "never")
	if res.err != nil {
		t.Fatalf("execute error: %v", res.err)
	}
	if res.stdout != "Hit [Ctrl]+[Z]\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestScriptCommand(t *testing.T) {
	script := writeFile(t, "wrap.lua", `kbd.select(1, 1, 1, 4); kbd.toggle(); print("done")`)

	res := execute(t, "Tab key\n", "script", "-", script)
	if res.err != nil {
		t.Fatalf("execute error: %v", res.err)
	}
	if res.stdout != "<kbd>Tab</kbd> key\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "done") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestStyleCommand(t *testing.T) {
	t.Setenv("KBDWRAP_STYLE", "")
	cfg := filepath.Join(t.TempDir(), "settings.json")

	run := func(args ...string) string {
		var stdout, stderr bytes.Buffer
		root := newRootCmd(strings.NewReader(""), &stdout, &stderr)
		root.SetArgs(append([]string{"--config", cfg, "--locale", "en"}, args...))
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return stdout.String()
	}

	run("style", "github")
	out := run("style")

	if !strings.Contains(out, "* github") {
		t.Errorf("style listing = %q", out)
	}
	if !strings.Contains(out, "Stack Overflow") {
		t.Errorf("labels missing: %q", out)
	}

	data, err := os.ReadFile(cfg)
	if err != nil || !strings.Contains(string(data), `"kbdStyle"`) {
		t.Errorf("settings file = %q, %v", data, err)
	}
}

func TestMenuCommand(t *testing.T) {
	res := execute(t, "", "menu")
	if res.err != nil {
		t.Fatalf("execute error: %v", res.err)
	}
	if res.stdout != "format\tkeyboard\t<kbd>\twrap-selection-with-kbd\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, "", "version")
	if res.err != nil {
		t.Fatalf("execute error: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "kbdwrap dev\n") {
		t.Errorf("stdout = %q", res.stdout)
	}
}
