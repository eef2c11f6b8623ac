package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/verilog2oa/pkg/oa"
	"github.com/spf13/cobra"
)

const netlist = `// two cells
module foo(input a, output b);
  assign b = a;
endmodule
module bar(x);
endmodule
`

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(c *cobra.Command, args ...string) result {
	verbose = false

	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)

	code := run(c)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "design.v")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no filesystem writes in %s, found %d entries", dir, len(entries))
	}
}

// TestSplitE2E tests the netlist and functional commands end-to-end
func TestSplitE2E(t *testing.T) {
	input := writeInput(t, netlist)

	tests := []struct {
		name        string
		args        func(root string) []string
		wantCode    int
		wantDirs    []string
		wantStdout  []string
		wantStderr  []string
		wantNoWrite bool
	}{
		{
			name:     "functional",
			args:     func(root string) []string { return []string{"functional", "--root", root, input} },
			wantDirs: []string{"foo/functional", "bar/functional"},
		},
		{
			name: "netlist with glob",
			args: func(root string) []string {
				return []string{"netlist", "--root", root, filepath.Join(filepath.Dir(input), "*.v")}
			},
			wantDirs: []string{"foo/netlist", "bar/netlist"},
		},
		{
			name:       "verbose",
			args:       func(root string) []string { return []string{"functional", "-v", "--root", root, input} },
			wantDirs:   []string{"foo/functional", "bar/functional"},
			wantStdout: []string{"Input: " + input + ", 2 module(s)", "Wrote 2 cell view(s)"},
		},
		{
			name:        "dry run",
			args:        func(root string) []string { return []string{"functional", "--dry-run", "--root", root, input} },
			wantStdout:  []string{"Would replace 2 cell view(s)", filepath.Join("foo", "functional")},
			wantNoWrite: true,
		},
		{
			name:        "missing argument",
			args:        func(root string) []string { return []string{"functional", "--root", root} },
			wantCode:    1,
			wantStdout:  []string{"Usage:"},
			wantStderr:  []string{"Error: accepts 1 arg(s), received 0"},
			wantNoWrite: true,
		},
		{
			name:        "too many arguments",
			args:        func(root string) []string { return []string{"netlist", "--root", root, input, input} },
			wantCode:    1,
			wantStderr:  []string{"accepts 1 arg(s), received 2"},
			wantNoWrite: true,
		},
		{
			name:        "missing file",
			args:        func(root string) []string { return []string{"functional", "--root", root, input + ".missing"} },
			wantCode:    1,
			wantStderr:  []string{"Error: file not found"},
			wantNoWrite: true,
		},
		{
			name: "glob without match",
			args: func(root string) []string {
				return []string{"netlist", "--root", root, filepath.Join(filepath.Dir(input), "*.sv")}
			},
			wantCode:    1,
			wantStderr:  []string{"file not found"},
			wantNoWrite: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()

			res := execute(newRootCmd(), tt.args(root)...)

			if res.code != tt.wantCode {
				t.Fatalf("Expected exit code %d, got %d\nstdout: %s\nstderr: %s",
					tt.wantCode, res.code, res.stdout, res.stderr)
			}

			// Cobra prints usage through the error writer unless configured otherwise
			combined := res.stdout + res.stderr
			for _, want := range tt.wantStdout {
				if !strings.Contains(combined, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, combined)
				}
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(res.stderr, want) {
					t.Errorf("Stderr missing expected string: %q\nGot:\n%s", want, res.stderr)
				}
			}

			if tt.wantNoWrite {
				assertEmptyDir(t, root)
			}

			for _, dir := range tt.wantDirs {
				cell := filepath.Join(root, filepath.FromSlash(dir))
				src, err := os.ReadFile(filepath.Join(cell, oa.NetlistFile))
				if err != nil {
					t.Errorf("Missing %s: %v", oa.NetlistFile, err)
					continue
				}
				if !strings.HasPrefix(string(src), "module ") || !strings.HasSuffix(string(src), "endmodule") {
					t.Errorf("Unexpected module source in %s: %q", dir, src)
				}
				tag, err := os.ReadFile(filepath.Join(cell, oa.TagFile))
				if err != nil {
					t.Errorf("Missing %s: %v", oa.TagFile, err)
					continue
				}
				if string(tag) != oa.MasterTag {
					t.Errorf("Unexpected tag in %s: %q", dir, tag)
				}
			}
		})
	}
}

func TestSplitWarnings(t *testing.T) {
	input := writeInput(t, "\nmodule Upper(a);\nendmodule\nmodule dup(a);\nendmodule\nmodule dup(b);\nendmodule\n")
	root := t.TempDir()

	res := execute(newRootCmd(), "functional", "--root", root, input)
	if res.code != 0 {
		t.Fatalf("Expected success, got %d: %s", res.code, res.stderr)
	}

	for _, want := range []string{
		"Warning: skipping module at byte 1",
		"Warning: module dup declared more than once",
	} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("Stderr missing expected string: %q\nGot:\n%s", want, res.stderr)
		}
	}
}

func TestSplitNoModules(t *testing.T) {
	input := writeInput(t, "// empty\n")
	root := t.TempDir()

	res := execute(newRootCmd(), "functional", "--root", root, input)
	if res.code != 0 {
		t.Fatalf("Expected success, got %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "Warning: no modules found") {
		t.Errorf("Expected a no modules warning, got %q", res.stderr)
	}
	assertEmptyDir(t, root)
}

// TestStandaloneE2E covers the single-purpose binaries
func TestStandaloneE2E(t *testing.T) {
	input := writeInput(t, netlist)

	t.Run("functional default root is relative", func(t *testing.T) {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		work := t.TempDir()
		if err := os.Chdir(work); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Chdir(wd) })

		res := execute(newStandaloneCmd(functionalVariant), input)
		if res.code != 0 {
			t.Fatalf("Expected success, got %d: %s", res.code, res.stderr)
		}

		for _, cell := range []string{"foo", "bar"} {
			path := filepath.Join(work, "oa", cell, "functional", oa.TagFile)
			if _, err := os.Stat(path); err != nil {
				t.Errorf("Expected %s: %v", path, err)
			}
		}
	})

	t.Run("netlist usage", func(t *testing.T) {
		res := execute(newStandaloneCmd(netlistVariant))
		if res.code != 1 {
			t.Fatalf("Expected exit code 1, got %d", res.code)
		}
		if !strings.Contains(res.stdout+res.stderr, "create_oa_from_verilog <netlist_file_path>") {
			t.Errorf("Expected usage line, got:\n%s%s", res.stdout, res.stderr)
		}
	})

	t.Run("netlist with root", func(t *testing.T) {
		root := t.TempDir()
		res := execute(newStandaloneCmd(netlistVariant), "--root", root, input)
		if res.code != 0 {
			t.Fatalf("Expected success, got %d: %s", res.code, res.stderr)
		}
		if _, err := os.Stat(filepath.Join(root, "foo", "netlist", oa.NetlistFile)); err != nil {
			t.Errorf("Expected foo netlist: %v", err)
		}
	})
}

// TestInfoE2E tests the info command end-to-end
func TestInfoE2E(t *testing.T) {
	input := writeInput(t, netlist)

	t.Run("text", func(t *testing.T) {
		root := t.TempDir()
		res := execute(newRootCmd(), "info", "--functional", "--root", root, input)
		if res.code != 0 {
			t.Fatalf("Expected success, got %d: %s", res.code, res.stderr)
		}
		for _, want := range []string{
			"Modules: 2",
			"foo",
			"2 ports (1 input, 1 output)",
			"1 ports (1 undeclared)",
			filepath.Join(root, "bar", "functional"),
		} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("Output missing expected string: %q\nGot:\n%s", want, res.stdout)
			}
		}
		assertEmptyDir(t, root)
	})

	t.Run("json", func(t *testing.T) {
		res := execute(newRootCmd(), "info", "--json", "--root", "/lib", input)
		if res.code != 0 {
			t.Fatalf("Expected success, got %d: %s", res.code, res.stderr)
		}

		var info NetlistInfo
		if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
			t.Fatalf("Invalid JSON output: %v\n%s", err, res.stdout)
		}
		if info.ModuleCount != 2 || len(info.Modules) != 2 {
			t.Fatalf("Expected 2 modules, got %+v", info)
		}

		foo := info.Modules[0]
		if foo.Name != "foo" || foo.Line != 2 || foo.Target != filepath.Join("/lib", "foo", "netlist") {
			t.Errorf("Unexpected foo entry %+v", foo)
		}
		if len(foo.Ports) != 2 || foo.Ports[0] != "input a" || foo.Ports[1] != "output b" {
			t.Errorf("Unexpected foo ports %v", foo.Ports)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		res := execute(newRootCmd(), "info", input+".missing")
		if res.code != 1 {
			t.Fatalf("Expected exit code 1, got %d", res.code)
		}
	})
}

func TestSplitFilesystemError(t *testing.T) {
	input := writeInput(t, netlist)
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := execute(newRootCmd(), "functional", "--root", filepath.Join(blocker, "oa"), input)
	if res.code != 1 {
		t.Fatalf("Expected exit code 1, got %d\nstdout: %s\nstderr: %s", res.code, res.stdout, res.stderr)
	}
	if !strings.Contains(res.stderr, "Error: module foo") {
		t.Errorf("Expected error on stderr, got %q", res.stderr)
	}
	if strings.Contains(res.stdout+res.stderr, "Usage:") {
		t.Errorf("Filesystem errors must not print usage:\n%s%s", res.stdout, res.stderr)
	}
}

func TestInfoMatchesRun(t *testing.T) {
	input := writeInput(t, "\nmodule Upper(a);\nendmodule\nmodule dup(a);\nendmodule\nmodule dup(b);\nendmodule\n")
	root := t.TempDir()

	res := execute(newRootCmd(), "info", "--json", "--functional", "--root", root, input)
	if res.code != 0 {
		t.Fatalf("Expected success, got %d: %s", res.code, res.stderr)
	}

	var info NetlistInfo
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, res.stdout)
	}
	if len(info.Modules) != 3 {
		t.Fatalf("Expected 3 modules, got %d", len(info.Modules))
	}

	if m := info.Modules[0]; m.Name != "" || m.Target != "" || m.Duplicate {
		t.Errorf("Unexpected unnamed entry %+v", m)
	}
	want := filepath.Join(root, "dup", "functional")
	for _, m := range info.Modules[1:] {
		if m.Name != "dup" || !m.Duplicate || m.Target != want {
			t.Errorf("Unexpected dup entry %+v", m)
		}
	}
	assertEmptyDir(t, root)
}
