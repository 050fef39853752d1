package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"audiotools/internal/testsupport"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if result := CheckDirectoryAccess("dir", dir); !result.Passed {
		t.Fatalf("writable temp dir should pass: %+v", result)
	}

	if result := CheckDirectoryAccess("dir", filepath.Join(dir, "absent")); result.Passed {
		t.Fatalf("missing dir should fail: %+v", result)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("dir", file); result.Passed {
		t.Fatalf("regular file should fail: %+v", result)
	}
}

func TestCheckDiskSpace(t *testing.T) {
	if result := CheckDiskSpace("space", t.TempDir(), 1); !result.Passed {
		t.Fatalf("one free byte should pass: %+v", result)
	}
	if result := CheckDiskSpace("space", t.TempDir(), 1<<62); result.Passed {
		t.Fatalf("absurd requirement should fail: %+v", result)
	}
}

func TestCheckBinary(t *testing.T) {
	if result := CheckBinary("sh", "sh", false); !result.Passed {
		t.Fatalf("sh should be on PATH: %+v", result)
	}
	if result := CheckBinary("ghost", "definitely-not-a-binary", false); result.Passed {
		t.Fatal("missing binary should fail")
	}
	result := CheckBinary("blank", "  ", true)
	if result.Passed || !result.Optional {
		t.Fatalf("blank command: %+v", result)
	}
}

func TestCheckCommandUsesExecutableField(t *testing.T) {
	if result := CheckCommand("model", "sh -c 'echo 1.0'", false); !result.Passed {
		t.Fatalf("command with flags should check only the executable: %+v", result)
	}
	if result := CheckCommand("model", "", true); result.Passed {
		t.Fatal("empty command should fail")
	}
}

func TestRunAllWithStubbedBinaries(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	results := RunAll(cfg)
	if len(results) == 0 {
		t.Fatal("expected checks to run")
	}
	if !Passed(results) {
		t.Fatalf("stubbed environment should pass: %+v", results)
	}
}

func TestPassedIgnoresOptionalFailures(t *testing.T) {
	results := []Result{
		{Name: "a", Passed: true},
		{Name: "b", Passed: false, Optional: true},
	}
	if !Passed(results) {
		t.Fatal("optional failure should not fail the run")
	}
	results = append(results, Result{Name: "c", Passed: false})
	if Passed(results) {
		t.Fatal("required failure must fail the run")
	}
}
