package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/k1LoW/favgen"
	"github.com/k1LoW/favgen/config"
)

func resetFlags() {
	out = ""
	dryRun = false
	check = false
}

func TestOutDir(t *testing.T) {
	tests := []struct {
		name string
		flag string
		cfg  *config.Config
		want string
	}{
		{"default", "", &config.Config{}, "."},
		{"config", "", &config.Config{OutDir: "public"}, "public"},
		{"flag wins over config", "dist", &config.Config{OutDir: "public"}, "dist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			t.Cleanup(resetFlags)
			out = tt.flag
			if got := outDir(tt.cfg); got != tt.want {
				t.Errorf("outDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDryRun(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs([]string{"mytab", "--dry-run"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	want, err := favgen.Mytab().Manifest()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != string(want)+"\n" {
		t.Errorf("got %q, want %q", got, string(want)+"\n")
	}
}

func TestDryRunWritesStdout(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(errBuf)
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	rootCmd.SetArgs([]string{"mytab", "--dry-run"})
	execErr := rootCmd.Execute()
	_ = w.Close()
	os.Stdout = stdout
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if execErr != nil {
		t.Fatal(execErr)
	}
	want, err := favgen.Mytab().Manifest()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want)+"\n" {
		t.Errorf("stdout = %q, want %q", got, string(want)+"\n")
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
}

func TestGenerateAndVerify(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "icons")
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"mytab", "--out", dir, "--verify"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, target := range favgen.Mytab().Targets {
		if _, err := os.Stat(filepath.Join(dir, target.Name)); err != nil {
			t.Error(err)
		}
	}

	resetFlags()
	rootCmd.SetArgs([]string{"verify", "mytab", "--out", dir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(filepath.Join(dir, "mytab-16.png")); err != nil {
		t.Fatal(err)
	}
	resetFlags()
	rootCmd.SetArgs([]string{"verify", "mytab", "--out", dir})
	if err := rootCmd.Execute(); err == nil {
		t.Error("verify succeeded with a missing file")
	}
}

func TestVerifyUnknownSet(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	rootCmd.SetArgs([]string{"verify", "apple"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("verify accepted an unknown set")
	}
}
