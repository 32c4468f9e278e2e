package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CindyYangCS/CircuitCider/robots"
)

func writeRobot(t *testing.T, path string) {
	t.Helper()
	r := robots.Robot{
		Name: "rover",
		Parts: []robots.Part{{
			ID:       "0b0c7e1e-5a3c-4c1e-9d55-6f1d2b3c4d5e",
			Mesh:     "parts/wheel.glb",
			Category: "Wheel",
		}},
	}
	if err := robots.Save(path, r); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "robot.json")
	writeRobot(t, good)
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"version": 2, "parts": []}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{"no_args", nil, true, ""},
		{"check", []string{good}, false, "robot.json: 1 parts (rover)"},
		{"bad_file_fails", []string{good, bad}, true, "robot.json: 1 parts"},
		{"missing_file", []string{filepath.Join(dir, "nope.json")}, true, ""},
		{"out_needs_one_input", []string{"-o", filepath.Join(dir, "x.json"), good, good}, true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tc.args, &out)
			if (err != nil) != tc.wantErr {
				t.Fatalf("run(%v) error = %v, wantErr %v", tc.args, err, tc.wantErr)
			}
			if !strings.Contains(out.String(), tc.wantOutput) {
				t.Fatalf("output %q does not contain %q", out.String(), tc.wantOutput)
			}
		})
	}
}

func TestRunConvertsToCompressed(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "robot.json")
	writeRobot(t, src)
	dst := filepath.Join(dir, "robot.json.zst")

	var out bytes.Buffer
	if err := run([]string{"-o", dst, src}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		t.Fatalf("expected compressed output, got plain JSON")
	}
	r, err := robots.Load(dst)
	if err != nil {
		t.Fatalf("load converted: %v", err)
	}
	if r.Name != "rover" || len(r.Parts) != 1 {
		t.Fatalf("unexpected robot %+v", r)
	}
}
