// Package robots reads and writes saved robot layouts. Files are JSON,
// optionally zstd-compressed when the name ends in ".zst".
package robots

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const Version = 1

type Robot struct {
	Version int    `json:"version"`
	Name    string `json:"name,omitempty"`
	Parts   []Part `json:"parts"`
}

type Part struct {
	ID       string     `json:"id"`
	Name     string     `json:"name,omitempty"`
	Mesh     string     `json:"mesh"`
	Category string     `json:"category"`
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw,omitempty"`
}

//go:embed robot.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("robot.schema.json", schemaJSON)

func compressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}

// Encode writes r as indented JSON. A zero Version is written as the
// current one.
func Encode(w io.Writer, r Robot) error {
	if r.Version == 0 {
		r.Version = Version
	}
	if r.Parts == nil {
		r.Parts = []Part{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Decode validates data against the robot schema before unmarshalling it.
func Decode(data []byte) (Robot, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Robot{}, fmt.Errorf("parse: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return Robot{}, fmt.Errorf("validate: %w", err)
	}
	var r Robot
	if err := json.Unmarshal(data, &r); err != nil {
		return Robot{}, fmt.Errorf("decode: %w", err)
	}
	return r, nil
}

func Save(path string, r Robot) error {
	if err := save(path, r); err != nil {
		return fmt.Errorf("robots: save %s: %w", path, err)
	}
	return nil
}

func save(path string, r Robot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return err
	}
	// Validate what we are about to write so a bad save never clobbers a
	// good file.
	if _, err := Decode(buf.Bytes()); err != nil {
		return err
	}

	data := buf.Bytes()
	if compressed(path) {
		var zbuf bytes.Buffer
		enc, err := zstd.NewWriter(&zbuf, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if _, err := enc.Write(data); err != nil {
			_ = enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		data = zbuf.Bytes()
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes to a temp file next to path and renames it into
// place, so readers see either the old robot or the new one.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func Load(path string) (Robot, error) {
	r, err := load(path)
	if err != nil {
		return Robot{}, fmt.Errorf("robots: load %s: %w", path, err)
	}
	return r, nil
}

func load(path string) (Robot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Robot{}, err
	}
	defer f.Close()

	var src io.Reader = f
	if compressed(path) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return Robot{}, err
		}
		defer dec.Close()
		src = dec
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return Robot{}, err
	}
	return Decode(data)
}
