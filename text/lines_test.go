package text

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"carriage return kept", "a\r\nb\r\n", []string{"a\r", "b\r"}},
		{"two trailing newlines", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	inputs := []string{"a\n", "a\nb\n", "x\r\ny\r\n", "\n", "a\n\n"}
	for _, in := range inputs {
		if got := Join(Split(in)); got != in {
			t.Errorf("Join(Split(%q)) = %q", in, got)
		}
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		bom     bool
	}{
		{"bom.md", "\ufeff# A\nb\n", true},
		{"plain.md", "# A\nb\n", false},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}
		lines, bom, err := ReadDocument(path)
		if err != nil {
			t.Fatalf("ReadDocument(%s): %v", tt.name, err)
		}
		if bom != tt.bom {
			t.Errorf("ReadDocument(%s) bom = %v, want %v", tt.name, bom, tt.bom)
		}
		if len(lines) != 2 || lines[0] != "# A" {
			t.Errorf("ReadDocument(%s) lines = %q", tt.name, lines)
		}
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte("\xEF\xBB\xBFhello"))
	if err != nil {
		t.Fatalf("Decode with BOM: %v", err)
	}
	if got != "hello" {
		t.Errorf("Decode with BOM = %q, want %q", got, "hello")
	}

	got, err = Decode([]byte("plain 한글"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "plain 한글" {
		t.Errorf("Decode = %q", got)
	}

	if _, err := Decode([]byte{0xff, 0xfe, 0x00, 0x41}); !errors.Is(err, ErrNotText) {
		t.Errorf("Decode invalid UTF-8 error = %v, want ErrNotText", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.ts")
	if err := os.WriteFile(good, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadFile(good)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("ReadFile returned %d lines, want 3", len(lines))
	}

	bad := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(bad, []byte{0x89, 'P', 'N', 'G', 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(bad); !errors.Is(err, ErrNotText) {
		t.Errorf("ReadFile binary error = %v, want ErrNotText", err)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.ts")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(" \t\r") {
		t.Error("expected whitespace-only line to be blank")
	}
	if IsBlank(" x ") {
		t.Error("expected non-empty line not to be blank")
	}
}
