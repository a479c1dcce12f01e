package validation_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"tubesonic/internal/validation"
)

// TestValidateDirectory runs checks for directory validation --------------------------------------------------------------------
func TestValidateDirectory(t *testing.T) {
	tmp := t.TempDir()

	if _, err := validation.ValidateDirectory(tmp, false); err != nil {
		t.Fatalf("expected existing directory to pass, got %v", err)
	}

	missing := filepath.Join(tmp, "a", "b")
	if _, err := validation.ValidateDirectory(missing, false); err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}

	info, err := validation.ValidateDirectory(missing, true)
	if err != nil {
		t.Fatalf("expected directory to be created, got %v", err)
	}
	if info == nil || !info.IsDir() {
		t.Fatalf("expected directory info, got %v", info)
	}

	f := filepath.Join(tmp, "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := validation.ValidateDirectory(f, true); err == nil {
		t.Fatal("expected error for file passed as directory, got nil")
	}
}

// TestValidateFile runs checks for file validation --------------------------------------------------------------------
func TestValidateFile(t *testing.T) {
	tmp := t.TempDir()

	if _, err := validation.ValidateFile(tmp); err == nil {
		t.Fatal("expected error for directory passed as file, got nil")
	}
	if _, err := validation.ValidateFile(filepath.Join(tmp, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}

	f := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(f, []byte("debug: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := validation.ValidateFile(f); err != nil {
		t.Fatalf("expected file to pass, got %v", err)
	}
}

// TestValidateCookieSource checks browser normalization --------------------------------------------------------------------
func TestValidateCookieSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"firefox", "firefox", false},
		{" Chrome ", "chrome", false},
		{"VIVALDI", "vivaldi", false},
		{"lynx", "", true},
	}

	for _, tt := range tests {
		got, err := validation.ValidateCookieSource(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: expected error=%v, got %v", tt.in, tt.wantErr, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestSupportedBrowsers(t *testing.T) {
	t.Parallel()

	got := validation.SupportedBrowsers()
	if !slices.IsSorted(got) {
		t.Fatalf("expected sorted names, got %v", got)
	}
	if !slices.Contains(got, "Firefox") || !slices.Contains(got, "Chrome") {
		t.Fatalf("expected title-cased browser names, got %v", got)
	}
}
