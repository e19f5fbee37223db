package middleware

import (
	"os"
	"path/filepath"
	"testing"
)

func TestComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.css")
	content := []byte("body { color: red; }")
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	hash := computeFileHash(tmpFile)
	if hash == "" {
		t.Error("expected a hash, got empty string")
	}
	if len(hash) != 8 {
		t.Errorf("expected hash length 8, got %d", len(hash))
	}

	// Same content hashes the same
	if again := computeFileHash(tmpFile); again != hash {
		t.Errorf("hash not stable: %s vs %s", hash, again)
	}

	if hash = computeFileHash("non_existent_file.css"); hash != "" {
		t.Errorf("expected empty hash for non-existent file, got %s", hash)
	}
}

func TestGetVersionsDefault(t *testing.T) {
	// The globals may or may not have been initialized by another test;
	// either way the getters must never return an empty version.
	if v := GetCSSVersion(); v == "" {
		t.Error("GetCSSVersion returned empty string")
	}
	if v := GetFaviconVersion(); v == "" {
		t.Error("GetFaviconVersion returned empty string")
	}
}

func TestInitAssetVersionsIdempotent(t *testing.T) {
	InitAssetVersions()
	first := GetCSSVersion()
	InitAssetVersions()
	if second := GetCSSVersion(); second != first {
		t.Errorf("version changed across init calls: %s vs %s", first, second)
	}
}
