package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "traitlab_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "traitlab_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "traitlab_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "traitlab_Linux_arm64.tar.gz", false},
		{"windows amd64", "windows", "amd64", "traitlab_Windows_x86_64.zip", false},
		{"unsupported os", "plan9", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  traitlab_Linux_x86_64.tar.gz\nbadline\n\nfoo bar baz\ndef456  traitlab_Darwin_all.tar.gz\n"
	got := parseChecksums([]byte(input))
	want := map[string]string{
		"traitlab_Linux_x86_64.tar.gz": "abc123",
		"traitlab_Darwin_all.tar.gz":   "def456",
	}
	assert.Equal(t, want, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release archive")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho traitlab")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "traitlab", content)
		got, err := extractBinary(archive, "traitlab_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "README.md", content)
		_, err := extractBinary(archive, "traitlab_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdatePreservesMode(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "traitlab")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary")
	h := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCheck(t *testing.T) {
	t.Run("newer available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/smehra/traitlab/releases/latest", r.URL.Path)
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.2.0", result.LatestVersion)
	})

	t.Run("up to date", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.1.0","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "1.1.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})
}

func TestUpdate(t *testing.T) {
	content := []byte("new-traitlab-binary")
	archive := buildTarGz(t, "traitlab", content)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])

	// Update always resolves the asset for the running platform, so the
	// server must serve whatever name that is.
	asset, err := assetName()
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "traitlab")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		checksums := fmt.Sprintf("%s  %s\n", archiveHex, asset)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/smehra/traitlab/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case fmt.Sprintf("/smehra/traitlab/releases/download/v2.0.0/%s", asset):
				_, _ = w.Write(archive)
			case "/smehra/traitlab/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		checksums := fmt.Sprintf("%s  %s\n", "0000000000000000000000000000000000000000000000000000000000000000", asset)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/smehra/traitlab/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":""}`))
			case fmt.Sprintf("/smehra/traitlab/releases/download/v2.0.0/%s", asset):
				_, _ = w.Write(archive)
			case "/smehra/traitlab/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
