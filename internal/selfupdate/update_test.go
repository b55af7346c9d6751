package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		wantName     string
		wantBinary   string
		wantZipped   bool
		wantErr      bool
	}{
		{"darwin", "amd64", "zenspace_Darwin_all.tar.gz", "zenspace", false, false},
		{"darwin", "arm64", "zenspace_Darwin_all.tar.gz", "zenspace", false, false},
		{"linux", "amd64", "zenspace_Linux_x86_64.tar.gz", "zenspace", false, false},
		{"linux", "arm64", "zenspace_Linux_arm64.tar.gz", "zenspace", false, false},
		{"linux", "386", "zenspace_Linux_i386.tar.gz", "zenspace", false, false},
		{"windows", "amd64", "zenspace_Windows_x86_64.zip", "zenspace.exe", true, false},
		{"windows", "arm64", "zenspace_Windows_arm64.zip", "zenspace.exe", true, false},
		{"freebsd", "amd64", "", "", false, true},
		{"linux", "mips", "", "", false, true},
	}
	for _, tt := range tests {
		got, err := assetFor(tt.goos, tt.goarch)
		if tt.wantErr {
			require.Error(t, err, "%s/%s", tt.goos, tt.goarch)
			continue
		}
		require.NoError(t, err, "%s/%s", tt.goos, tt.goarch)
		assert.Equal(t, tt.wantName, got.name)
		assert.Equal(t, tt.wantBinary, got.binary)
		assert.Equal(t, tt.wantZipped, got.zipped)
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  zenspace_Darwin_all.tar.gz\n" +
		"not a checksum line\n" +
		"\n" +
		"def456  zenspace_Linux_x86_64.tar.gz\n")

	hash, ok := checksumFor(sums, "zenspace_Linux_x86_64.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", hash)

	_, ok = checksumFor(sums, "zenspace_Windows_x86_64.zip")
	assert.False(t, ok)
}

func TestVerify(t *testing.T) {
	asset := releaseAsset{name: "zenspace_Linux_x86_64.tar.gz", binary: "zenspace"}
	archive := []byte("archive-bytes")
	h := sha256.Sum256(archive)
	good := []byte(hex.EncodeToString(h[:]) + "  " + asset.name + "\n")

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, asset.verify(archive, good))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := asset.verify([]byte("tampered"), good)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("no entry", func(t *testing.T) {
		err := asset.verify(archive, []byte("abc  other-file.tar.gz\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no entry")
	})
}

func TestUnpack(t *testing.T) {
	bin := []byte("#!/bin/sh\necho zenspace")

	t.Run("tar.gz", func(t *testing.T) {
		asset := releaseAsset{name: "zenspace_Linux_x86_64.tar.gz", binary: "zenspace"}
		got, err := asset.unpack(tarGzArchive(t, "zenspace", bin))
		require.NoError(t, err)
		assert.Equal(t, bin, got)
	})

	t.Run("tar.gz nested path", func(t *testing.T) {
		asset := releaseAsset{name: "zenspace_Linux_x86_64.tar.gz", binary: "zenspace"}
		got, err := asset.unpack(tarGzArchive(t, "dist/zenspace", bin))
		require.NoError(t, err)
		assert.Equal(t, bin, got)
	})

	t.Run("tar.gz missing binary", func(t *testing.T) {
		asset := releaseAsset{name: "zenspace_Linux_x86_64.tar.gz", binary: "zenspace"}
		_, err := asset.unpack(tarGzArchive(t, "README.md", bin))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("zip", func(t *testing.T) {
		asset := releaseAsset{name: "zenspace_Windows_x86_64.zip", binary: "zenspace.exe", zipped: true}
		got, err := asset.unpack(zipArchive(t, "zenspace.exe", bin))
		require.NoError(t, err)
		assert.Equal(t, bin, got)
	})
}

func TestInstallBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "zenspace")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	require.NoError(t, installBinary(target, []byte("new")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func tarGzArchive(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func zipArchive(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
