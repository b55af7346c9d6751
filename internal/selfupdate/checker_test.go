package selfupdate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("newer available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/zenspace/zenspace/releases/latest", r.URL.Path)
			_, _ = w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.3.2"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.4.0", result.LatestVersion)
	})

	t.Run("same version", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.3.2","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.3.2"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"2.0.0","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("missing tag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
	})
}

// releaseServer serves a fake v2.0.0 release: latest-release metadata, the
// platform archive, and its checksums.txt.
func releaseServer(t *testing.T, asset releaseAsset, archive []byte, sums string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/zenspace/zenspace/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/zenspace/zenspace/releases/download/v2.0.0/" + asset.name:
			_, _ = w.Write(archive)
		case "/zenspace/zenspace/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(sums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestUpdate(t *testing.T) {
	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	bin := []byte("new-zenspace-binary")
	var archive []byte
	if asset.zipped {
		archive = zipArchive(t, asset.binary, bin)
	} else {
		archive = tarGzArchive(t, asset.binary, bin)
	}
	h := sha256.Sum256(archive)
	goodSums := hex.EncodeToString(h[:]) + "  " + asset.name + "\n"

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, asset.binary)
		require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

		server := releaseServer(t, asset, archive, goodSums)
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []Stage
		err := checker.Update(context.Background(), "v1.0.0", func(s Stage, _ string) {
			stages = append(stages, s)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, bin, got)
		assert.Equal(t,
			[]Stage{StageCheck, StageDownload, StageVerify, StageInstall, StageDone},
			stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), "(devel)", func(Stage, string) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), "v1.0.0", func(Stage, string) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSums := "0000000000000000000000000000000000000000000000000000000000000000  " +
			asset.name + "\n"
		server := releaseServer(t, asset, archive, badSums)
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), "v1.0.0", func(Stage, string) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/zenspace/zenspace/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":""}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), "v1.0.0", func(Stage, string) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}
