package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum mismatch")
)

// Stage identifies a step of the update pipeline, reported as it starts.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageInstall  Stage = "install"
	StageDone     Stage = "done"
)

// Update replaces the running binary with the latest release: check the
// release feed, download the platform archive, verify it against
// checksums.txt, and swap the executable atomically. report is called at
// the start of each stage with a human-readable detail line.
func (c *Checker) Update(ctx context.Context, currentVersion string, report func(Stage, string)) error {
	if currentVersion == "(devel)" {
		return ErrDevBuild
	}

	report(StageCheck, "Checking for the latest release...")
	result, err := c.Check(ctx, &CheckInput{Version: currentVersion})
	if err != nil {
		return fmt.Errorf("check release: %w", err)
	}
	if !result.UpdateAvailable {
		return ErrAlreadyLatest
	}
	tag := result.LatestVersion

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	report(StageDownload, "Downloading "+tag+"...")
	archive, err := c.fetch(ctx, c.assetURL(tag, asset.name))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verifying checksum...")
	sums, err := c.fetch(ctx, c.assetURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	if err := asset.verify(archive, sums); err != nil {
		return err
	}

	report(StageInstall, "Installing...")
	bin, err := asset.unpack(archive)
	if err != nil {
		return fmt.Errorf("unpack archive: %w", err)
	}
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if err := installBinary(target, bin); err != nil {
		return fmt.Errorf("install %s: %w", target, err)
	}

	report(StageDone, "Updated to "+tag)
	return nil
}

func (c *Checker) assetURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// releaseAsset is one platform's published archive. Release archives carry
// the binary at their root under the bare program name.
type releaseAsset struct {
	name   string
	binary string
	zipped bool
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// assetFor maps a GOOS/GOARCH pair to its release archive. Darwin ships a
// single universal build.
func assetFor(goos, goarch string) (releaseAsset, error) {
	if goos == "darwin" {
		return releaseAsset{name: "zenspace_Darwin_all.tar.gz", binary: "zenspace"}, nil
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return releaseAsset{}, fmt.Errorf("no release build for %s/%s", goos, goarch)
	}
	switch goos {
	case "linux":
		return releaseAsset{name: "zenspace_Linux_" + arch + ".tar.gz", binary: "zenspace"}, nil
	case "windows":
		return releaseAsset{name: "zenspace_Windows_" + arch + ".zip", binary: "zenspace.exe", zipped: true}, nil
	default:
		return releaseAsset{}, fmt.Errorf("no release build for %s/%s", goos, goarch)
	}
}

// verify checks the downloaded archive against its checksums.txt entry.
func (a releaseAsset) verify(archive, sums []byte) error {
	want, ok := checksumFor(sums, a.name)
	if !ok {
		return fmt.Errorf("checksums.txt has no entry for %s", a.name)
	}
	got := sha256.Sum256(archive)
	if hex.EncodeToString(got[:]) != want {
		return fmt.Errorf("%w for %s", ErrChecksum, a.name)
	}
	return nil
}

// checksumFor scans goreleaser-style "hash  filename" lines for name.
func checksumFor(sums []byte, name string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == name {
			return fields[0], true
		}
	}
	return "", false
}

// unpack extracts the binary from the archive.
func (a releaseAsset) unpack(archive []byte) ([]byte, error) {
	if a.zipped {
		return zipEntry(archive, a.binary)
	}
	return tarEntry(archive, a.binary)
}

func tarEntry(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("%s missing from archive", name)
}

func zipEntry(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s missing from archive", name)
}

// installBinary swaps the executable atomically: the new binary lands in a
// temp file beside the target, inherits its permission bits, and is renamed
// over it so a crash mid-install never leaves a half-written executable.
func installBinary(path string, bin []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".zenspace-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(bin); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
