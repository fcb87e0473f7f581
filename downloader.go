package dynlib

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cavaliergopher/grab/v3"
)

const githubAPIBase = "https://api.github.com"

// Downloader fetches prebuilt native library assets from a GitHub
// repository's releases into a target directory.
type Downloader struct {
	client    *grab.Client
	apiBase   string
	repo      string
	base      string
	targetDir string
}

// NewDownloader returns a Downloader for the GitHub repository given as
// "owner/name", fetching builds of the base library (its name without the
// lib prefix and extension) into targetDir.
func NewDownloader(repo, base, targetDir string) *Downloader {
	return &Downloader{
		client:    grab.NewClient(),
		apiBase:   githubAPIBase,
		repo:      repo,
		base:      base,
		targetDir: targetDir,
	}
}

// Release is the subset of GitHub release metadata the Downloader uses.
type Release struct {
	TagName string         `json:"tag_name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is one downloadable file attached to a Release.
type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// Asset is a library build chosen from a Release.
type Asset struct {
	Name    string
	URL     string
	Size    int64
	Variant string
}

// LatestRelease fetches the metadata of the repository's latest release.
func (d *Downloader) LatestRelease() (*Release, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(d.apiBase + "/repos/" + d.repo + "/releases/latest")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode release info: %w", err)
	}

	return &release, nil
}

// SelectAsset picks the best asset in release for the platform: among the
// files matching the platform's naming convention, the most capable variant
// the CPU supports, or the first match when no listed variant is supported.
func (d *Downloader) SelectAsset(release *Release, platform *Platform) (*Asset, error) {
	var candidates []Asset
	for _, asset := range release.Assets {
		if !d.matchesPlatform(asset.Name, platform) {
			continue
		}
		candidates = append(candidates, Asset{
			Name:    asset.Name,
			URL:     asset.BrowserDownloadURL,
			Size:    asset.Size,
			Variant: detectVariant(asset.Name),
		})
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("no suitable library found for platform %s/%s", platform.OS, platform.Arch)
	}

	for _, variant := range variants {
		if !platform.supportsVariant(variant) {
			continue
		}
		for i := range candidates {
			if candidates[i].Variant == variant {
				return &candidates[i], nil
			}
		}
	}
	return &candidates[0], nil
}

func (d *Downloader) matchesPlatform(filename string, platform *Platform) bool {
	return strings.HasSuffix(filename, platform.Extension) &&
		strings.Contains(filename, platform.Prefix+d.base)
}

// ProgressFunc is called during a download to report progress: bytes
// transferred so far, total bytes (-1 when unknown), the average transfer
// rate in MiB/s, and whether the download has finished.
type ProgressFunc func(bytesComplete, totalBytes int64, rate float64, done bool)

// Download fetches the asset into the target directory, resuming a partial
// file when one is already there, and returns the downloaded path.
func (d *Downloader) Download(asset *Asset) (string, error) {
	return d.DownloadWithProgress(asset, nil)
}

// DownloadWithProgress downloads the asset with a progress callback.
func (d *Downloader) DownloadWithProgress(asset *Asset, progress ProgressFunc) (string, error) {
	if err := os.MkdirAll(d.targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create target directory: %w", err)
	}

	httpReq, err := http.NewRequest("GET", asset.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	outputPath := filepath.Join(d.targetDir, asset.Name)
	req := &grab.Request{
		HTTPRequest: httpReq,
		Filename:    outputPath,
	}

	// A leftover partial file is picked up where it stopped.
	if info, err := os.Stat(outputPath); err == nil {
		fmt.Printf("Resuming download from %d bytes\n", info.Size())
	}

	resp := d.client.Do(req)

	if progress != nil {
		startTime := time.Now()
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()

		for {
			select {
			case <-t.C:
				progress(resp.BytesComplete(), resp.Size(), rateMiB(resp.BytesComplete(), startTime), false)
			case <-resp.Done:
				if err := resp.Err(); err != nil {
					return "", fmt.Errorf("download failed: %w", err)
				}
				progress(resp.BytesComplete(), resp.Size(), rateMiB(resp.BytesComplete(), startTime), true)
				return outputPath, nil
			}
		}
	}

	if err := resp.Err(); err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}

	return outputPath, nil
}

func rateMiB(bytes int64, start time.Time) float64 {
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(bytes) / (1024 * 1024) / elapsed
}

// DownloadLatest downloads the latest release build for the current
// platform and returns the downloaded path.
func (d *Downloader) DownloadLatest() (string, error) {
	return d.DownloadLatestWithProgress(nil)
}

// DownloadLatestWithProgress downloads with a progress callback.
func (d *Downloader) DownloadLatestWithProgress(progress ProgressFunc) (string, error) {
	platform := DetectPlatform()
	fmt.Printf("Detected platform: %s/%s\n", platform.OS, platform.Arch)

	release, err := d.LatestRelease()
	if err != nil {
		return "", err
	}
	fmt.Printf("Latest release: %s\n", release.TagName)

	asset, err := d.SelectAsset(release, platform)
	if err != nil {
		return "", err
	}
	fmt.Printf("Selected library: %s (%s variant, %d bytes)\n",
		asset.Name, asset.Variant, asset.Size)

	path, err := d.DownloadWithProgress(asset, progress)
	if err != nil {
		return "", err
	}

	fmt.Printf("Library downloaded to: %s\n", path)
	return path, nil
}
