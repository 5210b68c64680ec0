// Package nix resolves SDKs to Nix store paths using the NixHub API and the nix CLI.
package nix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultHubURL is the NixHub resolve endpoint.
	DefaultHubURL     = "https://search.devbox.sh/v2/resolve"
	httpClientTimeout = 30 * time.Second
)

var supportedSystems = map[string]struct{}{
	"x86_64-linux":   {},
	"aarch64-linux":  {},
	"x86_64-darwin":  {},
	"aarch64-darwin": {},
}

// HubClient implements ports.DependencyResolver using the NixHub API with an on-disk cache.
type HubClient struct {
	cacheDir   string
	baseURL    string
	httpClient *http.Client
	system     string
}

// HubOption configures a HubClient.
type HubOption func(*HubClient)

// WithHTTPClient replaces the HTTP client used to query NixHub.
func WithHTTPClient(client *http.Client) HubOption {
	return func(c *HubClient) { c.httpClient = client }
}

// WithBaseURL replaces the NixHub resolve endpoint.
func WithBaseURL(base string) HubOption {
	return func(c *HubClient) { c.baseURL = base }
}

// WithSystem overrides the detected Nix system string.
func WithSystem(system string) HubOption {
	return func(c *HubClient) { c.system = system }
}

// NewHubClient creates a HubClient caching responses under cacheDir.
// An empty cacheDir selects domain.DefaultNixHubCachePath.
func NewHubClient(cacheDir string, opts ...HubOption) (*HubClient, error) {
	if cacheDir == "" {
		cacheDir = domain.DefaultNixHubCachePath()
	}
	cleanPath := filepath.Clean(cacheDir)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrNixCacheCreateFailed, err), "path", cleanPath)
	}

	c := &HubClient{
		cacheDir:   cleanPath,
		baseURL:    DefaultHubURL,
		httpClient: &http.Client{Timeout: httpClientTimeout},
		system:     currentSystem(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Resolve resolves a package alias and version to a Nixpkgs commit hash and attribute path.
// The on-disk cache is consulted before NixHub.
func (c *HubClient) Resolve(ctx context.Context, alias, version string) (commitHash, attrPath string, err error) {
	cachePath := c.cachePath(alias, version)
	commitHash, attrPath, err = c.loadFromCache(cachePath)
	if err == nil {
		return commitHash, attrPath, nil
	}

	resp, err := c.query(ctx, alias, version)
	if err != nil {
		return "", "", err
	}

	systemData, ok := resp.Systems[c.system]
	if !ok {
		notFound := zerr.With(zerr.Wrap(domain.ErrNixPackageNotFound, "no build for system"), "alias", alias)
		notFound = zerr.With(notFound, "version", version)
		return "", "", zerr.With(notFound, "system", c.system)
	}

	// Cache write failures do not affect the resolution.
	_ = c.saveToCache(cachePath, alias, version, resp)

	return systemData.FlakeInstallable.Ref.Rev, systemData.FlakeInstallable.AttrPath, nil
}

// CachePath returns the cache file used for alias@version.
func (c *HubClient) CachePath(alias, version string) string {
	return c.cachePath(alias, version)
}

func (c *HubClient) cachePath(alias, version string) string {
	sum := xxhash.Sum64String(alias + "@" + version)
	return filepath.Join(c.cacheDir, fmt.Sprintf("%016x.json", sum))
}

func (c *HubClient) loadFromCache(path string) (commitHash, attrPath string, err error) {
	//nolint:gosec // Path is built from the cache directory and a hashed file name.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", domain.ErrNixCacheReadFailed
		}
		return "", "", zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixCacheReadFailed, err))
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", "", zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixCacheUnmarshalFailed, err))
	}

	systemCache, ok := entry.Systems[c.system]
	if !ok {
		return "", "", domain.ErrNixCacheReadFailed
	}
	return systemCache.FlakeInstallable.Ref.Rev, systemCache.FlakeInstallable.AttrPath, nil
}

func (c *HubClient) saveToCache(path, alias, version string, resp *HubResponse) error {
	systems := make(map[string]SystemCache, len(resp.Systems))
	for name, data := range resp.Systems {
		if _, ok := supportedSystems[name]; !ok {
			continue
		}
		systems[name] = SystemCache{FlakeInstallable: data.FlakeInstallable, Outputs: data.Outputs}
	}

	data, err := json.MarshalIndent(cacheEntry{
		Alias:     alias,
		Version:   version,
		Systems:   systems,
		Timestamp: time.Now(),
	}, "", "  ")
	if err != nil {
		return zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixCacheMarshalFailed, err))
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixCacheWriteFailed, err))
	}
	return nil
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "nixhub-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (c *HubClient) query(ctx context.Context, alias, version string) (*HubResponse, error) {
	q := url.Values{}
	q.Set("name", alias)
	q.Set("version", version)
	endpoint := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixAPIRequestFailed, err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixAPIRequestFailed, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		notFound := zerr.With(zerr.Wrap(domain.ErrNixPackageNotFound, "nixhub returned 404"), "alias", alias)
		return nil, zerr.With(notFound, "version", version)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(zerr.Wrap(domain.ErrNixAPIRequestFailed, "unexpected status"), "status_code", resp.StatusCode)
		apiErr = zerr.With(apiErr, "alias", alias)
		return nil, zerr.With(apiErr, "version", version)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixAPIRequestFailed, err))
	}

	var hubResp HubResponse
	if err := json.Unmarshal(body, &hubResp); err != nil {
		return nil, zerr.WithStack(fmt.Errorf("%w: %w", domain.ErrNixAPIParseFailed, err))
	}
	if len(hubResp.Systems) == 0 {
		notFound := zerr.With(zerr.Wrap(domain.ErrNixPackageNotFound, "no systems in response"), "alias", alias)
		return nil, zerr.With(notFound, "version", version)
	}
	return &hubResp, nil
}

// currentSystem maps GOOS/GOARCH to a Nix system string.
func currentSystem() string {
	switch {
	case runtime.GOOS == "darwin" && runtime.GOARCH == "amd64":
		return "x86_64-darwin"
	case runtime.GOOS == "darwin" && runtime.GOARCH == "arm64":
		return "aarch64-darwin"
	case runtime.GOOS == "linux" && runtime.GOARCH == "arm64":
		return "aarch64-linux"
	default:
		return "x86_64-linux"
	}
}

var _ ports.DependencyResolver = (*HubClient)(nil)
