package npm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	packageurl "github.com/package-url/packageurl-go"

	deperrors "github.com/matzehuels/depaudit/pkg/errors"
	"github.com/matzehuels/depaudit/pkg/integrations"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org"

// Name identifies this registry in logs and hooks.
const Name = "npm"

var acceptJSON = map[string]string{"Accept": "application/json"}

type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client for the registry at baseURL. An empty baseURL
// selects DefaultRegistry.
func NewClient(baseURL string, opts integrations.Options) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistry
	}
	return &Client{
		Client:  integrations.NewClient(opts),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the registry root used for requests.
func (c *Client) BaseURL() string { return c.baseURL }

// Latest returns the version the registry tags as latest for name.
// A missing package, or a document without a version, yields an error
// wrapping integrations.ErrNotFound. Names that cannot be placed in a
// registry path are rejected the same way without a request.
func (c *Client) Latest(ctx context.Context, name string) (string, error) {
	if err := deperrors.ValidatePackageName(name); err != nil {
		return "", fmt.Errorf("%w: %w", integrations.ErrNotFound, err)
	}
	var doc latestDocument
	err := c.GetWithHeaders(ctx, c.baseURL+"/"+EncodeName(name)+"/latest", acceptJSON, &doc)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: npm package %s", err, name)
		}
		return "", err
	}
	if doc.Version == "" {
		return "", fmt.Errorf("%w: npm package %s has no latest version", integrations.ErrNotFound, name)
	}
	return doc.Version, nil
}

// EncodeName percent-encodes a package name as a single path segment.
func EncodeName(name string) string {
	// PathEscape leaves "@" alone; encodeURIComponent does not.
	return strings.ReplaceAll(url.PathEscape(name), "@", "%40")
}

// PackageURL returns the purl of name at version, e.g. pkg:npm/react@18.2.0.
func PackageURL(name, version string) string {
	namespace := ""
	if strings.HasPrefix(name, "@") {
		if scope, rest, ok := strings.Cut(name, "/"); ok {
			namespace, name = scope, rest
		}
	}
	return packageurl.NewPackageURL(Name, namespace, name, version, nil, "").ToString()
}

type latestDocument struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
