package api

import (
	"fmt"
	"os"
	"path/filepath"

	"skycast/internal/domain/model"
	"skycast/pkg/http"
)

// IconGateway maps a provider icon code to a local image file, downloading
// and caching the asset on first use.
type IconGateway interface {
	// IconPath returns the path of a local PNG for the given icon code.
	IconPath(code string) (string, error)
}

type iconGatewayImpl struct {
	httpClient *http.Client
	cacheDir   string
}

var _ IconGateway = (*iconGatewayImpl)(nil)

// NewIconGateway creates an IconGateway caching downloads under cacheDir.
func NewIconGateway(baseURL string, cacheDir string, clientOptions http.ClientOptions) IconGateway {
	return &iconGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		cacheDir:   cacheDir,
	}
}

func (g *iconGatewayImpl) IconPath(code string) (string, error) {
	if code == "" {
		return "", model.NewFetchError(model.KindParse, "empty icon code", nil)
	}

	path := filepath.Join(g.cacheDir, fmt.Sprintf("%s@2x.png", code))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	var body []byte
	_, _, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(fmt.Sprintf("/%s@2x.png", code)).
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		return "", model.NewFetchError(model.KindNetwork, "icon download failed", err)
	}

	if err := os.MkdirAll(g.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create icon cache dir: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to cache icon: %w", err)
	}

	return path, nil
}
