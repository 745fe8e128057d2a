package routing

import (
	"fmt"
	"net/http"

	"github.com/shenikar/guard_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// NewProvidersFromConfig создает провайдеров в порядке, заданном ROUTE_PROVIDERS
func NewProvidersFromConfig(cfg *config.Config, client *http.Client) ([]RouteProvider, error) {
	providers := make([]RouteProvider, 0, len(cfg.RouteProviders))
	for _, name := range cfg.RouteProviders {
		switch name {
		case "osrm":
			providers = append(providers, NewOSRMProvider(cfg.OSRMURL, client))
		case "mapbox":
			providers = append(providers, NewMapboxProvider(cfg.MapboxURL, cfg.MapboxToken, client))
		case "google":
			providers = append(providers, NewGoogleProvider(cfg.GoogleMapsURL, cfg.GoogleMapsKey, client))
		default:
			return nil, fmt.Errorf("unknown route provider %q", name)
		}
	}
	return providers, nil
}

// NewChainFromConfig собирает цепочку провайдеров с оценщиком по прямой
func NewChainFromConfig(cfg *config.Config, logger *logrus.Logger) (*Chain, error) {
	providers, err := NewProvidersFromConfig(cfg, NewHTTPClient(cfg.RouteProviderTimeout))
	if err != nil {
		return nil, err
	}
	fallback := NewFallbackEstimator(cfg.FallbackDetourFactor, cfg.FallbackWalkingSpeedMPS, cfg.FallbackDrivingSpeedMPS)
	return NewChain(providers, fallback, cfg.RouteProviderTimeout, logger), nil
}
