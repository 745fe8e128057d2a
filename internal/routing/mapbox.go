package routing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/guard_dispatch_system/internal/models"
)

// MapboxProvider строит маршруты через Mapbox Directions API
type MapboxProvider struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewMapboxProvider создает провайдера Mapbox
func NewMapboxProvider(baseURL, accessToken string, client *http.Client) *MapboxProvider {
	return &MapboxProvider{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		client:      client,
	}
}

func (p *MapboxProvider) Name() string {
	return "mapbox"
}

type mapboxResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
		Legs     []struct {
			Steps []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
				Maneuver struct {
					Instruction string `json:"instruction"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// ComputeRoute запрашивает маршрут у Mapbox
func (p *MapboxProvider) ComputeRoute(ctx context.Context, origin, destination models.GeoPoint, mode models.TravelMode) (models.RouteResult, error) {
	if p.accessToken == "" {
		return models.RouteResult{}, NewProviderError(p.Name(), KindAuth, errors.New("access token is not configured"))
	}

	profile := "walking"
	if mode == models.TravelModeDriving {
		profile = "driving"
	}

	query := url.Values{}
	query.Set("access_token", p.accessToken)
	query.Set("geometries", "polyline")
	query.Set("overview", "full")
	query.Set("steps", "true")

	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s,%s;%s,%s?%s", p.baseURL, profile,
		formatCoord(origin.Longitude), formatCoord(origin.Latitude),
		formatCoord(destination.Longitude), formatCoord(destination.Latitude),
		query.Encode())

	var resp mapboxResponse
	if err := getJSON(ctx, p.client, p.Name(), endpoint, &resp); err != nil {
		if resp.Code == "NoRoute" || resp.Code == "NoSegment" {
			return models.RouteResult{}, NewProviderError(p.Name(), KindNoRoute, err)
		}
		return models.RouteResult{}, err
	}

	switch resp.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return models.RouteResult{}, NewProviderError(p.Name(), KindNoRoute, errors.New(resp.Message))
	default:
		return models.RouteResult{}, NewProviderError(p.Name(), KindMalformed, fmt.Errorf("mapbox code %q: %s", resp.Code, resp.Message))
	}
	if len(resp.Routes) == 0 {
		return models.RouteResult{}, NewProviderError(p.Name(), KindNoRoute, errors.New("empty routes"))
	}

	route := resp.Routes[0]
	result := models.RouteResult{
		Provider:        p.Name(),
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Warnings:        []string{},
	}
	if route.Geometry != "" {
		result.Polyline = []byte(route.Geometry)
	}
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			result.Steps = append(result.Steps, models.RouteStep{
				Instruction:     step.Maneuver.Instruction,
				DistanceMeters:  step.Distance,
				DurationSeconds: step.Duration,
			})
		}
	}
	return result, nil
}
