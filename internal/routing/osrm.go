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

// OSRMProvider строит маршруты через HTTP API OSRM
type OSRMProvider struct {
	baseURL string
	client  *http.Client
}

// NewOSRMProvider создает провайдера OSRM
func NewOSRMProvider(baseURL string, client *http.Client) *OSRMProvider {
	return &OSRMProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (p *OSRMProvider) Name() string {
	return "osrm"
}

type osrmResponse struct {
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
				Name     string  `json:"name"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// ComputeRoute запрашивает маршрут у OSRM
func (p *OSRMProvider) ComputeRoute(ctx context.Context, origin, destination models.GeoPoint, mode models.TravelMode) (models.RouteResult, error) {
	profile := "foot"
	if mode == models.TravelModeDriving {
		profile = "driving"
	}

	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "polyline")
	query.Set("steps", "true")

	endpoint := fmt.Sprintf("%s/route/v1/%s/%s,%s;%s,%s?%s", p.baseURL, profile,
		formatCoord(origin.Longitude), formatCoord(origin.Latitude),
		formatCoord(destination.Longitude), formatCoord(destination.Latitude),
		query.Encode())

	var resp osrmResponse
	if err := getJSON(ctx, p.client, p.Name(), endpoint, &resp); err != nil {
		if resp.Code == "NoRoute" {
			return models.RouteResult{}, NewProviderError(p.Name(), KindNoRoute, err)
		}
		return models.RouteResult{}, err
	}

	switch resp.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return models.RouteResult{}, NewProviderError(p.Name(), KindNoRoute, errors.New(resp.Message))
	default:
		return models.RouteResult{}, NewProviderError(p.Name(), KindMalformed, fmt.Errorf("osrm code %q: %s", resp.Code, resp.Message))
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
				Instruction:     osrmInstruction(step.Maneuver.Type, step.Maneuver.Modifier, step.Name),
				DistanceMeters:  step.Distance,
				DurationSeconds: step.Duration,
			})
		}
	}
	return result, nil
}

// osrmInstruction собирает текст шага из типа манёвра, направления и названия улицы
func osrmInstruction(maneuver, modifier, street string) string {
	parts := make([]string, 0, 3)
	if maneuver != "" {
		parts = append(parts, maneuver)
	}
	if modifier != "" {
		parts = append(parts, modifier)
	}
	text := strings.Join(parts, " ")
	if street != "" {
		text = strings.TrimSpace(text + " onto " + street)
	}
	return text
}
