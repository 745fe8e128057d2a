package routing

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/shenikar/guard_dispatch_system/internal/models"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// GoogleProvider строит маршруты через Google Directions API
type GoogleProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGoogleProvider создает провайдера Google Directions
func NewGoogleProvider(baseURL, apiKey string, client *http.Client) *GoogleProvider {
	return &GoogleProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (p *GoogleProvider) Name() string {
	return "google"
}

type googleValue struct {
	Value float64 `json:"value"`
}

type googleResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Warnings []string `json:"warnings"`
		Legs     []struct {
			Distance googleValue `json:"distance"`
			Duration googleValue `json:"duration"`
			Steps    []struct {
				HTMLInstructions string      `json:"html_instructions"`
				Distance         googleValue `json:"distance"`
				Duration         googleValue `json:"duration"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// ComputeRoute запрашивает маршрут у Google Directions
func (p *GoogleProvider) ComputeRoute(ctx context.Context, origin, destination models.GeoPoint, mode models.TravelMode) (models.RouteResult, error) {
	if p.apiKey == "" {
		return models.RouteResult{}, NewProviderError(p.Name(), KindAuth, errors.New("api key is not configured"))
	}

	query := url.Values{}
	query.Set("origin", formatCoord(origin.Latitude)+","+formatCoord(origin.Longitude))
	query.Set("destination", formatCoord(destination.Latitude)+","+formatCoord(destination.Longitude))
	query.Set("mode", string(mode))
	query.Set("key", p.apiKey)

	endpoint := fmt.Sprintf("%s/maps/api/directions/json?%s", p.baseURL, query.Encode())

	var resp googleResponse
	if err := getJSON(ctx, p.client, p.Name(), endpoint, &resp); err != nil {
		return models.RouteResult{}, err
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return models.RouteResult{}, NewProviderError(p.Name(), KindNoRoute, errors.New(resp.Status))
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		return models.RouteResult{}, NewProviderError(p.Name(), KindRateLimited, errors.New(resp.ErrorMessage))
	case "REQUEST_DENIED":
		return models.RouteResult{}, NewProviderError(p.Name(), KindAuth, errors.New(resp.ErrorMessage))
	case "UNKNOWN_ERROR":
		return models.RouteResult{}, NewProviderError(p.Name(), KindUpstream, errors.New(resp.ErrorMessage))
	default:
		return models.RouteResult{}, NewProviderError(p.Name(), KindMalformed, fmt.Errorf("google status %q: %s", resp.Status, resp.ErrorMessage))
	}
	if len(resp.Routes) == 0 {
		return models.RouteResult{}, NewProviderError(p.Name(), KindNoRoute, errors.New("empty routes"))
	}

	route := resp.Routes[0]
	result := models.RouteResult{
		Provider: p.Name(),
		Warnings: models.MergeWarnings(nil, route.Warnings...),
	}
	if route.OverviewPolyline.Points != "" {
		result.Polyline = []byte(route.OverviewPolyline.Points)
	}
	for _, leg := range route.Legs {
		result.DistanceMeters += leg.Distance.Value
		result.DurationSeconds += leg.Duration.Value
		for _, step := range leg.Steps {
			result.Steps = append(result.Steps, models.RouteStep{
				Instruction:     html.UnescapeString(htmlTagPattern.ReplaceAllString(step.HTMLInstructions, "")),
				DistanceMeters:  step.Distance.Value,
				DurationSeconds: step.Duration.Value,
			})
		}
	}
	return result, nil
}
