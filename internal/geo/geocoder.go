package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ekarpova/taskhub/pkg/clients"
	"go.uber.org/zap"
)

// ErrGeocoding covers both "no result for this address" and transport
// failures. Callers treat it as a hard failure, no retry.
var ErrGeocoding = errors.New("geocoding failed")

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Cache is an optional lookaside for resolved addresses. Failures are
// logged and ignored.
type Cache interface {
	Get(ctx context.Context, address string) (Point, bool, error)
	Set(ctx context.Context, address string, point Point) error
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location Point `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

type Geocoder struct {
	url    string
	apiKey string
	client clients.HTTPClientI
	cache  Cache
}

func NewGeocoder(apiURL, apiKey string, client clients.HTTPClientI, cache Cache) *Geocoder {
	return &Geocoder{
		url:    apiURL,
		apiKey: apiKey,
		client: client,
		cache:  cache,
	}
}

// Resolve geocodes a free-text address and returns the first candidate.
func (g *Geocoder) Resolve(ctx context.Context, address string) (Point, error) {
	if g.cache != nil {
		point, ok, err := g.cache.Get(ctx, address)
		if err != nil {
			zap.L().Warn("geocode cache read failed", zap.Error(err))
		}
		if ok {
			return point, nil
		}
	}

	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	statusCode, respBody, _, err := g.client.Get(g.url+"?"+query.Encode(), nil)
	if err != nil {
		zap.L().Error("geocoder request failed", zap.Error(err))
		return Point{}, fmt.Errorf("%w: %w", ErrGeocoding, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("geocoder returned unexpected status", zap.Int("status", statusCode))
		return Point{}, fmt.Errorf("%w: unexpected status %d", ErrGeocoding, statusCode)
	}

	var response geocodeResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return Point{}, fmt.Errorf("%w: %w", ErrGeocoding, err)
	}
	if len(response.Results) == 0 {
		zap.L().Info("address not found", zap.String("address", address))
		return Point{}, fmt.Errorf("%w: address not found", ErrGeocoding)
	}

	point := response.Results[0].Geometry.Location
	if g.cache != nil {
		if err := g.cache.Set(ctx, address, point); err != nil {
			zap.L().Warn("geocode cache write failed", zap.Error(err))
		}
	}
	return point, nil
}
