// Package openfoodfacts implements the barcode lookup port against the
// Open Food Facts product API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

// Client implements outbound.BarcodeSource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an Open Food Facts client.
func NewClient(cfg config.OpenFoodFactsConfig, logger *zap.Logger) outbound.BarcodeSource {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("open-food-facts"),
	}
}

type productResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

// offProduct is the subset of an Open Food Facts record the app needs.
// Nutriment values arrive inconsistently typed (numbers or numeric
// strings), hence the any-valued map.
type offProduct struct {
	Code          string         `json:"code"`
	ProductName   string         `json:"product_name"`
	ProductNameEn string         `json:"product_name_en"`
	GenericName   string         `json:"generic_name"`
	Brands        string         `json:"brands"`
	Quantity      string         `json:"quantity"`
	Nutriments    map[string]any `json:"nutriments"`
}

// name returns the best available product name using the fallback
// order product_name, product_name_en, generic_name.
func (p *offProduct) name() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	if p.ProductNameEn != "" {
		return p.ProductNameEn
	}
	return p.GenericName
}

// Lookup fetches a product by barcode. An unknown barcode maps to a
// not-found application error rather than an empty product.
func (c *Client) Lookup(ctx context.Context, barcode string) (*outbound.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewExternalService("Open Food Facts", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Product lookup failed", zap.String("barcode", barcode), zap.Error(err))
		return nil, apperrors.NewExternalService("Open Food Facts", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewNotFound("product").WithMetadata("barcode", barcode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalService("Open Food Facts",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewExternalService("Open Food Facts", err)
	}
	if body.Status != 1 || body.Product.name() == "" {
		return nil, apperrors.NewNotFound("product").WithMetadata("barcode", barcode)
	}

	p := body.Product
	return &outbound.Product{
		Barcode:    barcode,
		Name:       p.name(),
		Brand:      p.Brands,
		Quantity:   p.Quantity,
		Kcal100g:   kcalPer100g(p.Nutriments),
		Protein100: nutriment(p.Nutriments, "proteins_100g", 100),
		Carbs100:   nutriment(p.Nutriments, "carbohydrates_100g", 100),
		Fat100:     nutriment(p.Nutriments, "fat_100g", 100),
	}, nil
}

// kcalPer100g prefers the kcal field and falls back to converting kJ.
func kcalPer100g(m map[string]any) float64 {
	if v, ok := extractFloat(m, "energy-kcal_100g"); ok {
		return clampNutriment(v, 10000)
	}
	if v, ok := extractFloat(m, "energy-kj_100g"); ok {
		return clampNutriment(v/4.184, 10000)
	}
	return 0
}

func nutriment(m map[string]any, key string, max float64) float64 {
	v, ok := extractFloat(m, key)
	if !ok {
		return 0
	}
	return clampNutriment(v, max)
}

// clampNutriment drops implausible values instead of storing garbage.
func clampNutriment(v, max float64) float64 {
	if v < 0 || v > max {
		return 0
	}
	return v
}

// extractFloat coerces a nutriments map value, which may be a number
// or a numeric string, to float64.
func extractFloat(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
