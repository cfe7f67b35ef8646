package imagesearch

import (
	"context"
	"strings"
	"time"

	"pantrypilot-backend/internal/utils"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// PlaceholderImageURL is returned whenever both providers fail or return no
// hit; image lookup never fails a request.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=640"

const cacheSize = 128

type (
	// ImageSearch resolves a food or recipe name to an illustrative image
	// URL. Results are memoized in a capacity-bounded LRU cache.
	ImageSearch interface {
		FindImageURL(ctx context.Context, name string) string
	}

	imageSearch struct {
		httpClient *resty.Client
		cache      *lru.Cache[string, string]
		logger     *zap.Logger
	}

	unsplashResponse struct {
		Results []struct {
			URLs struct {
				Small string `json:"small"`
			} `json:"urls"`
		} `json:"results"`
	}

	pexelsResponse struct {
		Photos []struct {
			Src struct {
				Medium string `json:"medium"`
			} `json:"src"`
		} `json:"photos"`
	}
)

func NewImageSearch(logger *zap.Logger) ImageSearch {
	cache, _ := lru.New[string, string](cacheSize)
	return &imageSearch{
		httpClient: resty.New().SetTimeout(10 * time.Second),
		cache:      cache,
		logger:     logger,
	}
}

func (s *imageSearch) FindImageURL(ctx context.Context, name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return PlaceholderImageURL
	}

	if url, ok := s.cache.Get(key); ok {
		return url
	}

	url := s.lookupUnsplash(ctx, key)
	if url == "" {
		url = s.lookupPexels(ctx, key)
	}
	if url == "" {
		url = PlaceholderImageURL
	}

	s.cache.Add(key, url)
	return url
}

func (s *imageSearch) lookupUnsplash(ctx context.Context, query string) string {
	accessKey := utils.GetConfig("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		return ""
	}

	var result unsplashResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+accessKey).
		SetQueryParams(map[string]string{
			"query":    query,
			"per_page": "1",
		}).
		SetResult(&result).
		Get("https://api.unsplash.com/search/photos")
	if err != nil || resp.IsError() || len(result.Results) == 0 {
		if err != nil {
			s.logger.Warn("unsplash lookup failed", zap.String("query", query), zap.Error(err))
		}
		return ""
	}
	return result.Results[0].URLs.Small
}

func (s *imageSearch) lookupPexels(ctx context.Context, query string) string {
	apiKey := utils.GetConfig("PEXELS_API_KEY")
	if apiKey == "" {
		return ""
	}

	var result pexelsResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", apiKey).
		SetQueryParams(map[string]string{
			"query":    query,
			"per_page": "1",
		}).
		SetResult(&result).
		Get("https://api.pexels.com/v1/search")
	if err != nil || resp.IsError() || len(result.Photos) == 0 {
		if err != nil {
			s.logger.Warn("pexels lookup failed", zap.String("query", query), zap.Error(err))
		}
		return ""
	}
	return result.Photos[0].Src.Medium
}
