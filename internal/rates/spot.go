package rates

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"fxboard/internal/adapters"
)

// Spot source identifiers, used as API path segments and cache keys.
const (
	SourceUSDTKRW         = "usdt-krw"
	SourceNaverUSDKRW     = "naver-usd-krw"
	SourceInvestingUSDKRW = "investing-usd-krw"
	SourceInvestingJPYKRW = "investing-jpy-krw"
)

type spotEntry struct {
	source adapters.SpotSource
	ttl    time.Duration
}

// SpotService serves point-in-time KRW rates from the external spot
// sources, caching each source's last good value independently. A source
// failure yields nil for that source, never an error for the whole set.
type SpotService struct {
	cache   adapters.SpotCache
	sources map[string]spotEntry
	order   []string
	log     *logrus.Logger
}

type SpotConfig struct {
	USDTKRW         adapters.SpotSource
	NaverUSDKRW     adapters.SpotSource
	InvestingUSDKRW adapters.SpotSource
	InvestingJPYKRW adapters.SpotSource
	TickerTTL       time.Duration
	ScrapeTTL       time.Duration
}

func NewSpotService(cfg SpotConfig, cache adapters.SpotCache, log *logrus.Logger) *SpotService {
	return &SpotService{
		cache: cache,
		sources: map[string]spotEntry{
			SourceUSDTKRW:         {source: cfg.USDTKRW, ttl: cfg.TickerTTL},
			SourceNaverUSDKRW:     {source: cfg.NaverUSDKRW, ttl: cfg.ScrapeTTL},
			SourceInvestingUSDKRW: {source: cfg.InvestingUSDKRW, ttl: cfg.ScrapeTTL},
			SourceInvestingJPYKRW: {source: cfg.InvestingJPYKRW, ttl: cfg.ScrapeTTL},
		},
		order: []string{SourceUSDTKRW, SourceNaverUSDKRW, SourceInvestingUSDKRW, SourceInvestingJPYKRW},
		log:   log,
	}
}

// Sources lists the known source identifiers in a stable order.
func (s *SpotService) Sources() []string {
	return s.order
}

// Rate returns the source's current rate, serving from cache within the
// source's TTL. Nil means the source is unknown or currently unavailable.
func (s *SpotService) Rate(ctx context.Context, id string) *float64 {
	entry, ok := s.sources[id]
	if !ok {
		return nil
	}
	if v, hit := s.cache.Get(id); hit {
		return &v
	}

	v, err := entry.source.Rate(ctx)
	if err != nil {
		s.log.WithError(err).WithField("source", id).Warn("spot rate fetch failed")
		return nil
	}
	s.cache.Set(id, v, entry.ttl)
	return &v
}

// All fetches every source, independently; failed sources map to nil.
func (s *SpotService) All(ctx context.Context) map[string]*float64 {
	out := make(map[string]*float64, len(s.order))
	for _, id := range s.order {
		out[id] = s.Rate(ctx, id)
	}
	return out
}

// Known reports whether the identifier names a configured source.
func (s *SpotService) Known(id string) bool {
	_, ok := s.sources[id]
	return ok
}
