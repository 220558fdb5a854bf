package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"fxboard/internal/adapters/cache"
	"fxboard/internal/adapters/httpclient"
	"fxboard/internal/adapters/postgres"
	"fxboard/internal/adapters/scrape"
	"fxboard/internal/api"
	"fxboard/internal/config"
	"fxboard/internal/domain"
	"fxboard/internal/invest"
	investhandler "fxboard/internal/invest/handler"
	"fxboard/internal/platform/db"
	httpserver "fxboard/internal/platform/http"
	"fxboard/internal/rates"
	rateshandler "fxboard/internal/rates/handler"
)

// Run wires the application components and starts the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	log := logrus.StandardLogger()
	log.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage is optional: without a configured or reachable database the
	// service still serves rates straight from the providers, and only the
	// investment ledger reports unavailable.
	pool := connectStorage(ctx, appCfg, log)
	if pool != nil {
		defer pool.Close()
	}

	// External clients, one per provider with its own timeout
	tickerClient := &http.Client{Timeout: clientTimeout(appCfg.HTTPClient.TickerTimeoutSeconds, 5)}
	scrapeClient := &http.Client{Timeout: clientTimeout(appCfg.HTTPClient.ScrapeTimeoutSeconds, 7)}
	chartClient := &http.Client{Timeout: clientTimeout(appCfg.HTTPClient.ChartTimeoutSeconds, 30)}

	spotCache, err := cache.NewSpotCache(64)
	if err != nil {
		log.WithError(err).Error("Failed to create spot cache")
		return err
	}
	defer spotCache.Close()

	clock := clockwork.NewRealClock()

	// Services
	spots := rates.NewSpotService(rates.SpotConfig{
		USDTKRW:         httpclient.NewBithumbClient(tickerClient, appCfg.Providers.BithumbURL),
		NaverUSDKRW:     scrape.NewNaverSource(scrapeClient, appCfg.Providers.NaverURL),
		InvestingUSDKRW: scrape.NewInvestingSource(scrapeClient, appCfg.Providers.InvestingURL, scrape.InvestingUSDKRWSelector),
		InvestingJPYKRW: scrape.NewInvestingSource(scrapeClient, appCfg.Providers.InvestingURL, scrape.InvestingJPYKRWSelector),
		TickerTTL:       time.Duration(appCfg.Cache.TickerTTLSeconds) * time.Second,
		ScrapeTTL:       time.Duration(appCfg.Cache.ScrapeTTLSeconds) * time.Second,
	}, spotCache, log)

	fetcher := rates.NewFetcher(httpclient.NewChartClient(chartClient, appCfg.Providers.ChartBaseURL), log)
	memo := rates.NewResultMemo(time.Duration(appCfg.Cache.PeriodTTLSeconds)*time.Second, clock)
	historyRepo := postgres.NewHistoryRepository(pool, clock)
	logCoverage(ctx, historyRepo, log)
	rateService := rates.NewService(historyRepo, fetcher, memo, clock, log)
	investService := invest.NewService(postgres.NewInvestmentRepository(pool), clock)

	// Handlers and router
	router := api.NewRouter(
		rateshandler.NewRatesHandler(rateService, spots),
		investhandler.NewInvestHandler(investService),
		appCfg.CORS,
	)

	log.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		log.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func connectStorage(ctx context.Context, appCfg *config.AppConfig, log *logrus.Logger) *pgxpool.Pool {
	if !appCfg.DbServer.Configured() {
		log.Warn("No database configured, running storage-less")
		return nil
	}

	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		log.WithError(err).Warn("Database unreachable, running storage-less")
		return nil
	}
	if err = db.Migrate(appCfg.DbServer); err != nil {
		log.WithError(err).Warn("Migrations failed, running storage-less")
		pool.Close()
		return nil
	}
	log.Info("✅ Postgres connection successful")
	return pool
}

// logCoverage reports which pairs already have fresh stored history, so a
// cold start is visible in the logs before the first request comes in.
func logCoverage(ctx context.Context, repo *postgres.HistoryRepository, log *logrus.Logger) {
	coverage, err := repo.Coverage(ctx, domain.TrackedPairs)
	if err != nil {
		log.WithError(err).Warn("Could not determine stored history coverage")
		return
	}
	fresh := 0
	for _, ok := range coverage {
		if ok {
			fresh++
		}
	}
	log.WithFields(logrus.Fields{"fresh": fresh, "tracked": len(domain.TrackedPairs)}).
		Info("Stored history coverage")
}

func clientTimeout(seconds, fallback int) time.Duration {
	if seconds <= 0 {
		seconds = fallback
	}
	return time.Duration(seconds) * time.Second
}
