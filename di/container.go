package di

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"safeqr/config"
	"safeqr/driver/auth"
	"safeqr/gateway/auth_gateway"
	"safeqr/gateway/history_gateway"
	"safeqr/gateway/metadata_gateway"
	"safeqr/gateway/rate_limiter_gateway"
	"safeqr/usecase/auth_session_usecase"
	"safeqr/usecase/delete_history_usecase"
	"safeqr/usecase/fetch_history_usecase"
	"safeqr/usecase/fetch_metadata_usecase"
	"safeqr/usecase/generate_qr_usecase"
	"safeqr/utils/logger"
	"safeqr/utils/rate_limiter"
)

type ApplicationComponents struct {
	FetchMetadataUsecase *fetch_metadata_usecase.FetchMetadataUsecase
	GenerateQRUsecase    *generate_qr_usecase.GenerateQRUsecase
	FetchHistoryUsecase  *fetch_history_usecase.FetchHistoryUsecase
	DeleteHistoryUsecase *delete_history_usecase.DeleteHistoryUsecase
	AuthSessionUsecase   *auth_session_usecase.AuthSessionUsecase
}

// NewApplicationComponents wires the full dependency graph. redisClient may be
// nil, in which case rate limit windows live in process memory.
func NewApplicationComponents(pool *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) *ApplicationComponents {
	var windowStore rate_limiter.WindowStore
	if redisClient != nil {
		windowStore = rate_limiter.NewRedisWindowStore(redisClient)
	} else {
		windowStore = rate_limiter.NewMemoryWindowStore()
	}
	clientLimiter := rate_limiter.NewFixedWindowLimiter(
		windowStore, cfg.RateLimit.WindowSize, cfg.RateLimit.MaxRequests)
	rateLimiterGateway := rate_limiter_gateway.NewRateLimiterGateway(clientLimiter)

	hostLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.HostInterval)
	hostThrottleGateway := rate_limiter_gateway.NewHostThrottleGateway(hostLimiter)

	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
			IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
		},
	}
	metadataGateway := metadata_gateway.NewMetadataGateway(
		httpClient,
		hostThrottleGateway,
		cfg.Metadata.UserAgent,
		cfg.Metadata.MaxContentSize,
		cfg.Metadata.FetchTimeout,
	)

	historyGateway := history_gateway.NewHistoryGateway(pool)

	providerClient := auth.NewClient(cfg, logger.Logger)
	authGateway := auth_gateway.NewAuthGateway(providerClient)

	fetchMetadataUsecase := fetch_metadata_usecase.NewFetchMetadataUsecase(metadataGateway, rateLimiterGateway)
	generateQRUsecase := generate_qr_usecase.NewGenerateQRUsecase(metadataGateway, historyGateway, cfg.QR.ImageSize)
	fetchHistoryUsecase := fetch_history_usecase.NewFetchHistoryUsecase(historyGateway, cfg.Pagination.ItemsPerPage)
	deleteHistoryUsecase := delete_history_usecase.NewDeleteHistoryUsecase(historyGateway)
	authSessionUsecase := auth_session_usecase.NewAuthSessionUsecase(
		authGateway, cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)

	return &ApplicationComponents{
		FetchMetadataUsecase: fetchMetadataUsecase,
		GenerateQRUsecase:    generateQRUsecase,
		FetchHistoryUsecase:  fetchHistoryUsecase,
		DeleteHistoryUsecase: deleteHistoryUsecase,
		AuthSessionUsecase:   authSessionUsecase,
	}
}
