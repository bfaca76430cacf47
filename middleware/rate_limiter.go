package middleware

import (
	"database/sql"
	"net/http"
	"time"

	"school-cms/pkg/apperrors"
	"school-cms/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RateLimiterConfig holds the configuration for rate limiting
type RateLimiterConfig struct {
	MaxRequests   int           // Maximum number of requests allowed
	Window        time.Duration // Time window for rate limiting
	BlockDuration time.Duration // Duration to block the IP after exceeding limits
	DB            *sql.DB       // Database connection
}

// RateLimiterMiddleware limits the number of requests per IP using the
// ip_rate_limits table. Applied to the login endpoint.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	log := logger.Get().WithComponent("rate_limiter")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			now := time.Now()

			tx, err := config.DB.Begin()
			if err != nil {
				log.Error("Failed to begin transaction", err)
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "Internal server error",
				})
			}
			defer tx.Rollback()

			var blockedUntil sql.NullTime
			var requestCount int
			var firstRequestTime time.Time
			err = tx.QueryRow(`
				SELECT request_count, first_request_time, blocked_until
				FROM ip_rate_limits WHERE ip_address = ?
			`, ip).Scan(&requestCount, &firstRequestTime, &blockedUntil)

			if err == sql.ErrNoRows {
				if _, err := tx.Exec(`
					INSERT INTO ip_rate_limits (ip_address, request_count, first_request_time)
					VALUES (?, 1, ?)
				`, ip, now); err != nil {
					log.Error("Failed to insert rate limit row", err, logger.RemoteIP(ip))
					return c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "Internal server error",
					})
				}
				if err := tx.Commit(); err != nil {
					log.Error("Failed to commit rate limit transaction", err)
				}
				return next(c)
			}
			if err != nil {
				log.Error("Failed to fetch rate limit data", err, logger.RemoteIP(ip))
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "Internal server error",
				})
			}

			// Still blocked?
			if blockedUntil.Valid && blockedUntil.Time.After(now) {
				tx.Commit()
				return apperrors.RespondWithError(c, apperrors.NewTooManyRequests(
					apperrors.ErrCodeRateLimitExceeded,
					"Too many requests from this IP, please try again later.",
				))
			}

			// Window expired: start a fresh one
			if now.Sub(firstRequestTime) > config.Window {
				if _, err := tx.Exec(`
					UPDATE ip_rate_limits
					SET request_count = 1, first_request_time = ?, blocked_until = NULL
					WHERE ip_address = ?
				`, now, ip); err != nil {
					log.Error("Failed to reset rate limit window", err, logger.RemoteIP(ip))
				}
				if err := tx.Commit(); err != nil {
					log.Error("Failed to commit rate limit transaction", err)
				}
				return next(c)
			}

			requestCount++
			if requestCount > config.MaxRequests {
				blockTime := now.Add(config.BlockDuration)
				if _, err := tx.Exec(`
					UPDATE ip_rate_limits
					SET request_count = ?, blocked_until = ?
					WHERE ip_address = ?
				`, requestCount, blockTime, ip); err != nil {
					log.Error("Failed to block IP", err, logger.RemoteIP(ip))
				}
				tx.Commit()
				log.Warn("IP blocked for exceeding rate limit", logger.RemoteIP(ip))
				return apperrors.RespondWithError(c, apperrors.NewTooManyRequests(
					apperrors.ErrCodeRateLimitExceeded,
					"Too many requests from this IP, please try again later.",
				))
			}

			if _, err := tx.Exec(`
				UPDATE ip_rate_limits SET request_count = ? WHERE ip_address = ?
			`, requestCount, ip); err != nil {
				log.Error("Failed to update request count", err, logger.RemoteIP(ip))
			}
			if err := tx.Commit(); err != nil {
				log.Error("Failed to commit rate limit transaction", err)
			}

			return next(c)
		}
	}
}
