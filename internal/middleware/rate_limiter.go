package middleware

import (
	"math"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"corpsite-backend/internal/utilities"
)

func keyFunc(scope string) func(c *gin.Context) string {
	return func(c *gin.Context) string {
		user, err := utilities.ExtractUser(c)
		if err != nil {
			return scope + ":ip: " + c.ClientIP()
		}
		return scope + ":user: " + user.ID.String()
	}
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(time.Until(info.ResetTime).Seconds()))))
	utilities.Fail(c, 429, utilities.KindTooManyRequests, "Terlalu banyak permintaan. Silakan coba lagi nanti.", nil)
}

// NewRateLimitStore allows limit requests per rate window for each client.
// A nil redis client keeps the counters in process memory.
func NewRateLimitStore(client *redis.Client, rate time.Duration, limit uint) ratelimit.Store {
	if client != nil {
		return ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: client,
			Rate:        rate,
			Limit:       limit,
		})
	}
	return ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  rate,
		Limit: limit,
	})
}

// RateLimiterMiddleware limits requests per user, or per client IP on public routes.
// scope keeps the counters of different limiters apart in a shared store.
func RateLimiterMiddleware(store ratelimit.Store, scope string) gin.HandlerFunc {
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc(scope),
		ErrorHandler: errorHandler,
	})
}
