package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// PublicRateLimit limita requisições por IP na API pública usando
// janela fixa de um minuto no redis. Sem redis configurado, passa
// tudo direto.
func PublicRateLimit(rdb *redis.Client, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("rl:public:%s:%d", c.ClientIP(), window)

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// redis fora do ar não derruba a API pública
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": "Muitas requisições. Tente novamente em instantes.",
			})
			return
		}

		c.Next()
	}
}
