package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	loginWindow   = 15 * time.Minute
	loginAttempts = 10
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter allows 10 login attempts per 15 minutes per client IP.
func LoginRateLimiter() gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*clientLimiter)

	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()

		mu.Lock()

		client, ok := clients[ip]
		if !ok {
			client = &clientLimiter{
				limiter: rate.NewLimiter(rate.Every(loginWindow/loginAttempts), loginAttempts),
			}
			clients[ip] = client
		}
		client.lastSeen = time.Now()

		// Drop idle entries so the map does not grow without bound.
		if len(clients) > 1024 {
			for addr, c := range clients {
				if time.Since(c.lastSeen) > loginWindow {
					delete(clients, addr)
				}
			}
		}

		allowed := client.limiter.Allow()

		mu.Unlock()

		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"status": "Too many login attempts, please try again later."})
			return
		}

		ctx.Next()
	}
}
