package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"opendom.xyz/home-automation-service/pkg/auth"
	"opendom.xyz/home-automation-service/pkg/hub"
)

type RestfulServer struct {
	Server           *gin.Engine
	Hub              *hub.Hub
	Auth             *auth.Service
	Commander        hub.ActuatorCommander
	RateLimiterStore *hub.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(actuatorID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(actuatorID)
	}
}

func (rs *RestfulServer) CheckActuatorLimiter(actuatorID string) bool {
	limiter := rs.GetLimiter(actuatorID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/login", rs.Login)
	rs.Server.POST("/logout", rs.Logout)

	api := rs.Server.Group("/api", rs.RequireSession)
	{
		api.POST("/auth/elevate", rs.Elevate)
		api.GET("/sensors", rs.GetSensors)
		api.POST("/actuators", rs.CommandActuator)
		api.GET("/config", rs.GetConfig)
		api.POST("/config", rs.UpdateConfig)
		api.POST("/devices", rs.SaveDevice)
		api.DELETE("/devices/:device_id", rs.DeleteDevice)
		api.POST("/rules", rs.SaveRule)
		api.DELETE("/rules/:rule_id", rs.DeleteRule)
		api.GET("/system", rs.GetSystemStats)
	}
}

// RequireSession accepts any live session token, user or privileged.
// Privileged scope is checked again where it matters, on the mutation paths.
func (rs *RestfulServer) RequireSession(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	if err := rs.Auth.VerifyUser(token); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	c.Next()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return header[len(prefix):]
}
