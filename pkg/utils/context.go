package utils

import (
	"errors"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// GetIdentityFromContext returns the identity the auth middleware attached.
var GetIdentityFromContext = func(c *gin.Context) (middleware.Identity, error) {
	val, exists := c.Get("identity")
	if !exists {
		return middleware.Identity{}, errors.New("identity not found in context")
	}

	identity, ok := val.(middleware.Identity)
	if !ok {
		return middleware.Identity{}, errors.New("invalid identity type")
	}

	return identity, nil
}
