package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/electrostore/backend/internal/infrastructure/auth"
	"github.com/electrostore/backend/internal/infrastructure/logger"
	"github.com/electrostore/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTEmailKey   = "jwt_email"
	JWTRoleKey    = "jwt_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// TokenBlacklist is optional; when set, revoked tokens are rejected
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths are exact paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		tokenString := extractBearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, cfg.Logger, auth.ErrInvalidToken, path)
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg.Logger, err, path)
			return
		}

		if cfg.TokenBlacklist != nil && tokenRevoked(c, cfg, claims) {
			abortUnauthorized(c, cfg.Logger, auth.ErrTokenBlacklisted, path)
			return
		}

		setClaims(c, claims)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalJWTAuthMiddleware extracts claims when a valid token is present
// but never rejects the request. Revoked tokens yield no identity, so the
// request proceeds as anonymous. Used on endpoints that behave differently
// for signed-in customers, like product comparison.
func OptionalJWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		if cfg.TokenBlacklist != nil && tokenRevoked(c, cfg, claims) {
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// tokenRevoked reports whether the token was blacklisted or issued before
// the user's invalidation cutoff. Blacklist lookup failures count as not
// revoked so an unreachable Redis does not strip identity.
func tokenRevoked(c *gin.Context, cfg JWTMiddlewareConfig, claims *auth.Claims) bool {
	ctx := c.Request.Context()

	if claims.ID != "" {
		blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to check token blacklist",
					zap.String("jti", claims.ID),
					zap.Error(err))
			}
		} else if blacklisted {
			return true
		}
	}

	invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("Failed to check user token invalidation",
				zap.String("user_id", claims.UserID),
				zap.Error(err))
		}
		return false
	}
	return invalidated
}

// RequireRole rejects authenticated requests whose token does not carry
// the given role. Must run after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetJWTRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(AuthHeaderKey)
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(authHeader, BearerPrefix)
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(JWTClaimsKey, claims)
	c.Set(JWTUserIDKey, claims.UserID)
	c.Set(JWTEmailKey, claims.Email)
	c.Set(JWTRoleKey, claims.Role)
}

func abortUnauthorized(c *gin.Context, log *zap.Logger, err error, path string) {
	if log != nil {
		log.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("path", path))
	}

	code := dto.ErrCodeUnauthorized
	message := "Authentication required"

	switch err {
	case auth.ErrExpiredToken:
		code = dto.ErrCodeTokenExpired
		message = "Token has expired"
	case auth.ErrInvalidToken, auth.ErrInvalidClaims:
		code = dto.ErrCodeTokenInvalid
		message = "Invalid token"
	case auth.ErrTokenBlacklisted:
		code = dto.ErrCodeTokenRevoked
		message = "Token has been revoked"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the user ID from JWT claims in context
func GetJWTUserID(c *gin.Context) string {
	if userID, exists := c.Get(JWTUserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// GetJWTRole retrieves the role from JWT claims in context
func GetJWTRole(c *gin.Context) string {
	if role, exists := c.Get(JWTRoleKey); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
