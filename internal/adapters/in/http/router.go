package http

import (
	"log/slog"
	"net/http"
	"strings"

	"fooddelivery/internal/adapters/out/auth"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const BaseURL = "/api/v1"

// NewRouter builds the echo instance serving the API. Only the /me routes
// require a bearer token signed with signingKey.
func NewRouter(server *Server, signingKey []byte, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    signingKey,
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(auth.SessionClaims) },
		Skipper: func(ctx echo.Context) bool {
			return !strings.HasPrefix(ctx.Request().URL.Path, BaseURL+"/me/")
		},
	}))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	if doc != nil {
		if err := mountDocs(e, doc); err != nil {
			return nil, err
		}
	}

	RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e, nil
}
