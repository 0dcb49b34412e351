package guard

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/allowme/core"
	"github.com/totegamma/allowme/x/policy"
)

var tracer = otel.Tracer("guard")

var decisionsTotal *prometheus.CounterVec

// Enforce authorizes every request against the given policy. The identity is
// read from the echo context under IdentityCtxKey, the operation is the HTTP
// method and the resource is the request path. Denied requests are answered
// with 403; a strategy failure during evaluation is answered with 500.
func Enforce[C any](p *policy.Policy[C]) echo.MiddlewareFunc {
	if decisionsTotal == nil {
		decisionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "am_guard_decisions_total",
			Help: "Total number of authorization decisions",
		}, []string{"decision"})
		prometheus.MustRegister(decisionsTotal)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Guard.Enforce")
			defer span.End()

			identity, _ := c.Get(IdentityCtxKey).(string)
			operation := c.Request().Method
			resource := c.Request().URL.Path

			request, err := core.NewRequest[C](identity, operation, resource)
			if err != nil {
				span.RecordError(err)
				decisionsTotal.WithLabelValues(string(core.DecisionDenied)).Inc()
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":  "you are not authorized to perform this action",
					"detail": "requester identity is unknown",
				})
			}

			decision, err := p.Evaluate(ctx, request)
			if err != nil {
				span.RecordError(err)
				slog.Error("policy evaluation failed",
					slog.String("identity", identity),
					slog.String("operation", operation),
					slog.String("resource", resource),
					slog.String("error", err.Error()),
				)
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"error": "policy evaluation failed",
				})
			}

			span.SetAttributes(attribute.String("decision", string(decision)))
			decisionsTotal.WithLabelValues(string(decision)).Inc()

			if decision != core.DecisionAllowed {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "you are not authorized to perform this action",
				})
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
