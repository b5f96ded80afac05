package http

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dradle/my-bike-rent/internal/dates"
	"github.com/dradle/my-bike-rent/internal/model"
	"github.com/dradle/my-bike-rent/internal/service/lookup"
)

// Looker is the lookup entry point the handlers depend on.
type Looker interface {
	Lookup(ctx context.Context, identifier string) (lookup.Result, error)
}

const notFoundMessage = "data not found; check the link or contact the administrator"

// getCustomerHandler serves GET /v1/customers/:name as JSON. All lookup
// failures share one body; only the status code differs.
func getCustomerHandler(svc Looker) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := strings.TrimSpace(c.Param("name"))

		res, err := svc.Lookup(c.Request().Context(), name)
		if res.RequestID != "" {
			c.Response().Header().Set(echo.HeaderXRequestID, res.RequestID)
		}
		if err != nil {
			return c.JSON(statusFor(err), map[string]string{"error": "not_found", "message": notFoundMessage})
		}

		return c.JSON(http.StatusOK, res.Record)
	}
}

func statusFor(err error) int {
	switch lookup.Kind(err) {
	case lookup.KindInvalid:
		return http.StatusBadRequest
	case lookup.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusNotFound
	}
}

type dashboardView struct {
	Record  model.CustomerRecord
	NextDue string
	DebtAbs float64
}

type landingView struct {
	DemoClient string
}

// dashboardHandler serves GET /?client=<name>.
func dashboardHandler(svc Looker, demoClient string) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := strings.TrimSpace(c.QueryParam("client"))
		if name == "" {
			return c.Render(http.StatusOK, "landing", landingView{DemoClient: demoClient})
		}

		res, err := svc.Lookup(c.Request().Context(), name)
		if res.RequestID != "" {
			c.Response().Header().Set(echo.HeaderXRequestID, res.RequestID)
		}
		if err != nil {
			return c.Render(statusFor(err), "error", nil)
		}

		view := dashboardView{Record: res.Record, DebtAbs: math.Abs(res.Record.DebtFlag)}
		if due, ok := res.Record.NextPaymentDue(); ok {
			view.NextDue = dates.FormatCanonical(due)
		}
		return c.Render(http.StatusOK, "dashboard", view)
	}
}
