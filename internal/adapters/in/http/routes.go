package http

import (
	"strconv"

	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// defaultAvailableDatesCount is how many picker dates the availability
// endpoint enumerates when the caller does not say.
const defaultAvailableDatesCount = 7

// RegisterRoutes attaches the API surface to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/queue", s.GetOrderQueue)
	api.POST("/orders/:id/transitions", s.TransitionOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/due-date", s.ScheduleDueDate)
	api.GET("/stores/:store/available-dates", s.GetAvailableDates)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

func parseCount(raw string) (int, error) {
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("count", err)
	}
	return count, nil
}
