// Package http exposes the production pipeline over an echo HTTP API.
package http

import (
	"errors"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CancelOrderTransitionName is the wire command name that cancels instead
// of transitioning. Cancellation arrives on the same command surface as
// stage transitions but is routed to the cancel handler; it never touches
// the stage machine.
const CancelOrderTransitionName = "cancel_order"

// Error is the JSON error payload for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	Store          string `json:"store"`
	DeliveryMethod string `json:"deliveryMethod"`
	Number         string `json:"number"`
}

// OrderCreated is the response body for successful order creation.
type OrderCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// TransitionRequest is the request body for the transition endpoint. The
// transition field carries the wire command name; store and notes are
// optional context.
type TransitionRequest struct {
	Transition string `json:"transition"`
	Store      string `json:"store,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// CancelRequest is the request body for the cancel endpoint.
type CancelRequest struct {
	Store string `json:"store,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// QueueItem is one row of the queue response.
type QueueItem struct {
	Id             openapi_types.UUID  `json:"id"`
	Number         string              `json:"number"`
	Store          string              `json:"store"`
	Stage          string              `json:"stage"`
	DeliveryMethod string              `json:"deliveryMethod"`
	AssigneeId     *openapi_types.UUID `json:"assigneeId,omitempty"`
	DueDate        *openapi_types.Date `json:"dueDate,omitempty"`
	Status         string              `json:"status"`
	Priority       string              `json:"priority,omitempty"`
	NeedsAttention bool                `json:"needsAttention"`
}

// AvailableDates is the response body for the availability endpoint.
type AvailableDates struct {
	NextDueDate    openapi_types.Date   `json:"nextDueDate"`
	AvailableDates []openapi_types.Date `json:"availableDates"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	scheduleDueDateHandler commands.ScheduleDueDateCommandHandler

	getOrderQueueHandler     queries.GetOrderQueueQueryHandler
	getAvailableDatesHandler queries.GetAvailableDatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	scheduleDueDateHandler commands.ScheduleDueDateCommandHandler,
	getOrderQueueHandler queries.GetOrderQueueQueryHandler,
	getAvailableDatesHandler queries.GetAvailableDatesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		transitionOrderHandler:   transitionOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		scheduleDueDateHandler:   scheduleDueDateHandler,
		getOrderQueueHandler:     getOrderQueueHandler,
		getAvailableDatesHandler: getAvailableDatesHandler,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.Store, body.DeliveryMethod, body.Number)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, statusFromError(handleErr), "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{Id: orderID.Bytes()})
}

// GetOrderQueue handles GET /api/v1/orders/queue. An optional "store" query
// parameter narrows the queue to one location.
func (s *Server) GetOrderQueue(ctx echo.Context) error {
	var query queries.GetOrderQueueQuery
	if store := ctx.QueryParam("store"); store != "" {
		query = queries.NewGetOrderQueueQueryForStore(store)
	} else {
		query = queries.NewGetOrderQueueQuery()
	}

	items, err := s.getOrderQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order queue")
	}

	response := make([]QueueItem, len(items))
	for i, item := range items {
		response[i] = toQueueItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transitions. The
// cancel_order command name routes to cancellation; every other name is a
// stage transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var body TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	if body.Transition == CancelOrderTransitionName {
		return s.cancelOrder(ctx, orderID, body.Store, body.Notes)
	}

	transition, err := order.TransitionFromString(body.Transition)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid transition: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, body.Store, transition, body.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, statusFromError(handleErr), "Failed to transition order: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var body CancelRequest
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	return s.cancelOrder(ctx, orderID, body.Store, body.Notes)
}

func (s *Server) cancelOrder(ctx echo.Context, orderID kernel.UUID, store string, notes string) error {
	cmd, err := commands.NewCancelOrderCommand(orderID, store, notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, statusFromError(handleErr), "Failed to cancel order: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScheduleDueDate handles POST /api/v1/orders/:id/due-date.
func (s *Server) ScheduleDueDate(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewScheduleDueDateCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid schedule data: "+err.Error())
	}

	if handleErr := s.scheduleDueDateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, statusFromError(handleErr), "Failed to schedule due date: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDates handles GET /api/v1/stores/:store/available-dates. An
// optional "count" query parameter caps the enumerated picker dates.
func (s *Server) GetAvailableDates(ctx echo.Context) error {
	count := defaultAvailableDatesCount
	if raw := ctx.QueryParam("count"); raw != "" {
		parsed, err := parseCount(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid count: "+err.Error())
		}
		count = parsed
	}

	query, err := queries.NewGetAvailableDatesQuery(ctx.Param("store"), count)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid availability query: "+err.Error())
	}

	result, err := s.getAvailableDatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to compute availability")
	}

	dates := make([]openapi_types.Date, len(result.AvailableDates))
	for i, d := range result.AvailableDates {
		dates[i] = openapi_types.Date{Time: d.Time()}
	}

	return ctx.JSON(http.StatusOK, AvailableDates{
		NextDueDate:    openapi_types.Date{Time: result.NextDueDate.Time()},
		AvailableDates: dates,
	})
}

func toQueueItemResponse(item services.QueueItem) QueueItem {
	var assigneeID *openapi_types.UUID
	if item.AssigneeID != nil {
		raw := item.AssigneeID.Bytes()
		assigneeID = &raw
	}

	var dueDate *openapi_types.Date
	if item.DueDate != nil {
		raw := openapi_types.Date{Time: item.DueDate.Time()}
		dueDate = &raw
	}

	return QueueItem{
		Id:             item.OrderID.Bytes(),
		Number:         item.Number,
		Store:          item.Store.String(),
		Stage:          item.Stage.String(),
		DeliveryMethod: item.DeliveryMethod.String(),
		AssigneeId:     assigneeID,
		DueDate:        dueDate,
		Status:         string(item.Status),
		Priority:       string(item.Priority),
		NeedsAttention: item.NeedsAttention,
	}
}

// statusFromError maps domain failures onto HTTP status codes. Missing
// aggregates are 404, workflow conflicts are 409, rejected input is 400,
// anything else is 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderIsCancelled),
		errors.Is(err, order.ErrOrderIsCompleted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
