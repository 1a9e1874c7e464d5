// Package http exposes the place-order workflow over HTTP.
package http

import (
	"errors"
	"net/http"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/validation"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests and coordinates between the transport layer
// and the place-order use case.
type Server struct {
	placeOrderHandler commands.PlaceOrderCommandHandler
	eventPublisher    ports.EventPublisher
}

// NewServer creates a new HTTP server with the place-order handler and the
// event publisher the emitted events go to.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	eventPublisher ports.EventPublisher,
) *Server {
	return &Server{
		placeOrderHandler: placeOrderHandler,
		eventPublisher:    eventPublisher,
	}
}

// RegisterRoutes attaches the server's routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/health", s.Health)
}

// CustomerInfoRequest is the customer section of an order submission.
type CustomerInfoRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// AddressRequest is one address of an order submission. The optional lines
// are pointers so an absent line is distinguishable from an empty one.
type AddressRequest struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	AddressLine3 *string `json:"addressLine3"`
	AddressLine4 *string `json:"addressLine4"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zipCode"`
}

// OrderLineRequest is one line of an order submission.
type OrderLineRequest struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
}

// PlaceOrderRequest is a complete order submission.
type PlaceOrderRequest struct {
	OrderID         string              `json:"orderId"`
	CustomerInfo    CustomerInfoRequest `json:"customerInfo"`
	ShippingAddress AddressRequest      `json:"shippingAddress"`
	BillingAddress  AddressRequest      `json:"billingAddress"`
	Lines           []OrderLineRequest  `json:"lines"`
}

// PlaceOrderResponse reports a successfully placed order.
type PlaceOrderResponse struct {
	OrderID      string   `json:"orderId"`
	AmountToBill float64  `json:"amountToBill"`
	Events       []string `json:"events"`
}

// Error is the error body returned for failed requests.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// PlaceOrder handles POST /api/v1/orders - runs a submission through the
// place-order workflow and publishes the emitted events.
//
// A validation failure returns 400 with every violation listed, a pricing
// failure 422, and an infrastructure failure of a collaborating service 502.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewPlaceOrderCommand(toUnvalidatedOrder(request))
	events, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.placeOrderError(ctx, err)
	}

	if err := s.eventPublisher.Publish(ctx.Request().Context(), events); err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Order was placed but publishing its events failed",
		})
	}

	eventTypes := make([]string, len(events))
	for i, event := range events {
		eventTypes[i] = event.Type()
	}

	response := PlaceOrderResponse{
		OrderID: request.OrderID,
		Events:  eventTypes,
	}
	if placed, ok := events[0].(order.OrderPlaced); ok {
		response.AmountToBill = placed.PricedOrder.AmountToBill().Amount()
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) placeOrderError(ctx echo.Context, err error) error {
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Order validation failed",
			Errors:  verrs.Messages(),
		})
	}

	if errors.Is(err, commands.ErrPricingFailed) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Order could not be priced: " + err.Error(),
		})
	}

	if errors.Is(err, commands.ErrRemoteServiceFailed) {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "A collaborating service failed",
		})
	}

	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func toUnvalidatedOrder(request PlaceOrderRequest) order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, len(request.Lines))
	for i, line := range request.Lines {
		lines[i] = order.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		}
	}

	return order.UnvalidatedOrder{
		OrderID: request.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    request.CustomerInfo.FirstName,
			LastName:     request.CustomerInfo.LastName,
			EmailAddress: request.CustomerInfo.EmailAddress,
		},
		ShippingAddress: toUnvalidatedAddress(request.ShippingAddress),
		BillingAddress:  toUnvalidatedAddress(request.BillingAddress),
		Lines:           lines,
	}
}

func toUnvalidatedAddress(request AddressRequest) order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: request.AddressLine1,
		AddressLine2: request.AddressLine2,
		AddressLine3: request.AddressLine3,
		AddressLine4: request.AddressLine4,
		City:         request.City,
		ZipCode:      request.ZipCode,
	}
}
