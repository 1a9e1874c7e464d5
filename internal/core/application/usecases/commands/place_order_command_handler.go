package commands

import (
	"context"
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/validation"

	"golang.org/x/sync/errgroup"
)

// PlaceOrderCommandHandler runs an order submission through the place-order
// workflow: validate, price, acknowledge, emit events.
//
// Validation accumulates every field violation of the submission before
// failing. Pricing and acknowledgment run only on a fully valid order.
// Acknowledgment delivery is best-effort and never fails the workflow; it
// only decides whether an acknowledgment-sent event is emitted.
type PlaceOrderCommandHandler struct {
	catalog        ports.ProductCatalog
	addressChecker ports.AddressChecker
	renderer       ports.AcknowledgmentRenderer
	sender         ports.AcknowledgmentSender
}

// NewPlaceOrderCommandHandler creates a handler wired to its collaborating
// services.
func NewPlaceOrderCommandHandler(
	catalog ports.ProductCatalog,
	addressChecker ports.AddressChecker,
	renderer ports.AcknowledgmentRenderer,
	sender ports.AcknowledgmentSender,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		catalog:        catalog,
		addressChecker: addressChecker,
		renderer:       renderer,
		sender:         sender,
	}
}

// Handle processes the place-order command and returns the emitted events.
//
// On a validation failure the returned error is a *validation.Errors holding
// every violation. An infrastructure failure of a collaborating service
// surfaces as a *RemoteServiceError, and a pricing failure as a
// *PricingError.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) ([]order.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	validated, err := h.validateOrder(ctx, cmd.UnvalidatedOrder())
	if err != nil {
		return nil, err
	}

	priced, err := h.priceOrder(ctx, validated)
	if err != nil {
		return nil, err
	}

	ackEvent, err := h.acknowledgeOrder(ctx, priced)
	if err != nil {
		return nil, err
	}

	return createEvents(priced, ackEvent), nil
}

// validateOrder turns a raw submission into a ValidatedOrder, collecting
// the order ID, customer, both addresses, and every line into one composite
// so the caller sees all violations at once. The two address checks hit a
// remote service and run concurrently.
func (h *PlaceOrderCommandHandler) validateOrder(
	ctx context.Context,
	raw order.UnvalidatedOrder,
) (order.ValidatedOrder, error) {
	id, idErr := order.NewIDFromString(raw.OrderID)
	customerInfo, customerErr := order.NewCustomerInfo(raw.CustomerInfo)

	var shippingAddress, billingAddress order.Address
	var shippingErr, billingErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shippingAddress, shippingErr, err = h.checkAddress(gctx, "shippingAddress", raw.ShippingAddress)
		return err
	})
	g.Go(func() error {
		var err error
		billingAddress, billingErr, err = h.checkAddress(gctx, "billingAddress", raw.BillingAddress)
		return err
	})
	if err := g.Wait(); err != nil {
		return order.ValidatedOrder{}, err
	}

	lines, linesErr := h.validateLines(ctx, raw.Lines)

	if err := validation.Collect(idErr, customerErr, shippingErr, billingErr, linesErr); err != nil {
		return order.ValidatedOrder{}, err
	}

	return order.NewValidatedOrder(id, customerInfo, shippingAddress, billingAddress, lines)
}

// checkAddress verifies one address against the remote checking service.
//
// The service's rejections (invalid format, not found) are validation
// failures of the submission and come back in validationErr; anything else
// is an infrastructure failure and comes back in infraErr to abort the
// whole workflow.
func (h *PlaceOrderCommandHandler) checkAddress(
	ctx context.Context,
	paramName string,
	raw order.UnvalidatedAddress,
) (address order.Address, validationErr error, infraErr error) {
	checked, err := h.addressChecker.CheckAddressExists(ctx, raw)
	switch {
	case err == nil:
		address, validationErr = order.NewAddress(checked)
		return address, validationErr, nil
	case errors.Is(err, ports.ErrAddressInvalidFormat), errors.Is(err, ports.ErrAddressNotFound):
		return order.Address{}, errs.NewValueIsInvalidErrorWithCause(paramName, err), nil
	default:
		return order.Address{}, nil, NewRemoteServiceError("address checking service", err)
	}
}

// validateLines validates every submitted line and checks its product code
// against the catalog, collecting per-line failures in submission order.
func (h *PlaceOrderCommandHandler) validateLines(
	ctx context.Context,
	raw []order.UnvalidatedOrderLine,
) ([]order.ValidatedOrderLine, error) {
	lines := make([]order.ValidatedOrderLine, 0, len(raw))
	lineErrs := make([]error, 0, len(raw))

	for _, rawLine := range raw {
		line, err := order.NewValidatedOrderLine(rawLine)
		if err != nil {
			lineErrs = append(lineErrs, err)
			continue
		}

		exists, err := h.catalog.CheckProductCodeExists(ctx, line.ProductCode())
		if err != nil {
			return nil, NewRemoteServiceError("product catalog", err)
		}
		if !exists {
			lineErrs = append(lineErrs, errs.NewObjectNotFoundError("productCode", rawLine.ProductCode))
			continue
		}

		lines = append(lines, line)
	}

	if err := validation.Collect(lineErrs...); err != nil {
		return nil, err
	}
	return lines, nil
}

// priceOrder attaches a line price to every validated line and sums them
// into the billing amount. An amount leaving its allowed range is a pricing
// failure, not a validation failure of the submission.
func (h *PlaceOrderCommandHandler) priceOrder(
	ctx context.Context,
	validated order.ValidatedOrder,
) (order.PricedOrder, error) {
	validatedLines := validated.Lines()
	pricedLines := make([]order.PricedOrderLine, 0, len(validatedLines))
	linePrices := make([]order.Price, 0, len(validatedLines))

	for _, line := range validatedLines {
		price, err := h.catalog.GetProductPrice(ctx, line.ProductCode())
		if err != nil {
			return order.PricedOrder{}, NewRemoteServiceError("product catalog", err)
		}

		linePrice, err := price.Multiply(line.Quantity().Value())
		if err != nil {
			return order.PricedOrder{}, NewPricingError(
				fmt.Sprintf("line %s", line.LineID().Value()), err)
		}

		pricedLine, err := order.NewPricedOrderLine(line, linePrice)
		if err != nil {
			return order.PricedOrder{}, NewPricingError(
				fmt.Sprintf("line %s", line.LineID().Value()), err)
		}

		pricedLines = append(pricedLines, pricedLine)
		linePrices = append(linePrices, linePrice)
	}

	amountToBill, err := order.SumPrices(linePrices)
	if err != nil {
		return order.PricedOrder{}, NewPricingError("billing amount", err)
	}

	return order.NewPricedOrder(validated, pricedLines, amountToBill)
}

// acknowledgeOrder renders the acknowledgment letter and attempts delivery.
// Returns the acknowledgment-sent event when delivery happened, nil when it
// did not.
func (h *PlaceOrderCommandHandler) acknowledgeOrder(
	ctx context.Context,
	priced order.PricedOrder,
) (*order.AcknowledgmentSent, error) {
	letter := h.renderer.CreateOrderAcknowledgmentLetter(priced)

	acknowledgment, err := order.NewOrderAcknowledgment(priced.CustomerInfo().EmailAddress(), letter)
	if err != nil {
		return nil, err
	}

	if h.sender.SendOrderAcknowledgment(ctx, acknowledgment) != order.Sent {
		return nil, nil
	}

	return &order.AcknowledgmentSent{
		OrderID:      priced.ID(),
		EmailAddress: priced.CustomerInfo().EmailAddress(),
	}, nil
}

// createEvents assembles the workflow's outcome: the placed-order and
// billable events always, the acknowledgment-sent event only when delivery
// happened.
func createEvents(priced order.PricedOrder, ackEvent *order.AcknowledgmentSent) []order.Event {
	events := []order.Event{
		order.OrderPlaced{PricedOrder: priced},
		order.BillableOrderPlaced{
			OrderID:        priced.ID(),
			BillingAddress: priced.BillingAddress(),
			AmountToBill:   priced.AmountToBill(),
		},
	}
	if ackEvent != nil {
		events = append(events, *ackEvent)
	}
	return events
}
