// Package order provides the domain model for taking customer orders. It
// implements the bounded value types, composite validators, and derived
// structures that carry an order from untrusted submission to priced,
// acknowledged domain events.
//
// The package includes:
//   - ID, LineID: validated order and order-line identifiers
//   - ProductCode: a tagged variant over widget and gizmo codes
//   - OrderQuantity: a tagged variant whose kind follows the product code
//   - Price, BillingAmount: bounded monetary amounts
//   - Address, CustomerInfo, PersonalName: validated composites
//   - ValidatedOrder, ValidatedOrderLine: the fully validated order
//   - PricedOrder, PricedOrderLine: the priced order derived from it
//   - Event: the domain events emitted once an order is placed
//
// Key business rules:
//   - Every type validates on construction and is immutable afterwards
//   - Composite constructors accumulate all field failures instead of
//     stopping at the first (see internal/pkg/validation)
//   - A quantity's variant always matches its product code's variant
//   - A validated order always carries at least one line
//
// Unvalidated* structures are the transient, untrusted inputs supplied by the
// caller; they carry no invariants and exist only to be validated.
package order
