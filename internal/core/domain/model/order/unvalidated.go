package order

// The Unvalidated* structures are the untrusted order submission as the
// caller provides it. They carry no invariants: every field is raw input
// whose only purpose is to flow through the composite validators. Optional
// address lines are pointers so "not supplied" stays distinct from "blank".

// UnvalidatedCustomerInfo is the raw customer section of a submission.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

// UnvalidatedAddress is a raw postal address. AddressLine1, City, and
// ZipCode are required; AddressLines 2-4 are optional (nil = not supplied).
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 *string
	AddressLine3 *string
	AddressLine4 *string
	City         string
	ZipCode      string
}

// UnvalidatedOrderLine is one raw line of a submission.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// UnvalidatedOrder is a complete raw order submission.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}

// CheckedAddress is a raw address that the external address service has
// confirmed to exist. Field validation into an Address happens afterwards;
// existence and well-formedness are separate concerns.
type CheckedAddress struct {
	Address UnvalidatedAddress
}
