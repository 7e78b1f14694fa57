package domain

// Order state records. Each workflow stage consumes the previous stage's
// record and produces a new, independent one; there is no shared mutable
// state between stages.

// UnvalidatedCustomerInfo is the raw customer submission.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

// UnvalidatedAddress is the raw address submission.
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// UnvalidatedOrderLine is a raw order line submission.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// UnvalidatedOrder is the raw order submission with no invariants enforced.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}

// CheckedAddress is an address as returned by the verification authority.
// Its fields are still raw strings; constrained construction happens after
// the check.
type CheckedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// ValidatedOrderLine is an order line whose every field is a constrained
// value and whose product code is confirmed to exist in the catalog.
type ValidatedOrderLine struct {
	OrderLineID OrderLineID   `json:"orderLineId"`
	ProductCode ProductCode   `json:"productCode"`
	Quantity    OrderQuantity `json:"quantity"`
}

// ValidatedOrder is an order whose every field is a constrained value and
// whose addresses have been confirmed to exist.
type ValidatedOrder struct {
	OrderID         OrderID              `json:"orderId"`
	CustomerInfo    CustomerInfo         `json:"customerInfo"`
	ShippingAddress Address              `json:"shippingAddress"`
	BillingAddress  Address              `json:"billingAddress"`
	Lines           []ValidatedOrderLine `json:"lines"`
}

// PricedOrderLine is a validated line plus its computed price.
type PricedOrderLine struct {
	OrderLineID OrderLineID   `json:"orderLineId"`
	ProductCode ProductCode   `json:"productCode"`
	Quantity    OrderQuantity `json:"quantity"`
	LinePrice   Price         `json:"linePrice"`
}

// PricedOrder is a validated order plus a price per line and the total
// amount to bill.
type PricedOrder struct {
	OrderID         OrderID           `json:"orderId"`
	CustomerInfo    CustomerInfo      `json:"customerInfo"`
	ShippingAddress Address           `json:"shippingAddress"`
	BillingAddress  Address           `json:"billingAddress"`
	AmountToBill    BillingAmount     `json:"amountToBill"`
	Lines           []PricedOrderLine `json:"lines"`
}

// AcknowledgmentLetter is the formatted confirmation text for an order.
type AcknowledgmentLetter string

// Acknowledgment pairs a letter with the address it is sent to.
type Acknowledgment struct {
	EmailAddress EmailAddress
	Letter       AcknowledgmentLetter
}

// SendResult is the two-valued outcome of an acknowledgment send attempt.
// Not sending is not a failure; the workflow proceeds either way.
type SendResult string

const (
	SendResultSent    SendResult = "sent"
	SendResultNotSent SendResult = "not_sent"
)
