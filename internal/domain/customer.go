package domain

// Compound records assembled from already-validated values. They carry no
// validation logic of their own.

// PersonalName is a customer's first and last name.
type PersonalName struct {
	FirstName String50 `json:"firstName"`
	LastName  String50 `json:"lastName"`
}

// CustomerInfo is the customer identity attached to an order.
type CustomerInfo struct {
	Name         PersonalName `json:"name"`
	EmailAddress EmailAddress `json:"emailAddress"`
}

// Address is a postal address whose fields are constrained values and whose
// existence has been confirmed by the address verification authority.
// Lines 2-4 are optional.
type Address struct {
	AddressLine1 String50  `json:"addressLine1"`
	AddressLine2 *String50 `json:"addressLine2,omitempty"`
	AddressLine3 *String50 `json:"addressLine3,omitempty"`
	AddressLine4 *String50 `json:"addressLine4,omitempty"`
	City         String50  `json:"city"`
	ZipCode      ZipCode   `json:"zipCode"`
}
