package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/orderflow/order-taking-service/internal/domain"
)

// validateOrder converts an untyped submission into a fully validated order.
// Each step short-circuits on first failure; no partial validated order is
// ever returned. The address checker is invoked twice, shipping then
// billing, sequentially.
func validateOrder(
	ctx context.Context,
	catalog ProductCatalog,
	checker AddressChecker,
	order domain.UnvalidatedOrder,
) (*domain.ValidatedOrder, error) {
	orderID, err := domain.NewOrderID("orderId", order.OrderID)
	if err != nil {
		return nil, domain.NewValidationError(err)
	}

	customer, err := validateCustomerInfo(order.CustomerInfo)
	if err != nil {
		return nil, err
	}

	shipping, err := validateAddress(ctx, checker, "shippingAddress", order.ShippingAddress)
	if err != nil {
		return nil, err
	}

	billing, err := validateAddress(ctx, checker, "billingAddress", order.BillingAddress)
	if err != nil {
		return nil, err
	}

	lines, err := validateLines(catalog, order.Lines)
	if err != nil {
		return nil, err
	}

	return &domain.ValidatedOrder{
		OrderID:         orderID,
		CustomerInfo:    customer,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Lines:           lines,
	}, nil
}

func validateCustomerInfo(raw domain.UnvalidatedCustomerInfo) (domain.CustomerInfo, error) {
	firstName, err := domain.NewString50("customerInfo.firstName", raw.FirstName)
	if err != nil {
		return domain.CustomerInfo{}, domain.NewValidationError(err)
	}

	lastName, err := domain.NewString50("customerInfo.lastName", raw.LastName)
	if err != nil {
		return domain.CustomerInfo{}, domain.NewValidationError(err)
	}

	email, err := domain.NewEmailAddress("customerInfo.emailAddress", raw.EmailAddress)
	if err != nil {
		return domain.CustomerInfo{}, domain.NewValidationError(err)
	}

	return domain.CustomerInfo{
		Name:         domain.PersonalName{FirstName: firstName, LastName: lastName},
		EmailAddress: email,
	}, nil
}

// validateAddress asks the verification authority about the raw address and
// only then constructs the constrained fields from what the authority
// returned. Format and not-found outcomes are validation errors; any other
// checker failure is a remote-service error.
func validateAddress(
	ctx context.Context,
	checker AddressChecker,
	fieldPrefix string,
	raw domain.UnvalidatedAddress,
) (domain.Address, error) {
	checked, err := checker.CheckAddress(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrAddressNotFound), errors.Is(err, ErrAddressInvalidFormat):
			return domain.Address{}, domain.NewValidationError(fmt.Errorf("%s: %w", fieldPrefix, err))
		default:
			return domain.Address{}, domain.NewRemoteServiceError("address-verification", err)
		}
	}

	line1, err := domain.NewString50(fieldPrefix+".addressLine1", checked.AddressLine1)
	if err != nil {
		return domain.Address{}, domain.NewValidationError(err)
	}

	line2, ok2, err := domain.NewString50Option(fieldPrefix+".addressLine2", checked.AddressLine2)
	if err != nil {
		return domain.Address{}, domain.NewValidationError(err)
	}
	line3, ok3, err := domain.NewString50Option(fieldPrefix+".addressLine3", checked.AddressLine3)
	if err != nil {
		return domain.Address{}, domain.NewValidationError(err)
	}
	line4, ok4, err := domain.NewString50Option(fieldPrefix+".addressLine4", checked.AddressLine4)
	if err != nil {
		return domain.Address{}, domain.NewValidationError(err)
	}

	city, err := domain.NewString50(fieldPrefix+".city", checked.City)
	if err != nil {
		return domain.Address{}, domain.NewValidationError(err)
	}

	zip, err := domain.NewZipCode(fieldPrefix+".zipCode", checked.ZipCode)
	if err != nil {
		return domain.Address{}, domain.NewValidationError(err)
	}

	address := domain.Address{
		AddressLine1: line1,
		City:         city,
		ZipCode:      zip,
	}
	if ok2 {
		address.AddressLine2 = &line2
	}
	if ok3 {
		address.AddressLine3 = &line3
	}
	if ok4 {
		address.AddressLine4 = &line4
	}
	return address, nil
}

// validateLines attempts every line and collects the failures; if any line
// failed, the first collected error is returned. Later lines' independent
// failures are not surfaced: the policy is report-one, not report-all.
func validateLines(catalog ProductCatalog, raw []domain.UnvalidatedOrderLine) ([]domain.ValidatedOrderLine, error) {
	lines := make([]domain.ValidatedOrderLine, 0, len(raw))
	var failures []error

	for i, rawLine := range raw {
		line, err := validateLine(catalog, i, rawLine)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		lines = append(lines, line)
	}

	if len(failures) > 0 {
		return nil, failures[0]
	}
	return lines, nil
}

func validateLine(catalog ProductCatalog, index int, raw domain.UnvalidatedOrderLine) (domain.ValidatedOrderLine, error) {
	lineID, err := domain.NewOrderLineID(fmt.Sprintf("lines[%d].orderLineId", index), raw.OrderLineID)
	if err != nil {
		return domain.ValidatedOrderLine{}, domain.NewValidationError(err)
	}

	codeField := fmt.Sprintf("lines[%d].productCode", index)
	code, err := domain.NewProductCode(codeField, raw.ProductCode)
	if err != nil {
		return domain.ValidatedOrderLine{}, domain.NewValidationError(err)
	}

	// A well-formed code that the catalog does not know is a validation
	// error, not a silently dropped line.
	if !catalog.ProductExists(code) {
		return domain.ValidatedOrderLine{}, domain.NewValidationError(
			fmt.Errorf("%s: product %q does not exist in the catalog", codeField, code.Value()))
	}

	qty, err := domain.NewOrderQuantity(fmt.Sprintf("lines[%d].quantity", index), code, raw.Quantity)
	if err != nil {
		return domain.ValidatedOrderLine{}, domain.NewValidationError(err)
	}

	return domain.ValidatedOrderLine{
		OrderLineID: lineID,
		ProductCode: code,
		Quantity:    qty,
	}, nil
}
