package workflow

import "github.com/orderflow/order-taking-service/internal/domain"

// priceOrder converts a validated order into a priced order. It is
// synchronous and pure given the catalog's price function: applying it twice
// to the same validated order yields identical priced orders. The first line
// whose price leaves its bound short-circuits the whole order; a billing
// total outside its own bound is a pricing error even when every line price
// was individually valid.
func priceOrder(catalog ProductCatalog, order *domain.ValidatedOrder) (*domain.PricedOrder, error) {
	lines := make([]domain.PricedOrderLine, 0, len(order.Lines))
	prices := make([]domain.Price, 0, len(order.Lines))

	for _, line := range order.Lines {
		unitPrice := catalog.ProductPrice(line.ProductCode)

		linePrice, err := unitPrice.MultiplyBy(line.Quantity.Value())
		if err != nil {
			return nil, domain.NewPricingError(err)
		}

		lines = append(lines, domain.PricedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			LinePrice:   linePrice,
		})
		prices = append(prices, linePrice)
	}

	amountToBill, err := domain.SumPrices(prices)
	if err != nil {
		return nil, domain.NewPricingError(err)
	}

	return &domain.PricedOrder{
		OrderID:         order.OrderID,
		CustomerInfo:    order.CustomerInfo,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		AmountToBill:    amountToBill,
		Lines:           lines,
	}, nil
}
