package enums

// FreightTerm carries the legacy freight billing flag: billed freight when the
// order has a shipping cost, free freight otherwise.
type FreightTerm int

const (
	FreightTermBilled FreightTerm = 0
	FreightTermFree   FreightTerm = 9
)

// FreightTermFor derives the flag from the shipping cost, matching the legacy
// rule: any positive shipping cost bills the freight.
func FreightTermFor(shippingPositive bool) FreightTerm {
	if shippingPositive {
		return FreightTermBilled
	}
	return FreightTermFree
}
