package enums

// OrderKind distinguishes a finalized sale from a negotiation proposal.
type OrderKind string

const (
	// OrderKindOrder marks a checkout already authorized by the payment gateway.
	OrderKindOrder OrderKind = "order"
	// OrderKindProposal marks a cart handed to a salesperson for negotiation.
	OrderKindProposal OrderKind = "proposal"
)

func (k OrderKind) IsValid() bool {
	switch k {
	case OrderKindOrder, OrderKindProposal:
		return true
	}
	return false
}
