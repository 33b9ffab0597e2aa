package reservation

// PaymentLegs are the two native transfers that pay for one settlement.
type PaymentLegs struct {
	OwnerNet    uint64
	ProtocolFee uint64
}

func (l PaymentLegs) Total() uint64 {
	return l.OwnerNet + l.ProtocolFee
}

type FeeSchedule interface {
	Split(price uint64) PaymentLegs
}

// FixedFeeSchedule takes a flat protocol fee out of every price.
// A price below the fee is paid entirely to the protocol.
type FixedFeeSchedule struct {
	Fee uint64
}

func NewFixedFeeSchedule(fee uint64) *FixedFeeSchedule {
	return &FixedFeeSchedule{Fee: fee}
}

func (s *FixedFeeSchedule) Split(price uint64) PaymentLegs {
	fee := min(s.Fee, price)
	return PaymentLegs{
		OwnerNet:    price - fee,
		ProtocolFee: fee,
	}
}
