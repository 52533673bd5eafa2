package pricing

import (
	"travel-booking-service/internal/module/booking/models/entity"
)

func (q Quote) Snapshot() entity.PriceSnapshot {
	return entity.PriceSnapshot{
		BasePrice:          q.BasePrice,
		SeasonalMultiplier: q.SeasonalMultiplier,
		BaseAmount:         q.BaseAmount,
		AddonAmount:        q.AddonAmount,
		Discounts:          q.Discounts,
		DiscountTotal:      q.DiscountTotal,
		GrossAmount:        q.GrossAmount,
		TotalPrice:         q.TotalPrice,
	}
}

// Selection captures the add-on request together with the resolved head count.
func (q Quote) Selection(a Addon) entity.AddonSelection {
	if !a.Needed {
		return entity.AddonSelection{}
	}
	return entity.AddonSelection{
		AddonNeeded:      true,
		AddonQuantity:    q.AddonQuantity,
		AddonPricingType: a.PricingType,
		AddonRate:        a.Rate,
		AddonMinCharge:   a.MinCharge,
	}
}

// AddonFromSelection rebuilds the add-on input stored on a booking.
func AddonFromSelection(kind entity.AddonKind, s entity.AddonSelection) Addon {
	return Addon{
		Needed:      s.AddonNeeded,
		Kind:        kind,
		PricingType: s.AddonPricingType,
		Quantity:    s.AddonQuantity,
		Rate:        s.AddonRate,
		MinCharge:   s.AddonMinCharge,
	}
}
