package earning

import "dispatch/internal/entities"

func ToDomain(e *EarningDB) *entities.Earning {
	if e == nil {
		return nil
	}
	return &entities.Earning{
		ID:            e.ID,
		CourierID:     e.CourierID,
		OrderID:       e.OrderID,
		BaseFee:       e.BaseFee,
		DistanceBonus: e.DistanceBonus,
		Tip:           e.Tip,
		Total:         e.Total,
		IsPaid:        e.IsPaid,
		EarnedAt:      e.EarnedAt,
		PaidAt:        e.PaidAt,
	}
}

func ToDomainList(earningModels []EarningDB) []entities.Earning {
	earningEntities := make([]entities.Earning, 0, len(earningModels))
	for i := range earningModels {
		earningEntities = append(earningEntities, *ToDomain(&earningModels[i]))
	}
	return earningEntities
}
