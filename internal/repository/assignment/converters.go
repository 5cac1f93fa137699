package assignment

import (
	"github.com/AlekSi/pointer"

	"dispatch/internal/entities"
)

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}

	assignmentEntity := &entities.Assignment{
		ID:          a.ID,
		OrderID:     a.OrderID,
		CourierID:   a.CourierID,
		Status:      entities.AssignmentStatusType(a.Status),
		IsActive:    a.IsActive,
		DeliveryFee: a.DeliveryFee,
		Tip:         a.Tip,
		AssignedAt:  a.AssignedAt,
		AcceptedAt:  a.AcceptedAt,
		RejectedAt:  a.RejectedAt,
		PickedUpAt:  a.PickedUpAt,
		DeliveredAt: a.DeliveredAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	if a.RejectReason != nil {
		assignmentEntity.RejectReason = *a.RejectReason
	}

	return assignmentEntity
}

func FromDomainModify(assignmentModify entities.AssignmentModify) AssignmentModifyDB {
	modifyModel := AssignmentModifyDB{
		OrderID:      assignmentModify.OrderID,
		CourierID:    assignmentModify.CourierID,
		IsActive:     assignmentModify.IsActive,
		DeliveryFee:  assignmentModify.DeliveryFee,
		Tip:          assignmentModify.Tip,
		RejectReason: assignmentModify.RejectReason,
		AssignedAt:   assignmentModify.AssignedAt,
		AcceptedAt:   assignmentModify.AcceptedAt,
		RejectedAt:   assignmentModify.RejectedAt,
		PickedUpAt:   assignmentModify.PickedUpAt,
		DeliveredAt:  assignmentModify.DeliveredAt,
	}

	if assignmentModify.Status != nil {
		modifyModel.Status = pointer.ToString(assignmentModify.Status.String())
	}

	return modifyModel
}

func ToOfferDomain(o *BroadcastOfferDB) *entities.BroadcastOffer {
	if o == nil {
		return nil
	}
	return &entities.BroadcastOffer{
		ID:          o.ID,
		OrderID:     o.OrderID,
		CourierID:   o.CourierID,
		DeliveryFee: o.DeliveryFee,
		OfferedAt:   o.OfferedAt,
		ExpiresAt:   o.ExpiresAt,
	}
}
