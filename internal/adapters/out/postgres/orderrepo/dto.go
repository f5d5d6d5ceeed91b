// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The composite lifecycle state (payment, delivery and
// return sub-machines) flattens to plain integer columns; the item list lives
// in a child table owned by the order row.
package orderrepo

import (
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by delivery status and agent assignment, the two axes the
// assignment job and the agent work-queue reads filter on.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	AgentID            *uuid.UUID     `gorm:"type:uuid;index"`
	Destination        DestinationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	PaymentMethod      int
	PaymentStatus      int
	CodPaymentReceived bool
	DeliveryStatus     int `gorm:"index"`
	ReturnType         int
	ReturnStatus       int
	ReturnReason       string
	ReturnRequestedAt  *time.Time
	IsRefunded         bool
	RewardPointsUsed   int
	RewardDiscount     float64
	CreatedAt          time.Time
	Items              []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DestinationDTO represents the embedded shipping destination within the
// order table.
type DestinationDTO struct {
	City    string `gorm:"not null"`
	Pincode string `gorm:"not null"`
}

// ItemDTO is one purchased line item belonging to an order.
type ItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice float64   `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := aggregate.Items()
	itemRows := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemRows = append(itemRows, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	request := aggregate.ReturnRequest()
	var requestedAt *time.Time
	if request.Exists() {
		at := request.RequestedAt()
		requestedAt = &at
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		AgentID:    agentID,
		Destination: DestinationDTO{
			City:    aggregate.Destination().City(),
			Pincode: aggregate.Destination().Pincode(),
		},
		PaymentMethod:      int(aggregate.PaymentMethod()),
		PaymentStatus:      int(aggregate.PaymentStatus()),
		CodPaymentReceived: aggregate.CodPaymentReceived(),
		DeliveryStatus:     int(aggregate.DeliveryStatus()),
		ReturnType:         int(request.Type()),
		ReturnStatus:       int(request.Status()),
		ReturnReason:       request.Reason(),
		ReturnRequestedAt:  requestedAt,
		IsRefunded:         aggregate.IsRefunded(),
		RewardPointsUsed:   aggregate.RewardPointsUsed().Points,
		RewardDiscount:     aggregate.RewardPointsUsed().DiscountAmount,
		CreatedAt:          aggregate.CreatedAt(),
		Items:              itemRows,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, return sub-state included, using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	destination, err := kernel.NewDestination(dto.Destination.City, dto.Destination.Pincode)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(row.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, row.Name, row.Quantity, row.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var requestedAt time.Time
	if dto.ReturnRequestedAt != nil {
		requestedAt = *dto.ReturnRequestedAt
	}

	request, err := order.RestoreReturnRequest(
		order.ReturnType(dto.ReturnType),
		order.ReturnStatus(dto.ReturnStatus),
		dto.ReturnReason,
		requestedAt,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		destination,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.CodPaymentReceived,
		order.DeliveryStatus(dto.DeliveryStatus),
		agentID,
		request,
		dto.IsRefunded,
		order.RewardPointsUsed{
			Points:         dto.RewardPointsUsed,
			DiscountAmount: dto.RewardDiscount,
		},
		dto.CreatedAt,
	)
}
