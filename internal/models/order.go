package models

import "time"

// Order status values. The public tracking code in _id is the only
// identifier customers ever see.
const (
	StatusPending   = "pending"
	StatusInProcess = "in_process"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order defines the persisted order document. The _id is the 8-character
// public tracking code, not a storage-assigned ObjectID.
type Order struct {
	ID               string     `bson:"_id" json:"id"`
	CustomerName     string     `bson:"customerName" json:"customerName"`
	CustomerWhatsapp string     `bson:"customerWhatsapp" json:"customerWhatsapp"`
	TotalAmount      float64    `bson:"totalAmount" json:"totalAmount"`
	Characteristics  string     `bson:"characteristics" json:"characteristics"`
	Status           string     `bson:"status" json:"status"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	ProcessedAt      *time.Time `bson:"processedAt,omitempty" json:"processedAt,omitempty"`
	ConfirmedAt      *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CompletedAt      *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CancelledAt      *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CancellationNote string     `bson:"cancellationNote,omitempty" json:"cancellationNote,omitempty"`

	// Delivery details, collected once when the customer confirms.
	// Empty while the order is pending.
	DeliveryDate      *time.Time `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	DeliveryTime      string     `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`
	DeliveryAddress   string     `bson:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	AddressReferences string     `bson:"addressReferences,omitempty" json:"addressReferences,omitempty"`
	SenderName        string     `bson:"senderName,omitempty" json:"senderName,omitempty"`
	SenderPhone       string     `bson:"senderPhone,omitempty" json:"senderPhone,omitempty"`
	RecipientName     string     `bson:"recipientName,omitempty" json:"recipientName,omitempty"`
	RecipientPhone    string     `bson:"recipientPhone,omitempty" json:"recipientPhone,omitempty"`
	CardMessage       string     `bson:"cardMessage,omitempty" json:"cardMessage,omitempty"`
}

// IsTerminal reports whether no further transition is allowed.
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled
}

// IsActive reports whether the order counts as active (anything not cancelled).
func (o *Order) IsActive() bool {
	return o.Status != StatusCancelled
}
