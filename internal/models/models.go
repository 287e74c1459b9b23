package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusInactive  CustomerStatus = "INACTIVE"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusSuspended:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string    `gorm:"uniqueIndex;not null"      json:"name"`
	Description string    `json:"description"`
	Products    []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"            json:"id"`
	Name        string          `gorm:"not null"                            json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"         json:"price"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CategoryID  uint            `gorm:"index;not null"                      json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Customer struct {
	ID               uint           `gorm:"primaryKey;autoIncrement"                 json:"id"`
	FirstName        string         `gorm:"not null"                                 json:"first_name"`
	LastName         string         `gorm:"not null"                                 json:"last_name"`
	Email            string         `gorm:"uniqueIndex;not null"                     json:"email"`
	Phone            string         `json:"phone"`
	Address          string         `json:"address"`
	BirthDate        *time.Time     `json:"birth_date,omitempty"`
	RegistrationDate time.Time      `gorm:"not null"                                 json:"registration_date"`
	Status           CustomerStatus `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	Orders           []Order        `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"                  json:"id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null"                      json:"order_number"`
	OrderDate       time.Time       `gorm:"not null"                                  json:"order_date"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"     json:"total_amount"`
	ShippingAddress string          `json:"shipping_address"`
	Notes           string          `json:"notes"`
	CustomerID      uint            `gorm:"index;not null"                            json:"customer_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   uint            `gorm:"index;not null"              json:"order_id"`
	ProductID uint            `gorm:"index;not null"              json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
