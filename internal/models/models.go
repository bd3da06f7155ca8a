package models

import (
	"time"
)

type MenuItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"not null"                 json:"name"`
	Category string  `gorm:"index;not null"           json:"category"`
	Recipe   string  `json:"recipe"`
	Price    float64 `gorm:"not null"                 json:"price"`
	Image    string  `json:"image"`
}

type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex;not null"     json:"email"`
	Role  string `json:"role,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

type Review struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

type CartEntry struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string  `gorm:"index;not null"           json:"email"`
	MenuItemID uint    `gorm:"not null"                 json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email         string    `gorm:"index;not null"           json:"email"`
	Price         float64   `gorm:"not null"                 json:"price"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	CartIDs       []uint    `gorm:"serializer:json"          json:"cart_ids"`
	MenuItemIDs   []uint    `gorm:"serializer:json"          json:"menu_item_ids"`
}

// PaymentItem is one payment/menu-item pair, kept as its own row so the
// per-category order statistics can join against menu_items.
type PaymentItem struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentID  uint `gorm:"index;not null"           json:"payment_id"`
	MenuItemID uint `gorm:"not null"                 json:"menu_item_id"`
}
