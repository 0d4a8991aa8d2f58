package models

import "time"

// DefaultProductImage is substituted whenever a product is created or
// patched without an image reference.
const DefaultProductImage = "/images/chair.jpg"

// Categories is the fixed set a product may belong to. Filtering by
// category happens in the presentational layer over the full listing.
var Categories = []string{
	"Electronics",
	"Furniture",
	"Clothing",
	"Books",
	"Sports",
	"Other",
}

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string `gorm:"uniqueIndex;not null"     json:"email"`
	Password  string `gorm:"not null"                 json:"-"`
	Username  string `gorm:"not null"                 json:"username"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null"                 json:"title"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Category    string  `json:"category"`
	Image       string  `gorm:"not null"                 json:"image"`
	SellerID    uint    `gorm:"index;not null"           json:"seller_id"`
}

// CartItem marks a product as present in the active cart. Presence is
// binary, there is no quantity.
type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint `gorm:"uniqueIndex;not null"     json:"product_id"`
}

// Purchase is an immutable snapshot of a product taken at checkout time.
type Purchase struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   uint      `gorm:"not null"                 json:"product_id"`
	Title       string    `gorm:"not null"                 json:"title"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	SellerID    uint      `json:"seller_id"`
	BuyerID     uint      `gorm:"index"                    json:"buyer_id"`
	PurchasedAt time.Time `gorm:"not null"                 json:"purchased_at"`
}
