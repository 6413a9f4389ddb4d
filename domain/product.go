package domain

import "time"

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     price       NUMERIC NOT NULL,
//     description TEXT,
//     image       TEXT,
//     category    TEXT,
//     stock       INT,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	Price       float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Image       string    `gorm:"column:image;type:text" json:"image"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	Stock       int       `gorm:"column:stock;default:0" json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
