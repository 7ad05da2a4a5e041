// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product catalog entity, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog products.
// The unit price is stored as amount in minor units plus an ISO currency code.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	PriceAmount   int64     `gorm:"type:bigint;not null"`
	PriceCurrency string    `gorm:"type:varchar(3);not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().UUID().Bytes(),
		Name:          aggregate.Name(),
		PriceAmount:   aggregate.Price().Amount(),
		PriceCurrency: aggregate.Price().Currency(),
	}
}

// toDomain converts a database DTO to a product domain entity using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.ProductIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price)
}
