package models

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductStore owns the persistence lifecycle of Product: CRUD plus the
// attribute lookups. The database handle is injected; the store never opens
// or closes connections itself.
type ProductStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProductStore(db *gorm.DB, logger *zap.Logger) *ProductStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductStore{
		db:  db,
		log: logger,
	}
}

// Create inserts the product as a new row and assigns a fresh id. Any id the
// caller set beforehand is discarded; the database owns id assignment.
func (s *ProductStore) Create(p *Product) error {
	if err := p.validate(); err != nil {
		return err
	}
	p.ID = nil
	if err := s.db.Create(p).Error; err != nil {
		return err
	}
	s.log.Debug("created product", zap.Uintp("id", p.ID), zap.String("name", p.Name))
	return nil
}

// Update persists the product's current field values to its existing row.
// Calling it on a product that was never persisted is a programming error.
func (s *ProductStore) Update(p *Product) error {
	if p.ID == nil {
		return missingIDError("update")
	}
	if err := p.validate(); err != nil {
		return err
	}
	if err := s.db.Save(p).Error; err != nil {
		return err
	}
	s.log.Debug("updated product", zap.Uint("id", *p.ID), zap.String("name", p.Name))
	return nil
}

// Delete removes the product's row. The in-memory product keeps its id but
// must not be reused for further mutation.
func (s *ProductStore) Delete(p *Product) error {
	if p.ID == nil {
		return missingIDError("delete")
	}
	res := s.db.Delete(&Product{}, *p.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	s.log.Debug("deleted product", zap.Uint("id", *p.ID))
	return nil
}

// All returns every persisted product. Order is not part of the contract.
func (s *ProductStore) All() ([]Product, error) {
	var products []Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Find returns the product with the given id, or ErrProductNotFound.
func (s *ProductStore) Find(id uint) (*Product, error) {
	var product Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByName returns all products whose name matches exactly.
func (s *ProductStore) FindByName(name string) ([]Product, error) {
	s.log.Debug("querying products by name", zap.String("name", name))
	var products []Product
	if err := s.db.Where("name = ?", name).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory returns all products in the given category.
func (s *ProductStore) FindByCategory(category Category) ([]Product, error) {
	s.log.Debug("querying products by category", zap.Stringer("category", category))
	var products []Product
	if err := s.db.Where("category = ?", int(category)).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByPrice returns all products with exactly the given price. The price
// may be a decimal.Decimal, its string representation, or a plain number;
// both spellings of the same value yield identical result sets.
func (s *ProductStore) FindByPrice(price any) ([]Product, error) {
	normalized, err := toDecimal(price)
	if err != nil {
		return nil, err
	}
	s.log.Debug("querying products by price", zap.String("price", normalized.String()))
	var products []Product
	if err := s.db.Where("price = ?", normalized).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByAvailability returns all products with the given availability.
func (s *ProductStore) FindByAvailability(available bool) ([]Product, error) {
	s.log.Debug("querying products by availability", zap.Bool("available", available))
	var products []Product
	if err := s.db.Where("available = ?", available).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
