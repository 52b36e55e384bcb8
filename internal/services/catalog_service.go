package services

import (
	"log"

	"shopfront/internal/models"
	"shopfront/internal/repositories"
	"shopfront/internal/reviews"
)

// CatalogService handles business logic for the product catalog,
// including on-demand review synthesis.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllProducts retrieves all catalog products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByCategory retrieves all products in a category.
func (s *CatalogService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(category)
}

// ReviewsFor synthesizes count reviews for a product. The review set is
// deterministic per product, so repeated calls return the same reviews.
func (s *CatalogService) ReviewsFor(productID string, count int) ([]models.DetailedReview, error) {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	return reviews.Generate(*product, count), nil
}

// SeedDemoCatalog populates the catalog with the fixed demo products.
// Duplicate ids from a previous run are logged and skipped.
func SeedDemoCatalog(repo repositories.ProductRepository) {
	for i := range demoCatalog {
		product := demoCatalog[i]
		if err := repo.Create(&product); err != nil {
			log.Printf("Error seeding product %s: %v", product.Name, err)
		}
	}
}

// demoCatalog is the fixed product set the storefront ships with. IDs
// are stable so carts, wishlists, and generated reviews stay coherent
// across restarts.
var demoCatalog = []models.Product{
	{ID: "prod-1", Name: "Wireless Headphones", Description: "Over-ear noise cancelling headphones with 40-hour battery", Price: 149.99, Stock: 32, Category: "Electronics", Rating: 4.8, Image: "https://images.shopfront.dev/products/wireless-headphones.jpg"},
	{ID: "prod-2", Name: "Smart Watch", Description: "Fitness tracking smartwatch with heart rate monitor", Price: 199.99, Stock: 18, Category: "Electronics", Rating: 4.5, Image: "https://images.shopfront.dev/products/smart-watch.jpg"},
	{ID: "prod-3", Name: "Bluetooth Speaker", Description: "Portable waterproof speaker with deep bass", Price: 59.99, Stock: 45, Category: "Electronics", Rating: 4.3, Image: "https://images.shopfront.dev/products/bluetooth-speaker.jpg"},
	{ID: "prod-4", Name: "Mechanical Keyboard", Description: "Hot-swappable mechanical keyboard with RGB backlight", Price: 89.99, Stock: 27, Category: "Electronics", Rating: 4.6, Image: "https://images.shopfront.dev/products/mechanical-keyboard.jpg"},
	{ID: "prod-5", Name: "Denim Jacket", Description: "Classic fit denim jacket in washed indigo", Price: 79.99, Stock: 21, Category: "Fashion", Rating: 4.2, Image: "https://images.shopfront.dev/products/denim-jacket.jpg"},
	{ID: "prod-6", Name: "Sunglasses", Description: "Polarized sunglasses with UV400 protection", Price: 34.99, Stock: 60, Category: "Fashion", Rating: 3.9, Image: "https://images.shopfront.dev/products/sunglasses.jpg"},
	{ID: "prod-7", Name: "Leather Tote", Description: "Full-grain leather tote with laptop sleeve", Price: 129.99, Stock: 12, Category: "Fashion", Rating: 4.7, Image: "https://images.shopfront.dev/products/leather-tote.jpg"},
	{ID: "prod-8", Name: "Desk Lamp", Description: "Dimmable LED desk lamp with wireless charging base", Price: 44.99, Stock: 38, Category: "Home & Garden", Rating: 4.4, Image: "https://images.shopfront.dev/products/desk-lamp.jpg"},
	{ID: "prod-9", Name: "Ceramic Planter Set", Description: "Set of three glazed ceramic planters with drainage", Price: 39.99, Stock: 25, Category: "Home & Garden", Rating: 4.1, Image: "https://images.shopfront.dev/products/ceramic-planter-set.jpg"},
	{ID: "prod-10", Name: "French Press", Description: "Double-wall stainless steel french press, 1L", Price: 29.99, Stock: 41, Category: "Home & Garden", Rating: 3.6, Image: "https://images.shopfront.dev/products/french-press.jpg"},
	{ID: "prod-11", Name: "Running Shoes", Description: "Lightweight road running shoes with responsive foam", Price: 119.99, Stock: 33, Category: "Sports", Rating: 4.6, Image: "https://images.shopfront.dev/products/running-shoes.jpg"},
	{ID: "prod-12", Name: "Yoga Mat", Description: "Non-slip 6mm yoga mat with carry strap", Price: 24.99, Stock: 52, Category: "Sports", Rating: 4.0, Image: "https://images.shopfront.dev/products/yoga-mat.jpg"},
	{ID: "prod-13", Name: "Resistance Bands", Description: "Five-level resistance band set with door anchor", Price: 19.99, Stock: 70, Category: "Sports", Rating: 3.8, Image: "https://images.shopfront.dev/products/resistance-bands.jpg"},
	{ID: "prod-14", Name: "Water Bottle", Description: "Insulated bottle that keeps drinks cold 24 hours", Price: 22.99, Stock: 58, Category: "Sports", Rating: 4.9, Image: "https://images.shopfront.dev/products/water-bottle.jpg"},
}
