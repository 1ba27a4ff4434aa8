package usecase_test

import (
	"time"

	"quickmart/internal/domain/model"
	"quickmart/internal/infra/memory"
	"quickmart/internal/usecase"

	"github.com/shopspring/decimal"
)

// 固定の時計
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCategories() []model.Category {
	return []model.Category{
		{ID: 1, Slug: "fruits-vegetables", Name: "Fruits & Vegetables"},
		{ID: 2, Slug: "dairy-eggs", Name: "Dairy & Eggs"},
		{ID: 3, Slug: "bakery", Name: "Bakery"},
	}
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Organic Bananas", Category: "fruits-vegetables", Price: dec("3.50"), Description: "Sweet and ripe", InStock: true},
		{ID: 2, Name: "Fresh Strawberries", Category: "fruits-vegetables", Price: dec("4.99"), Description: "Hand picked", InStock: true},
		{ID: 3, Name: "Whole Milk", Category: "dairy-eggs", Price: dec("2.79"), Description: "From local farms", InStock: true},
		{ID: 4, Name: "Free Range Eggs", Category: "dairy-eggs", Price: dec("5.49"), Description: "Large eggs", InStock: true},
		{ID: 5, Name: "Sourdough", Category: "bakery", Price: dec("4.25"), Description: "Crisp crust, goes well with MILK", InStock: true},
		{ID: 6, Name: "Croissants", Category: "bakery", Price: dec("6.00"), Description: "Flaky", InStock: false},
		{ID: 7, Name: "Bagels", Category: "bakery", Price: dec("10.00"), Description: "Chewy", InStock: true},
	}
}

func newCatalog() *usecase.CatalogUsecase {
	return usecase.NewCatalogUsecase(
		memory.NewCategoryStore(memory.Delays{}, testCategories()),
		memory.NewProductStore(memory.Delays{}, testProducts()),
	)
}

func newOrderUsecase() (*usecase.OrderUsecase, *fixedClock) {
	clock := &fixedClock{t: testNow}
	return usecase.NewOrderUsecase(memory.NewOrderStore(memory.Delays{}, nil), clock), clock
}
