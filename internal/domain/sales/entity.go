package sales

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category enum - determines which aggregation bucket a sale falls into.
type Category string

const (
	CategoryTreatment Category = "treatment"
	CategoryProduct   Category = "product"
)

// ParseCategory normalizes the stored menu category case-insensitively.
func ParseCategory(s string) Category {
	if strings.EqualFold(s, string(CategoryProduct)) {
		return CategoryProduct
	}
	return CategoryTreatment
}

type MenuItem struct {
	ID              string
	Code            string
	Category        Category
	FootMinutes     int
	BodyMinutes     int
	Price           decimal.Decimal
	StaffCommission decimal.Decimal
	ExtraCommission decimal.Decimal
	IsActive        bool
}

// SaleLine is one sales transaction row joined with its menu item fields.
type SaleLine struct {
	ID              string
	StaffID         string
	MenuCode        string
	MenuCategory    Category
	SaleDate        time.Time
	FootMinutes     int
	BodyMinutes     int
	Price           decimal.Decimal
	StaffCommission decimal.Decimal
	ExtraCommission decimal.Decimal
	IsActive        bool
}

// DailySummary aggregates sale lines by (day, menu code).
// Created fresh per query, never persisted.
type DailySummary struct {
	Date            time.Time       `json:"date"`
	MenuCode        string          `json:"menu_code"`
	MenuCategory    Category        `json:"menu_category"`
	FootMinutes     int             `json:"foot_minutes"`
	BodyMinutes     int             `json:"body_minutes"`
	StaffCommission decimal.Decimal `json:"staff_commission"`
	ExtraCommission decimal.Decimal `json:"extra_commission"`
	Price           decimal.Decimal `json:"price"`
}
