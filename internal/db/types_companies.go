package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is a full company document with nested firmographic,
// technographic and financial sub-documents.
type Company struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Ticker         string             `bson:"ticker,omitempty" json:"ticker,omitempty"`
	Industry       string             `bson:"industry" json:"industry"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Firmographics  *Firmographics     `bson:"firmographics,omitempty" json:"firmographics,omitempty"`
	Technographics *Technographics    `bson:"technographics,omitempty" json:"technographics,omitempty"`
	Financials     *Financials        `bson:"financials,omitempty" json:"financials,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CompanySummary is a lightweight projection of a company for listings
type CompanySummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Ticker   string             `bson:"ticker,omitempty" json:"ticker,omitempty"`
	Industry string             `bson:"industry" json:"industry"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`
}

// Firmographics holds structured descriptive attributes of a company
type Firmographics struct {
	SubIndustry   string `bson:"subIndustry,omitempty" json:"subIndustry,omitempty"`
	EmployeeRange string `bson:"employeeRange,omitempty" json:"employeeRange,omitempty"`
	RevenueRange  string `bson:"revenueRange,omitempty" json:"revenueRange,omitempty"`
	FoundedYear   int    `bson:"foundedYear,omitempty" json:"foundedYear,omitempty"`
	CompanyType   string `bson:"companyType,omitempty" json:"companyType,omitempty"`
	HQCity        string `bson:"hqCity,omitempty" json:"hqCity,omitempty"`
	HQCountry     string `bson:"hqCountry,omitempty" json:"hqCountry,omitempty"`
}

// Technographics holds technology-usage attributes grouped by category
type Technographics struct {
	Stacks []TechStack `bson:"stacks,omitempty" json:"stacks,omitempty"`
}

// TechStack is one technology category with the products observed in use
type TechStack struct {
	Category string   `bson:"category" json:"category"`
	Products []string `bson:"products" json:"products"`
}

// Financials holds per-fiscal-year financial figures
type Financials struct {
	FiscalYear       int                `bson:"fiscalYear,omitempty" json:"fiscalYear,omitempty"`
	Currency         string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Revenue          float64            `bson:"revenue,omitempty" json:"revenue,omitempty"`
	NetIncome        float64            `bson:"netIncome,omitempty" json:"netIncome,omitempty"`
	TotalAssets      float64            `bson:"totalAssets,omitempty" json:"totalAssets,omitempty"`
	TotalLiabilities float64            `bson:"totalLiabilities,omitempty" json:"totalLiabilities,omitempty"`
	Quarters         []QuarterlyFigures `bson:"quarters,omitempty" json:"quarters,omitempty"`
}

// QuarterlyFigures is one quarter's revenue and income
type QuarterlyFigures struct {
	Quarter   string  `bson:"quarter" json:"quarter"` // e.g. "Q1"
	Revenue   float64 `bson:"revenue,omitempty" json:"revenue,omitempty"`
	NetIncome float64 `bson:"netIncome,omitempty" json:"netIncome,omitempty"`
}
