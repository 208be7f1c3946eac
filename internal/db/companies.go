package db

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CompanyFilters holds optional filters for listing companies
type CompanyFilters struct {
	Industry string
	Search   string
	Limit    int
	Offset   int
}

// ListCompanies retrieves company summaries with optional filters and a total count
func (db *DB) ListCompanies(ctx context.Context, filters CompanyFilters) ([]CompanySummary, int64, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	filter := bson.M{}
	if filters.Industry != "" {
		filter["industry"] = filters.Industry
	}
	if filters.Search != "" {
		filter["name"] = bson.M{
			"$regex":   escapeRegex(filters.Search),
			"$options": "i",
		}
	}

	total, err := db.companies().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "ticker": 1, "industry": 1, "location": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(filters.Offset)).
		SetLimit(int64(filters.Limit))

	cursor, err := db.companies().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []CompanySummary
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, 0, fmt.Errorf("failed to decode companies: %w", err)
	}
	return companies, total, nil
}

// GetCompanyByID retrieves a full company document by its ObjectID
func (db *DB) GetCompanyByID(ctx context.Context, id primitive.ObjectID) (*Company, error) {
	var c Company
	err := db.companies().FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// GetCompanyByName retrieves a company by exact name match
func (db *DB) GetCompanyByName(ctx context.Context, name string) (*Company, error) {
	var c Company
	err := db.companies().FindOne(ctx, bson.M{"name": name}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// GetFirmographics retrieves only the firmographics sub-document of a company
func (db *DB) GetFirmographics(ctx context.Context, id primitive.ObjectID) (*Firmographics, error) {
	var doc struct {
		Firmographics *Firmographics `bson:"firmographics"`
	}
	opts := options.FindOne().SetProjection(bson.M{"firmographics": 1})
	err := db.companies().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get firmographics: %w", err)
	}
	if doc.Firmographics == nil {
		return &Firmographics{}, nil
	}
	return doc.Firmographics, nil
}

// GetTechnographics retrieves only the technographics sub-document of a company
func (db *DB) GetTechnographics(ctx context.Context, id primitive.ObjectID) (*Technographics, error) {
	var doc struct {
		Technographics *Technographics `bson:"technographics"`
	}
	opts := options.FindOne().SetProjection(bson.M{"technographics": 1})
	err := db.companies().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get technographics: %w", err)
	}
	if doc.Technographics == nil {
		return &Technographics{}, nil
	}
	return doc.Technographics, nil
}

// GetFinancials retrieves only the financials sub-document of a company
func (db *DB) GetFinancials(ctx context.Context, id primitive.ObjectID) (*Financials, error) {
	var doc struct {
		Financials *Financials `bson:"financials"`
	}
	opts := options.FindOne().SetProjection(bson.M{"financials": 1})
	err := db.companies().FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get financials: %w", err)
	}
	if doc.Financials == nil {
		return &Financials{}, nil
	}
	return doc.Financials, nil
}

// ListIndustries returns the sorted distinct non-empty industry values
func (db *DB) ListIndustries(ctx context.Context) ([]string, error) {
	values, err := db.companies().Distinct(ctx, "industry", bson.M{"industry": bson.M{"$ne": ""}})
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}

	industries := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			industries = append(industries, s)
		}
	}
	sort.Strings(industries)
	return industries, nil
}

// UpsertCompany inserts or replaces a company document keyed by exact name.
// Used by the import tool; CreatedAt is preserved on update. Reports whether
// a new document was inserted.
func (db *DB) UpsertCompany(ctx context.Context, company *Company) (bool, error) {
	if company.Name == "" {
		return false, fmt.Errorf("company name cannot be empty")
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":           company.Name,
			"ticker":         company.Ticker,
			"industry":       company.Industry,
			"website":        company.Website,
			"location":       company.Location,
			"firmographics":  company.Firmographics,
			"technographics": company.Technographics,
			"financials":     company.Financials,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	result, err := db.companies().UpdateOne(ctx, bson.M{"name": company.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert company %s: %w", company.Name, err)
	}
	return result.UpsertedCount > 0, nil
}

// escapeRegex escapes regex metacharacters so user search terms are treated literally
func escapeRegex(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
