package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merqado/commerce-api/internal/core/domain"
)

const collectionCompanies = "companies"

// CompanyRepository reads the seeded company reference collection.
type CompanyRepository struct {
	col *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{col: db.Collection(collectionCompanies)}
}

type companyDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Industry    string             `bson:"industry,omitempty"`
}

func (d companyDoc) toDomain() *domain.Company {
	return &domain.Company{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
		Industry:    d.Industry,
	}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	var doc companyDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer cur.Close(ctx)

	var companies []*domain.Company
	for cur.Next(ctx) {
		var doc companyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		companies = append(companies, doc.toDomain())
	}
	return companies, cur.Err()
}
