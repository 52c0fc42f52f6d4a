package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ai-shopping-assistant/internal/model"
	"ai-shopping-assistant/internal/product/repository"
	pkgLog "ai-shopping-assistant/pkg/log"
)

type implRepository struct {
	coll *mongo.Collection
	l    pkgLog.Logger
}

// New creates a Mongo-backed product repository.
func New(db *mongo.Database, collectionName string, l pkgLog.Logger) repository.ProductRepository {
	return &implRepository{
		coll: db.Collection(collectionName),
		l:    l,
	}
}

// productDoc mirrors the catalog document schema. The seeded dataset stores
// images under the singular "image" key.
type productDoc struct {
	ID          interface{} `bson:"_id"`
	Title       string      `bson:"title"`
	Category    string      `bson:"category"`
	Subcategory string      `bson:"subcategory"`
	Brand       string      `bson:"brand"`
	Description string      `bson:"description"`
	Price       float64     `bson:"price"`
	Image       []string    `bson:"image"`
}

func (d productDoc) toModel() model.Product {
	return model.Product{
		ID:          normalizeID(d.ID),
		Title:       d.Title,
		Category:    d.Category,
		Subcategory: d.Subcategory,
		Brand:       d.Brand,
		Description: d.Description,
		Price:       d.Price,
		Images:      d.Image,
	}
}

// normalizeID flattens whatever _id type the store used into a string.
func normalizeID(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FindProducts compiles the validated filter to a bson document and runs it.
func (r *implRepository) FindProducts(ctx context.Context, opt repository.FindProductsOptions) ([]model.Product, error) {
	if err := opt.Filter.Validate(); err != nil {
		return nil, fmt.Errorf("mongo repository: invalid filter: %w", err)
	}

	limit := int64(opt.Limit)
	if limit <= 0 {
		limit = 5
	}

	cur, err := r.coll.Find(ctx, buildMongoFilter(opt.Filter), options.Find().SetLimit(limit))
	if err != nil {
		r.l.Errorf(ctx, "mongo repository: find failed: %v", err)
		return nil, fmt.Errorf("mongo repository: find: %w", err)
	}
	defer cur.Close(ctx)

	var products []model.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			r.l.Warnf(ctx, "mongo repository: skipping undecodable document: %v", err)
			continue
		}
		products = append(products, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo repository: cursor: %w", err)
	}

	return products, nil
}

// ListProducts pages through the full catalog for offline indexing.
func (r *implRepository) ListProducts(ctx context.Context, opt repository.ListProductsOptions) ([]model.Product, error) {
	findOpts := options.Find().SetSkip(int64(opt.Offset))
	if opt.Limit > 0 {
		findOpts.SetLimit(int64(opt.Limit))
	}

	cur, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo repository: list: %w", err)
	}
	defer cur.Close(ctx)

	var products []model.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			r.l.Warnf(ctx, "mongo repository: skipping undecodable document: %v", err)
			continue
		}
		products = append(products, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo repository: cursor: %w", err)
	}

	return products, nil
}

// buildMongoFilter translates the filter AST into a bson document. String
// values are regex-escaped, so user text can never widen the match.
func buildMongoFilter(f repository.Filter) bson.M {
	if f.Empty() {
		return bson.M{}
	}

	clauses := make([]bson.M, 0, len(f.Conditions))
	for _, c := range f.Conditions {
		switch c.Op {
		case repository.OpContains:
			clauses = append(clauses, bson.M{
				c.Field: bson.M{"$regex": regexp.QuoteMeta(c.Value), "$options": "i"},
			})
		case repository.OpLTE:
			clauses = append(clauses, bson.M{c.Field: bson.M{"$lte": c.Number}})
		case repository.OpGTE:
			clauses = append(clauses, bson.M{c.Field: bson.M{"$gte": c.Number}})
		}
	}

	if len(clauses) == 1 {
		return clauses[0]
	}
	return bson.M{"$and": clauses}
}
