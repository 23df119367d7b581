package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adoptme/pet-adoption-api/internal/core/domain"
	"github.com/adoptme/pet-adoption-api/internal/core/ports"
)

const collectionAdoptions = "adoptions"

// AdoptionRepository implements ports.AdoptionRepository on a MongoDB
// collection. Adoption documents hold references only; pet and user records
// live in their own collections.
type AdoptionRepository struct {
	col *mongo.Collection
}

func NewAdoptionRepository(db *mongo.Database) *AdoptionRepository {
	return &AdoptionRepository{col: db.Collection(collectionAdoptions)}
}

type adoptionDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	PetID        primitive.ObjectID `bson:"pet_id"`
	UserID       primitive.ObjectID `bson:"user_id"`
	AdoptionDate time.Time          `bson:"adoption_date"`
	Status       string             `bson:"status"`
}

func (d *adoptionDoc) toDomain() *domain.Adoption {
	return &domain.Adoption{
		ID:           d.ID.Hex(),
		PetID:        d.PetID.Hex(),
		UserID:       d.UserID.Hex(),
		AdoptionDate: d.AdoptionDate,
		Status:       domain.AdoptionStatus(d.Status),
	}
}

func (r *AdoptionRepository) Create(ctx context.Context, adoption *domain.Adoption) (*domain.Adoption, error) {
	pid, ok := objectIDFromHex(adoption.PetID)
	if !ok {
		return nil, fmt.Errorf("insert adoption: malformed pet id %q", adoption.PetID)
	}
	uid, ok := objectIDFromHex(adoption.UserID)
	if !ok {
		return nil, fmt.Errorf("insert adoption: malformed user id %q", adoption.UserID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := adoptionDoc{
		PetID:        pid,
		UserID:       uid,
		AdoptionDate: adoption.AdoptionDate.UTC(),
		Status:       string(adoption.Status),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert adoption: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AdoptionRepository) FindByID(ctx context.Context, id string) (*domain.Adoption, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc adoptionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find adoption: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AdoptionRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Adoption, error) {
	uid, ok := objectIDFromHex(userID)
	if !ok {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": uid})
	if err != nil {
		return nil, fmt.Errorf("list adoptions by user: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAdoptions(ctx, cursor)
}

func (r *AdoptionRepository) FindAll(ctx context.Context) ([]*domain.Adoption, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAdoptions(ctx, cursor)
}

func decodeAdoptions(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Adoption, error) {
	var adoptions []*domain.Adoption
	for cursor.Next(ctx) {
		var doc adoptionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode adoption: %w", err)
		}
		adoptions = append(adoptions, doc.toDomain())
	}
	return adoptions, cursor.Err()
}

func (r *AdoptionRepository) Update(ctx context.Context, id string, patch ports.AdoptionPatch) (*domain.Adoption, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}

	set := bson.M{}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.AdoptionDate != nil {
		set["adoption_date"] = patch.AdoptionDate.UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc adoptionDoc
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update adoption: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AdoptionRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return fmt.Errorf("delete adoption: malformed id %q", id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete adoption: %w", err)
	}
	return nil
}
