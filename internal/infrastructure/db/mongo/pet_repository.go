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

const collectionPets = "pets"

// listCap bounds unpaginated FindAll queries.
const listCap = 100

// PetRepository implements ports.PetRepository on a MongoDB collection.
// Absent and malformed ids both surface as (nil, nil); duplicate-key faults
// on the unique name index surface as RESOURCE_EXISTS.
type PetRepository struct {
	col *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{col: db.Collection(collectionPets)}
}

type petDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	BirthDate   time.Time          `bson:"birth_date"`
	Breed       string             `bson:"breed"`
	Gender      string             `bson:"gender"`
	Size        string             `bson:"size"`
	Description string             `bson:"description"`
	IsAdopted   bool               `bson:"is_adopted"`
}

func (d *petDoc) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		BirthDate:   d.BirthDate,
		Breed:       d.Breed,
		Gender:      domain.PetGender(d.Gender),
		Size:        domain.PetSize(d.Size),
		Description: d.Description,
		IsAdopted:   d.IsAdopted,
	}
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := petDoc{
		Name:        pet.Name,
		BirthDate:   pet.BirthDate.UTC(),
		Breed:       pet.Breed,
		Gender:      string(pet.Gender),
		Size:        string(pet.Size),
		Description: pet.Description,
		IsAdopted:   pet.IsAdopted,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ResourceExists("Pet", map[string]string{"name": pet.Name})
		}
		return nil, fmt.Errorf("insert pet: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc petDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) FindByName(ctx context.Context, name string) (*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc petDoc
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pet by name: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) FindAll(ctx context.Context) ([]*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer cursor.Close(ctx)

	var pets []*domain.Pet
	for cursor.Next(ctx) {
		var doc petDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pet: %w", err)
		}
		pets = append(pets, doc.toDomain())
	}
	return pets, cursor.Err()
}

func (r *PetRepository) Update(ctx context.Context, id string, patch ports.PetPatch) (*domain.Pet, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.BirthDate != nil {
		set["birth_date"] = patch.BirthDate.UTC()
	}
	if patch.Breed != nil {
		set["breed"] = *patch.Breed
	}
	if patch.Gender != nil {
		set["gender"] = string(*patch.Gender)
	}
	if patch.Size != nil {
		set["size"] = string(*patch.Size)
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc petDoc
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
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ResourceExists("Pet")
		}
		return nil, fmt.Errorf("update pet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PetRepository) SetAdopted(ctx context.Context, id string, adopted bool) error {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return fmt.Errorf("set adopted: malformed pet id %q", id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"is_adopted": adopted}})
	if err != nil {
		return fmt.Errorf("set adopted: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set adopted: pet %s not found", id)
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id string) (*domain.Pet, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc petDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete pet: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique index on the pet name. This is the
// storage-level backstop for the application-level uniqueness pre-check.
func (r *PetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
