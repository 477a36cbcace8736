package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openrelief/relief-api/schema"
)

var (
	ErrProfileNotFound = fmt.Errorf("the profile does not exist")
	ErrProfileTaken    = fmt.Errorf("the account or email has been taken")
)

// ProfileStore - profile and identity operations
type ProfileStore interface {
	CreateProfile(profile schema.Profile) error
	GetProfile(accountNumber string) (*schema.Profile, error)
	GetProfileByEmail(email string) (*schema.Profile, error)
	UpdateProfileLocation(accountNumber string, loc schema.Location) error
	NearbyVolunteerAccounts(radiusKM float64, loc schema.Location) ([]string, error)
}

func (m *mongoDB) profiles() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.ProfileCollection)
}

func (m *mongoDB) CreateProfile(profile schema.Profile) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := m.profiles().InsertOne(ctx, profile); err != nil {
		if isDuplicateKeyError(err) {
			return ErrProfileTaken
		}
		return err
	}

	return nil
}

func (m *mongoDB) GetProfile(accountNumber string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var profile schema.Profile
	err := m.profiles().FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (m *mongoDB) GetProfileByEmail(email string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var profile schema.Profile
	err := m.profiles().FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (m *mongoDB) UpdateProfileLocation(accountNumber string, loc schema.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.profiles().UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": bson.M{
			"location":   schema.NewGeoJSONPoint(loc),
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// NearbyVolunteerAccounts returns account numbers of volunteers whose last
// known location is within radiusKM of a point.
func (m *mongoDB) NearbyVolunteerAccounts(radiusKM float64, loc schema.Location) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.profiles().Find(ctx, bson.M{
		"role": schema.RoleVolunteer,
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{loc.Longitude, loc.Latitude},
				},
				"$maxDistance": radiusKM * 1000,
			},
		},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := []string{}
	for cursor.Next(ctx) {
		var profile schema.Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, err
		}
		accounts = append(accounts, profile.AccountNumber)
	}

	return accounts, cursor.Err()
}

func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
