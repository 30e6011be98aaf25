package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/miraarastudios/miraara-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	contactsCollection    = "contacts"
	subscribersCollection = "subscribers"
	ordersCollection      = "orders"
)

type mongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (m *mongoStore) SaveContact(ctx context.Context, sub *domain.ContactSubmission) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err := m.db.Collection(contactsCollection).InsertOne(ctx, sub)
	if err != nil {
		return fmt.Errorf("%w: failed to save contact: %v", ErrStore, err)
	}

	return nil
}

func (m *mongoStore) SaveSubscriber(ctx context.Context, s *domain.Subscriber) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	_, err := m.db.Collection(subscribersCollection).InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("%w: failed to save subscriber: %v", ErrStore, err)
	}

	return nil
}

func (m *mongoStore) SubscriberExists(ctx context.Context, email string) (bool, error) {
	filter := bson.M{"email": email}

	err := m.db.Collection(subscribersCollection).FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("%w: failed to check subscriber: %v", ErrStore, err)
	}

	return true, nil
}

func (m *mongoStore) SaveOrder(ctx context.Context, order *domain.Order) error {
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	filter := bson.M{"order_id": order.OrderID}
	update := bson.M{"$set": order}
	opts := options.Update().SetUpsert(true)

	_, err := m.db.Collection(ordersCollection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("%w: failed to save order: %v", ErrStore, err)
	}

	return nil
}

func (m *mongoStore) MarkOrderPaid(ctx context.Context, orderID, paymentID string) error {
	filter := bson.M{"order_id": orderID}
	update := bson.M{
		"$set": bson.M{
			"paid":       true,
			"payment_id": paymentID,
			"updated_at": time.Now(),
		},
	}

	result, err := m.db.Collection(ordersCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: failed to mark order paid: %v", ErrStore, err)
	}

	if result.MatchedCount == 0 {
		return ErrOrderRecordNotFound
	}

	return nil
}

func (m *mongoStore) CreateIndexes(ctx context.Context) error {
	subscriberIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	orderIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := m.db.Collection(subscribersCollection).Indexes().CreateMany(ctx, subscriberIndexes); err != nil {
		return fmt.Errorf("failed to create subscriber indexes: %w", err)
	}
	if _, err := m.db.Collection(ordersCollection).Indexes().CreateMany(ctx, orderIndexes); err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}

	return nil
}
