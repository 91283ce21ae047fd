package scans

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/depxinh/storefront-api/internal/aws"
)

// Record is the shape persisted in the scans table.
type Record struct {
	ID        string    `dynamodbav:"scan_id" json:"id"` // PK
	Raw       string    `dynamodbav:"raw" json:"raw"`
	Name      string    `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Phone     string    `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	Email     string    `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Note      string    `dynamodbav:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"createdAt"`
}

// Store encapsulates operations on the scans table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{client: client, tableName: tableName, nowFunc: time.Now}
}

// Create parses the raw payload and persists the scan, returning its id.
func (s *Store) Create(ctx context.Context, raw string) (string, error) {
	fields := ParseRaw(raw)
	rec := Record{
		ID:        uuid.NewString(),
		Raw:       raw,
		Name:      fields.Name,
		Phone:     fields.Phone,
		Email:     fields.Email,
		Note:      fields.Note,
		CreatedAt: s.nowFunc().UTC(),
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return "", fmt.Errorf("marshal scan: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{TableName: &s.tableName, Item: item}); err != nil {
		return "", fmt.Errorf("put scan: %w", err)
	}
	return rec.ID, nil
}
