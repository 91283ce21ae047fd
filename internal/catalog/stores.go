package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/depxinh/storefront-api/internal/aws"
)

// The catalog collections are small (tens to low hundreds of records), so
// listings go through plain Scans; only orders need an index.

// ProductStore encapsulates operations on the products table.
type ProductStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewProductStore(client aws.DynamoDBAPI, tableName string) *ProductStore {
	return &ProductStore{client: client, tableName: tableName, nowFunc: time.Now}
}

// Save upserts a product, assigning an id and createdAt on first write.
func (s *ProductStore) Save(ctx context.Context, p Product) (string, error) {
	now := s.nowFunc().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	if p.Status == "" {
		p.Status = ProductStatusActive
	}
	p.UpdatedAt = now

	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return "", fmt.Errorf("marshal product: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{TableName: &s.tableName, Item: item}); err != nil {
		return "", fmt.Errorf("put product: %w", err)
	}
	return p.ID, nil
}

// Get fetches a product by id. Returns (nil, nil) if not found.
func (s *ProductStore) Get(ctx context.Context, id string) (*Product, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       map[string]types.AttributeValue{"product_id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// List returns every product.
func (s *ProductStore) List(ctx context.Context) ([]Product, error) {
	var all []Product
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{TableName: &s.tableName, ExclusiveStartKey: startKey})
		if err != nil {
			return nil, fmt.Errorf("scan products: %w", err)
		}
		for _, raw := range out.Items {
			var p Product
			if err := attributevalue.UnmarshalMap(raw, &p); err != nil {
				return nil, fmt.Errorf("unmarshal product: %w", err)
			}
			all = append(all, p)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return all, nil
}

// Delete removes a product.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key:       map[string]types.AttributeValue{"product_id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// FeedbackStore encapsulates operations on the feedbacks table.
type FeedbackStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewFeedbackStore(client aws.DynamoDBAPI, tableName string) *FeedbackStore {
	return &FeedbackStore{client: client, tableName: tableName, nowFunc: time.Now}
}

func (s *FeedbackStore) Save(ctx context.Context, f Feedback) (string, error) {
	now := s.nowFunc().UTC()
	if f.ID == "" {
		f.ID = uuid.NewString()
		f.CreatedAt = now
	}
	f.UpdatedAt = now

	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return "", fmt.Errorf("marshal feedback: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{TableName: &s.tableName, Item: item}); err != nil {
		return "", fmt.Errorf("put feedback: %w", err)
	}
	return f.ID, nil
}

// Get fetches a feedback entry by id. Returns (nil, nil) if not found.
func (s *FeedbackStore) Get(ctx context.Context, id string) (*Feedback, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       map[string]types.AttributeValue{"feedback_id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var f Feedback
	if err := attributevalue.UnmarshalMap(out.Item, &f); err != nil {
		return nil, fmt.Errorf("unmarshal feedback: %w", err)
	}
	return &f, nil
}

func (s *FeedbackStore) List(ctx context.Context) ([]Feedback, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{TableName: &s.tableName})
	if err != nil {
		return nil, fmt.Errorf("scan feedbacks: %w", err)
	}
	var all []Feedback
	for _, raw := range out.Items {
		var f Feedback
		if err := attributevalue.UnmarshalMap(raw, &f); err != nil {
			return nil, fmt.Errorf("unmarshal feedback: %w", err)
		}
		all = append(all, f)
	}
	return all, nil
}

func (s *FeedbackStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key:       map[string]types.AttributeValue{"feedback_id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

// ImageStore encapsulates operations on the images table.
type ImageStore struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewImageStore(client aws.DynamoDBAPI, tableName string) *ImageStore {
	return &ImageStore{client: client, tableName: tableName, nowFunc: time.Now}
}

func (s *ImageStore) Save(ctx context.Context, img Image) (string, error) {
	now := s.nowFunc().UTC()
	if img.ID == "" {
		img.ID = uuid.NewString()
		img.CreatedAt = now
	}
	img.UpdatedAt = now

	item, err := attributevalue.MarshalMap(img)
	if err != nil {
		return "", fmt.Errorf("marshal image: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{TableName: &s.tableName, Item: item}); err != nil {
		return "", fmt.Errorf("put image: %w", err)
	}
	return img.ID, nil
}

// Get fetches an image by id. Returns (nil, nil) if not found.
func (s *ImageStore) Get(ctx context.Context, id string) (*Image, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       map[string]types.AttributeValue{"image_id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var img Image
	if err := attributevalue.UnmarshalMap(out.Item, &img); err != nil {
		return nil, fmt.Errorf("unmarshal image: %w", err)
	}
	return &img, nil
}

func (s *ImageStore) List(ctx context.Context) ([]Image, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{TableName: &s.tableName})
	if err != nil {
		return nil, fmt.Errorf("scan images: %w", err)
	}
	var all []Image
	for _, raw := range out.Items {
		var img Image
		if err := attributevalue.UnmarshalMap(raw, &img); err != nil {
			return nil, fmt.Errorf("unmarshal image: %w", err)
		}
		all = append(all, img)
	}
	return all, nil
}

func (s *ImageStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key:       map[string]types.AttributeValue{"image_id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
