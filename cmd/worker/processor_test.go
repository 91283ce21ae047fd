package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsDynamo "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/aws"
	"github.com/depxinh/storefront-api/internal/orders"
)

type mockDynamo struct {
	items map[string]map[string]types.AttributeValue
}

func (m *mockDynamo) PutItem(ctx context.Context, in *awsDynamo.PutItemInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.PutItemOutput, error) {
	return &awsDynamo.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, in *awsDynamo.GetItemInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.GetItemOutput, error) {
	k := in.Key["order_id"].(*types.AttributeValueMemberS).Value
	item, ok := m.items[k]
	if !ok {
		return &awsDynamo.GetItemOutput{}, nil
	}
	return &awsDynamo.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, in *awsDynamo.UpdateItemInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.UpdateItemOutput, error) {
	return &awsDynamo.UpdateItemOutput{}, nil
}

func (m *mockDynamo) DeleteItem(ctx context.Context, in *awsDynamo.DeleteItemInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.DeleteItemOutput, error) {
	return &awsDynamo.DeleteItemOutput{}, nil
}

func (m *mockDynamo) Query(ctx context.Context, in *awsDynamo.QueryInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.QueryOutput, error) {
	return &awsDynamo.QueryOutput{}, nil
}

func (m *mockDynamo) Scan(ctx context.Context, in *awsDynamo.ScanInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.ScanOutput, error) {
	return &awsDynamo.ScanOutput{}, nil
}

func sqsEvent(t *testing.T, msg aws.OrderCreatedMessage) events.SQSEvent {
	t.Helper()
	body, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal message: %v", err)
	}
	return events.SQSEvent{Records: []events.SQSMessage{{Body: string(body)}}}
}

func TestProcessor_Success(t *testing.T) {
	order := orders.Order{
		ID:        "o1",
		Customer:  orders.Customer{Name: "Nguyễn An", Phone: "0912345678"},
		Pricing:   orders.Pricing{Total: 220000, Currency: "VND"},
		CreatedAt: time.Now().UTC(),
	}
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		t.Fatalf("marshal order: %v", err)
	}
	mock := &mockDynamo{items: map[string]map[string]types.AttributeValue{"o1": item}}

	p := NewProcessor(&aws.AWSClients{DynamoDB: mock}, "orders", nil, zap.NewNop())

	ev := sqsEvent(t, aws.OrderCreatedMessage{OrderID: "o1", CustomerName: "Nguyễn An", Total: 220000})
	if err := p.Handle(context.Background(), ev); err != nil {
		t.Fatalf("unexpected worker error: %v", err)
	}
}

func TestProcessor_OrderMissing(t *testing.T) {
	mock := &mockDynamo{items: map[string]map[string]types.AttributeValue{}}
	p := NewProcessor(&aws.AWSClients{DynamoDB: mock}, "orders", nil, zap.NewNop())

	ev := sqsEvent(t, aws.OrderCreatedMessage{OrderID: "ghost"})
	if err := p.Handle(context.Background(), ev); err == nil {
		t.Fatal("missing order should surface an error for retry")
	}
}

func TestProcessor_MalformedBody(t *testing.T) {
	mock := &mockDynamo{items: map[string]map[string]types.AttributeValue{}}
	p := NewProcessor(&aws.AWSClients{DynamoDB: mock}, "orders", nil, zap.NewNop())

	ev := events.SQSEvent{Records: []events.SQSMessage{{Body: "{not json"}}}
	if err := p.Handle(context.Background(), ev); err == nil {
		t.Fatal("malformed body should surface an error")
	}
}
