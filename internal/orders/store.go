package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/depxinh/storefront-api/internal/aws"
)

const (
	gsiCreated   = "gsi_created"
	gsiPKValue   = "ORDER"
	maxLimit     = 100
	defaultLimit = 50
)

// ErrNotFound is returned when an operation targets an order id that does not exist.
var ErrNotFound = errors.New("order not found")

// Store encapsulates operations on the orders table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new orders Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// sortKey builds the created_sort attribute: zero-padded epoch millis plus the
// order id, so lexicographic order equals (createdAt, id) order.
func sortKey(ms int64, id string) string {
	return fmt.Sprintf("%013d#%s", ms, id)
}

// Create persists a new order with a server-assigned id and timestamps and
// returns the id. The caller is expected to have validated and repriced the
// order already; Create does not touch pricing.
func (s *Store) Create(ctx context.Context, order Order) (string, error) {
	now := s.nowFunc().UTC()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.CreatedMs = now.UnixMilli()
	order.GSIPK = gsiPKValue
	order.CreatedSort = sortKey(order.CreatedMs, order.ID)

	if order.Fulfillment.Method == "" {
		order.Fulfillment.Method = DefaultFulfillmentMethod
	}
	if order.Fulfillment.Status == "" {
		order.Fulfillment.Status = StatusPending
	}
	if order.Payment.Method == "" {
		order.Payment.Method = DefaultPaymentMethod
	}
	if order.Payment.Status == "" {
		order.Payment.Status = DefaultPaymentStatus
	}

	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(order_id)"),
	})
	if err != nil {
		return "", fmt.Errorf("put order: %w", err)
	}
	return order.ID, nil
}

// Get fetches an order by order_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// ListQuery narrows and pages the order listing.
type ListQuery struct {
	Status          string // exact match on fulfillment.status; "" or "all" matches everything
	IncludeArchived bool
	Start           int64 // createdAt lower bound, epoch millis; 0 = unbounded
	End             int64 // createdAt upper bound, epoch millis; 0 = unbounded
	Limit           int
	Cursor          *Cursor
}

// List returns one page of orders, newest first (creation time descending,
// id descending within equal timestamps), plus the cursor for the next page
// or nil on the last page.
func (s *Store) List(ctx context.Context, q ListQuery) ([]Order, *Cursor, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	keyCond := "gsi_pk = :pk"
	exprVals := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: gsiPKValue},
	}
	exprNames := map[string]string{}

	switch {
	case q.Start > 0 && q.End > 0:
		keyCond += " AND created_sort BETWEEN :lo AND :hi"
		exprVals[":lo"] = &types.AttributeValueMemberS{Value: sortKey(q.Start, "")}
		exprVals[":hi"] = &types.AttributeValueMemberS{Value: sortKey(q.End, "~")}
	case q.Start > 0:
		keyCond += " AND created_sort >= :lo"
		exprVals[":lo"] = &types.AttributeValueMemberS{Value: sortKey(q.Start, "")}
	case q.End > 0:
		keyCond += " AND created_sort <= :hi"
		exprVals[":hi"] = &types.AttributeValueMemberS{Value: sortKey(q.End, "~")}
	}

	var filters []string
	if q.Status != "" && q.Status != "all" {
		exprNames["#f"] = "fulfillment"
		exprNames["#st"] = "status"
		exprVals[":status"] = &types.AttributeValueMemberS{Value: q.Status}
		filters = append(filters, "#f.#st = :status")
	}
	if !q.IncludeArchived {
		exprVals[":arch"] = &types.AttributeValueMemberBOOL{Value: false}
		filters = append(filters, "archived = :arch")
	}

	var startKey map[string]types.AttributeValue
	if q.Cursor != nil {
		startKey = map[string]types.AttributeValue{
			"gsi_pk":       &types.AttributeValueMemberS{Value: gsiPKValue},
			"created_sort": &types.AttributeValueMemberS{Value: sortKey(q.Cursor.Ms, q.Cursor.ID)},
			"order_id":     &types.AttributeValueMemberS{Value: q.Cursor.ID},
		}
	}

	collected := make([]Order, 0, limit)
	lastKey := startKey
	for {
		input := &dyn.QueryInput{
			TableName:                 &s.tableName,
			IndexName:                 awsString(gsiCreated),
			KeyConditionExpression:    &keyCond,
			ExpressionAttributeValues: exprVals,
			ScanIndexForward:          awsBool(false),
			Limit:                     awsInt32(int32(limit + 1)),
			ExclusiveStartKey:         lastKey,
		}
		if len(exprNames) > 0 {
			input.ExpressionAttributeNames = exprNames
		}
		if len(filters) > 0 {
			input.FilterExpression = awsString(strings.Join(filters, " AND "))
		}

		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, nil, fmt.Errorf("query orders: %w", err)
		}
		for _, raw := range out.Items {
			var o Order
			if err := attributevalue.UnmarshalMap(raw, &o); err != nil {
				return nil, nil, fmt.Errorf("unmarshal order: %w", err)
			}
			collected = append(collected, o)
		}
		lastKey = out.LastEvaluatedKey
		if len(collected) > limit || lastKey == nil {
			break
		}
	}

	// The loop above only stops early after collecting past the limit, so a
	// cursor is handed out iff a row beyond this page already passed the
	// filters. A backend page of entirely filtered-out rows keeps the loop
	// walking instead of ending the chain with an empty next page.
	more := len(collected) > limit || lastKey != nil
	if len(collected) > limit {
		collected = collected[:limit]
	}

	var next *Cursor
	if more && len(collected) > 0 {
		last := collected[len(collected)-1]
		next = &Cursor{Ms: last.CreatedMs, ID: last.ID}
	}
	return collected, next, nil
}

// ScanAll fetches every order without touching the index. Used only by the
// statistics fallback path when the indexed query is unavailable.
func (s *Store) ScanAll(ctx context.Context) ([]Order, error) {
	var all []Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan orders: %w", err)
		}
		for _, raw := range out.Items {
			var o Order
			if err := attributevalue.UnmarshalMap(raw, &o); err != nil {
				return nil, fmt.Errorf("unmarshal order: %w", err)
			}
			all = append(all, o)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return all, nil
}

// UpdateStatus sets fulfillment.status and appends a history entry recording
// the transition. Any status may follow any other; legality is not enforced.
func (s *Store) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	cur, err := s.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if cur == nil {
		return ErrNotFound
	}

	now := s.nowFunc().UTC()
	entryList, err := attributevalue.MarshalList([]HistoryEntry{{
		At:   now,
		From: cur.Fulfillment.Status,
		To:   newStatus,
	}})
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}
	ua, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("marshal timestamp: %w", err)
	}

	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression: awsString("SET #f.#st = :new, updated_at = :ua, #m.#h = list_append(if_not_exists(#m.#h, :empty), :entry)"),
		ExpressionAttributeNames: map[string]string{
			"#f":  "fulfillment",
			"#st": "status",
			"#m":  "meta",
			"#h":  "history",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":   &types.AttributeValueMemberS{Value: newStatus},
			":ua":    ua,
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry": &types.AttributeValueMemberL{Value: entryList},
		},
		ConditionExpression: awsString("attribute_exists(order_id)"),
	}

	if _, err := s.client.UpdateItem(ctx, input); err != nil {
		var cc *types.ConditionalCheckFailedException
		if errors.As(err, &cc) {
			return ErrNotFound
		}
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// SetArchived flips the archived flag. Archived orders drop out of default listings.
func (s *Store) SetArchived(ctx context.Context, orderID string, archived bool) error {
	now := s.nowFunc().UTC()
	ua, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("marshal timestamp: %w", err)
	}

	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression: awsString("SET archived = :a, updated_at = :ua"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":a":  &types.AttributeValueMemberBOOL{Value: archived},
			":ua": ua,
		},
		ConditionExpression: awsString("attribute_exists(order_id)"),
	}

	if _, err := s.client.UpdateItem(ctx, input); err != nil {
		var cc *types.ConditionalCheckFailedException
		if errors.As(err, &cc) {
			return ErrNotFound
		}
		return fmt.Errorf("set archived: %w", err)
	}
	return nil
}

func awsString(s string) *string { return &s }
func awsBool(b bool) *bool       { return &b }
func awsInt32(n int32) *int32    { return &n }
