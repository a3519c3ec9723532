package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// pagedDynamoDB serves canned Query pages and records the start key of each
// call, so tests can assert the pagination loop follows LastEvaluatedKey.
type pagedDynamoDB struct {
	queryPages []*dynamodb.QueryOutput
	queryCalls int
	startKeys  []map[string]types.AttributeValue

	getItemOut *dynamodb.GetItemOutput
}

func (f *pagedDynamoDB) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.startKeys = append(f.startKeys, params.ExclusiveStartKey)
	if f.queryCalls >= len(f.queryPages) {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.queryPages[f.queryCalls]
	f.queryCalls++
	return page, nil
}

func (f *pagedDynamoDB) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getItemOut != nil {
		return f.getItemOut, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *pagedDynamoDB) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func (f *pagedDynamoDB) UpdateItem(_ context.Context, _ *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *pagedDynamoDB) DeleteItem(_ context.Context, _ *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *pagedDynamoDB) BatchWriteItem(_ context.Context, _ *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func (f *pagedDynamoDB) TransactWriteItems(_ context.Context, _ *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestOrderDynamoRepository_ListBySessionFollowsPages(t *testing.T) {
	later := orderItem{ID: "ped-2", Status: "pagado", CreatedAt: "2026-08-30T12:30:00Z", RegisterSessionID: "caja-1", TotalAmount: "10"}
	earlier := orderItem{ID: "ped-1", Status: "pagado", CreatedAt: "2026-08-30T12:00:00Z", RegisterSessionID: "caja-1", TotalAmount: "20"}
	pageKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "ped-2"}}

	fake := &pagedDynamoDB{
		queryPages: []*dynamodb.QueryOutput{
			{Items: []map[string]types.AttributeValue{mustMarshal(t, later)}, LastEvaluatedKey: pageKey},
			{Items: []map[string]types.AttributeValue{mustMarshal(t, earlier)}},
		},
	}
	repo := NewOrderDynamoRepository(fake)

	orders, err := repo.ListBySession(context.Background(), "caja-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected both pages collected, got %d orders", len(orders))
	}
	if orders[0].ID != "ped-1" || orders[1].ID != "ped-2" {
		t.Fatalf("expected creation order ped-1, ped-2, got %s, %s", orders[0].ID, orders[1].ID)
	}
	if len(fake.startKeys) != 2 || fake.startKeys[0] != nil {
		t.Fatalf("expected two query calls, first without start key, got %d", len(fake.startKeys))
	}
	if _, ok := fake.startKeys[1]["id"]; !ok {
		t.Fatalf("expected second call to resume from LastEvaluatedKey, got %v", fake.startKeys[1])
	}
}

func TestOrderDynamoRepository_GetByIDCollectsAllLineItemPages(t *testing.T) {
	order := orderItem{ID: "ped-1", Status: "en_curso", CreatedAt: "2026-08-30T12:00:00Z", TotalAmount: "30"}
	lineA := orderLineItemRow{ID: "det-1", OrderID: "ped-1", Category: "helado", Quantity: 1, Subtotal: "10"}
	lineB := orderLineItemRow{ID: "det-2", OrderID: "ped-1", Category: "promo", Quantity: 2, Subtotal: "20"}
	pageKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "det-1"}}

	fake := &pagedDynamoDB{
		getItemOut: &dynamodb.GetItemOutput{Item: mustMarshal(t, order)},
		queryPages: []*dynamodb.QueryOutput{
			{Items: []map[string]types.AttributeValue{mustMarshal(t, lineA)}, LastEvaluatedKey: pageKey},
			{Items: []map[string]types.AttributeValue{mustMarshal(t, lineB)}},
		},
	}
	repo := NewOrderDynamoRepository(fake)

	got, err := repo.GetByID(context.Background(), "ped-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected line items from both pages, got %d", len(got.Items))
	}
	if got.Items[0].ID != "det-1" || got.Items[1].ID != "det-2" {
		t.Fatalf("unexpected line items %s, %s", got.Items[0].ID, got.Items[1].ID)
	}
	if got.CreatedAt.IsZero() || !got.CreatedAt.Equal(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected created at %v", got.CreatedAt)
	}
}
