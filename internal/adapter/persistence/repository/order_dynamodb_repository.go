package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName     = "pedidos"
	defaultOrderItemsTableName = "detalle_pedido"
	orderItemsOrderIDIndex     = "pedido_id-index"
	ordersSessionIDIndex       = "caja_id-index"

	batchWriteMax = 25
)

type orderItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"usuario_id"`
	Kind              string `dynamodbav:"tipo"`
	TableNumber       int    `dynamodbav:"mesa_numero,omitempty"`
	Status            string `dynamodbav:"estado"`
	PaymentMethod     string `dynamodbav:"metodo_pago,omitempty"`
	TotalAmount       string `dynamodbav:"monto_total"`
	Note              string `dynamodbav:"nota,omitempty"`
	CreatedAt         string `dynamodbav:"creado_en"`
	DeliveredAt       string `dynamodbav:"entregado_en,omitempty"`
	PaidAt            string `dynamodbav:"pagado_en,omitempty"`
	RegisterSessionID string `dynamodbav:"caja_id,omitempty"`
}

type orderLineItemRow struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"pedido_id"`
	Category    string `dynamodbav:"categoria"`
	ProductID   string `dynamodbav:"producto_id"`
	Quantity    int    `dynamodbav:"cantidad"`
	UnitPrice   string `dynamodbav:"precio_unitario"`
	Subtotal    string `dynamodbav:"subtotal"`
	Note        string `dynamodbav:"nota,omitempty"`
	PromoDetail string `dynamodbav:"detalle,omitempty"`
}

// OrderDynamoRepository persists Order and OrderLineItem entities in DynamoDB.
//
// Table requirements:
//   - pedidos PK: id (string); GSI: caja_id-index (PK: caja_id)
//   - detalle_pedido PK: id (string); GSI: pedido_id-index (PK: pedido_id)
//
// Promotion components live as a JSON string inside the line-item row
// (`detalle`); the entity-level tagged union exists only above this boundary.

type OrderDynamoRepository struct {
	ddb        DynamoDBAPI
	tableName  string
	itemsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("PEDIDOS_TABLE", defaultOrdersTableName),
		itemsTable: getenvDefault("DETALLE_PEDIDO_TABLE", defaultOrderItemsTableName),
	}
}

// CreateWithItems writes the order and all its line items in one transaction.
// An order's line count stays far below the transact cap, so no chunking.
func (r *OrderDynamoRepository) CreateWithItems(ctx context.Context, o entities.Order) (entities.Order, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	writes := make([]types.TransactWriteItem, 0, len(o.Items)+1)
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     orderAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	})
	for _, line := range o.Items {
		row, err := toOrderLineItemRow(line)
		if err != nil {
			return entities.Order{}, err
		}
		av, err := attributevalue.MarshalMap(row)
		if err != nil {
			return entities.Order{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      av,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	order := fromOrderItem(it)
	order.Items, err = r.listItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// ListUnassignedPaid returns paid orders not yet swept into any session,
// newest first, line items included.
func (r *OrderDynamoRepository) ListUnassignedPaid(ctx context.Context) ([]entities.Order, error) {
	orders, err := r.scanOrders(ctx,
		"#estado = :pagado AND attribute_not_exists(#caja_id)",
		map[string]string{"#estado": "estado", "#caja_id": "caja_id"},
		map[string]types.AttributeValue{
			":pagado": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPagado)},
		},
	)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	for i := range orders {
		orders[i].Items, err = r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	orders, err := r.scanOrders(ctx,
		"#estado = :estado",
		map[string]string{"#estado": "estado"},
		map[string]types.AttributeValue{
			":estado": &types.AttributeValueMemberS{Value: string(status)},
		},
	)
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orderStatusTime(orders[i], status).Before(orderStatusTime(orders[j], status))
	})

	for i := range orders {
		orders[i].Items, err = r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListBySession(ctx context.Context, sessionID string) ([]entities.Order, error) {
	var orders []entities.Order
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersSessionIDIndex),
			KeyConditionExpression: aws.String("caja_id = :caja_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":caja_id": &types.AttributeValueMemberS{Value: sessionID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

func (r *OrderDynamoRepository) MarkDelivered(ctx context.Context, id string) (entities.Order, error) {
	return r.update(ctx, id,
		"SET #estado = :next, #entregado_en = :ts",
		"#estado = :prev",
		map[string]string{"#estado": "estado", "#entregado_en": "entregado_en"},
		map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberS{Value: string(entities.OrderStatusEntregado)},
			":prev": &types.AttributeValueMemberS{Value: string(entities.OrderStatusEnCurso)},
			":ts":   &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
		},
	)
}

func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, id string, method entities.PaymentMethod) (entities.Order, error) {
	return r.update(ctx, id,
		"SET #estado = :next, #metodo_pago = :metodo, #pagado_en = :ts",
		"#estado = :prev",
		map[string]string{"#estado": "estado", "#metodo_pago": "metodo_pago", "#pagado_en": "pagado_en"},
		map[string]types.AttributeValue{
			":next":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusPagado)},
			":prev":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusEntregado)},
			":metodo": &types.AttributeValueMemberS{Value: string(method)},
			":ts":     &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
		},
	)
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id, updateExpr, condExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condExpr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// Delete removes an unsettled order and cascades its line items. It reports
// false without error when the order is gone or already carries a caja_id.
func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#caja_id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#caja_id": "caja_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}

	lines, err := r.listItems(ctx, id)
	if err != nil {
		return false, err
	}
	for start := 0; start < len(lines); start += batchWriteMax {
		end := start + batchWriteMax
		if end > len(lines) {
			end = len(lines)
		}
		requests := make([]types.WriteRequest, 0, end-start)
		for _, line := range lines[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: line.ID},
					},
				},
			})
		}
		_, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.itemsTable: requests},
		})
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *OrderDynamoRepository) listItems(ctx context.Context, orderID string) ([]entities.OrderLineItem, error) {
	var lines []entities.OrderLineItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.itemsTable),
			IndexName:              aws.String(orderItemsOrderIDIndex),
			KeyConditionExpression: aws.String("pedido_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: orderID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var row orderLineItemRow
			if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
				return nil, err
			}
			line, err := fromOrderLineItemRow(row)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return lines, nil
}

func (r *OrderDynamoRepository) scanOrders(
	ctx context.Context,
	filter string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Order, error) {
	var orders []entities.Order
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func orderStatusTime(o entities.Order, status entities.OrderStatus) time.Time {
	switch status {
	case entities.OrderStatusEntregado:
		return o.DeliveredAt
	case entities.OrderStatusPagado:
		return o.PaidAt
	default:
		return o.CreatedAt
	}
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                o.ID,
		UserID:            o.UserID,
		Kind:              string(o.Kind),
		TableNumber:       o.TableNumber,
		Status:            string(o.Status),
		PaymentMethod:     string(o.PaymentMethod),
		TotalAmount:       floatToString(o.TotalAmount),
		Note:              o.Note,
		CreatedAt:         formatTime(o.CreatedAt),
		DeliveredAt:       formatTime(o.DeliveredAt),
		PaidAt:            formatTime(o.PaidAt),
		RegisterSessionID: o.RegisterSessionID,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                it.ID,
		UserID:            it.UserID,
		Kind:              entities.OrderKind(it.Kind),
		TableNumber:       it.TableNumber,
		Status:            entities.OrderStatus(it.Status),
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		TotalAmount:       parseFloat(it.TotalAmount),
		Note:              it.Note,
		CreatedAt:         parseTime(it.CreatedAt),
		DeliveredAt:       parseTime(it.DeliveredAt),
		PaidAt:            parseTime(it.PaidAt),
		RegisterSessionID: it.RegisterSessionID,
	}
}

func toOrderLineItemRow(line entities.OrderLineItem) (orderLineItemRow, error) {
	row := orderLineItemRow{
		ID:        line.ID,
		OrderID:   line.OrderID,
		Category:  line.Category,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		UnitPrice: floatToString(line.UnitPrice),
		Subtotal:  floatToString(line.Subtotal),
		Note:      line.Note,
	}
	if len(line.PromoDetail) > 0 {
		b, err := json.Marshal(line.PromoDetail)
		if err != nil {
			return orderLineItemRow{}, err
		}
		row.PromoDetail = string(b)
	}
	return row, nil
}

func fromOrderLineItemRow(row orderLineItemRow) (entities.OrderLineItem, error) {
	line := entities.OrderLineItem{
		ID:        row.ID,
		OrderID:   row.OrderID,
		Category:  row.Category,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		UnitPrice: parseFloat(row.UnitPrice),
		Subtotal:  parseFloat(row.Subtotal),
		Note:      row.Note,
	}
	if row.PromoDetail != "" {
		if err := json.Unmarshal([]byte(row.PromoDetail), &line.PromoDetail); err != nil {
			return entities.OrderLineItem{}, err
		}
	}
	return line, nil
}
