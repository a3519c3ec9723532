package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName = "caja_sesiones"

	// openMarkerID is the PK of the singleton item that points at the open
	// session. Its conditional put is what makes the single-open invariant
	// hold under racing opens.
	openMarkerID = "current"

	// maxTransactItems is the DynamoDB TransactWriteItems cap.
	maxTransactItems = 100
)

type sessionItem struct {
	ID                string `dynamodbav:"id"`
	OpenedBy          string `dynamodbav:"abierta_por"`
	OpenedAt          string `dynamodbav:"fecha_apertura"`
	InitialCashAmount string `dynamodbav:"monto_inicial_efectivo"`
	ClosedBy          string `dynamodbav:"cerrada_por,omitempty"`
	ClosedAt          string `dynamodbav:"fecha_cierre,omitempty"`
	FinalCashAmount   string `dynamodbav:"monto_final_efectivo,omitempty"`
	FinalQRAmount     string `dynamodbav:"monto_final_qr,omitempty"`
	DayCashSum        string `dynamodbav:"sm_dia,omitempty"`
	DiscountAmount    string `dynamodbav:"m_descuento,omitempty"`
	TotalSales        string `dynamodbav:"total_v,omitempty"`
	Observations      string `dynamodbav:"observaciones,omitempty"`
	Status            string `dynamodbav:"estado"`
}

type openMarkerItem struct {
	ID        string `dynamodbav:"id"`
	SessionID string `dynamodbav:"caja_id"`
}

// RegisterSessionDynamoRepository persists RegisterSession entities in DynamoDB.
//
// Table requirements:
//   - caja_sesiones PK: id (string); the "current" marker shares the table.
//
// The close transaction also writes the pedidos table (order reassignment),
// so this repository carries both table names.

type RegisterSessionDynamoRepository struct {
	ddb         DynamoDBAPI
	tableName   string
	ordersTable string
}

var _ interfaces.IRegisterSessionRepository = (*RegisterSessionDynamoRepository)(nil)

func NewRegisterSessionDynamoRepository(ddb DynamoDBAPI) *RegisterSessionDynamoRepository {
	return &RegisterSessionDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("CAJA_SESIONES_TABLE", defaultSessionsTableName),
		ordersTable: getenvDefault("PEDIDOS_TABLE", defaultOrdersTableName),
	}
}

// Open writes the session and claims the open marker in one transaction.
// A zero session with a nil error means some session is already open.
func (r *RegisterSessionDynamoRepository) Open(ctx context.Context, s entities.RegisterSession) (entities.RegisterSession, error) {
	sessionAV, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.RegisterSession{}, err
	}
	markerAV, err := attributevalue.MarshalMap(openMarkerItem{ID: openMarkerID, SessionID: s.ID})
	if err != nil {
		return entities.RegisterSession{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     markerAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     sessionAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		if isTransactConditionFailed(err) {
			return entities.RegisterSession{}, nil
		}
		return entities.RegisterSession{}, err
	}
	return s, nil
}

func (r *RegisterSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.RegisterSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RegisterSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.RegisterSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RegisterSession{}, err
	}
	return fromSessionItem(it), nil
}

// GetOpen resolves the marker and loads the session it points at.
func (r *RegisterSessionDynamoRepository) GetOpen(ctx context.Context) (entities.RegisterSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: openMarkerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RegisterSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.RegisterSession{}, nil
	}

	var marker openMarkerItem
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return entities.RegisterSession{}, err
	}
	if marker.SessionID == "" {
		return entities.RegisterSession{}, nil
	}
	return r.GetByID(ctx, marker.SessionID)
}

// CloseWithOrders flips the session to cerrada, releases the open marker and
// stripes every swept order with the session id, all inside TransactWriteItems.
// When a close carries more orders than one transaction can hold, order
// reassignment batches commit first and the final batch carries the session
// close, so the terminal transition itself is always atomic.
//
// A zero session with a nil error means the session was no longer open.
func (r *RegisterSessionDynamoRepository) CloseWithOrders(ctx context.Context, closed entities.RegisterSession, orderIDs []string) (entities.RegisterSession, error) {
	assignments := make([]types.TransactWriteItem, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		assignments = append(assignments, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.ordersTable),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: orderID}},
				UpdateExpression:    aws.String("SET #caja_id = :caja_id"),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#caja_id)"),
				ExpressionAttributeNames: map[string]string{
					"#id":      "id",
					"#caja_id": "caja_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":caja_id": &types.AttributeValueMemberS{Value: closed.ID},
				},
			},
		})
	}

	closing := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: closed.ID}},
				UpdateExpression: aws.String("SET #estado = :cerrada, #cerrada_por = :cerrada_por, #fecha_cierre = :fecha_cierre, " +
					"#monto_final_efectivo = :mfe, #monto_final_qr = :mfq, #sm_dia = :sm_dia, #m_descuento = :m_descuento, " +
					"#total_v = :total_v, #observaciones = :observaciones"),
				ConditionExpression: aws.String("#estado = :abierta"),
				ExpressionAttributeNames: map[string]string{
					"#estado":               "estado",
					"#cerrada_por":          "cerrada_por",
					"#fecha_cierre":         "fecha_cierre",
					"#monto_final_efectivo": "monto_final_efectivo",
					"#monto_final_qr":       "monto_final_qr",
					"#sm_dia":               "sm_dia",
					"#m_descuento":          "m_descuento",
					"#total_v":              "total_v",
					"#observaciones":        "observaciones",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":cerrada":       &types.AttributeValueMemberS{Value: string(entities.RegisterStatusCerrada)},
					":abierta":       &types.AttributeValueMemberS{Value: string(entities.RegisterStatusAbierta)},
					":cerrada_por":   &types.AttributeValueMemberS{Value: closed.ClosedBy},
					":fecha_cierre":  &types.AttributeValueMemberS{Value: formatTime(closed.ClosedAt)},
					":mfe":           &types.AttributeValueMemberS{Value: floatToString(closed.FinalCashAmount)},
					":mfq":           &types.AttributeValueMemberS{Value: floatToString(closed.FinalQRAmount)},
					":sm_dia":        &types.AttributeValueMemberS{Value: floatToString(closed.DayCashSum)},
					":m_descuento":   &types.AttributeValueMemberS{Value: floatToString(closed.DiscountAmount)},
					":total_v":       &types.AttributeValueMemberS{Value: floatToString(closed.TotalSales)},
					":observaciones": &types.AttributeValueMemberS{Value: closed.Observations},
				},
			},
		},
		{
			Delete: &types.Delete{
				TableName:           aws.String(r.tableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: openMarkerID}},
				ConditionExpression: aws.String("#caja_id = :caja_id"),
				ExpressionAttributeNames: map[string]string{
					"#caja_id": "caja_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":caja_id": &types.AttributeValueMemberS{Value: closed.ID},
				},
			},
		},
	}

	// Leading batches hold reassignments only; the last batch always ends
	// with the session update and the marker release.
	for len(assignments) > maxTransactItems-len(closing) {
		batch := assignments[:maxTransactItems]
		assignments = assignments[maxTransactItems:]
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: batch}); err != nil {
			if isTransactConditionFailed(err) {
				return entities.RegisterSession{}, nil
			}
			return entities.RegisterSession{}, err
		}
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: append(assignments, closing...),
	})
	if err != nil {
		if isTransactConditionFailed(err) {
			return entities.RegisterSession{}, nil
		}
		return entities.RegisterSession{}, err
	}
	return closed, nil
}

// ListClosed scans closed sessions, newest close first. History volumes for a
// single-register shop stay small, so the scan + in-memory page is fine.
func (r *RegisterSessionDynamoRepository) ListClosed(ctx context.Context, limit, offset int, date string) ([]entities.RegisterSession, int, error) {
	filter := "#estado = :cerrada"
	names := map[string]string{"#estado": "estado"}
	values := map[string]types.AttributeValue{
		":cerrada": &types.AttributeValueMemberS{Value: string(entities.RegisterStatusCerrada)},
	}
	if date != "" {
		filter += " AND begins_with(#fecha_cierre, :fecha)"
		names["#fecha_cierre"] = "fecha_cierre"
		values[":fecha"] = &types.AttributeValueMemberS{Value: date}
	}

	var sessions []entities.RegisterSession
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
			return nil, 0, err
		}
		for _, raw := range out.Items {
			var it sessionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, 0, err
			}
			sessions = append(sessions, fromSessionItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ClosedAt.After(sessions[j].ClosedAt)
	})

	total := len(sessions)
	if offset >= total {
		return []entities.RegisterSession{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return sessions[offset:end], total, nil
}

func toSessionItem(s entities.RegisterSession) sessionItem {
	it := sessionItem{
		ID:                s.ID,
		OpenedBy:          s.OpenedBy,
		OpenedAt:          formatTime(s.OpenedAt),
		InitialCashAmount: floatToString(s.InitialCashAmount),
		ClosedBy:          s.ClosedBy,
		ClosedAt:          formatTime(s.ClosedAt),
		Observations:      s.Observations,
		Status:            string(s.Status),
	}
	if s.Status == entities.RegisterStatusCerrada {
		it.FinalCashAmount = floatToString(s.FinalCashAmount)
		it.FinalQRAmount = floatToString(s.FinalQRAmount)
		it.DayCashSum = floatToString(s.DayCashSum)
		it.DiscountAmount = floatToString(s.DiscountAmount)
		it.TotalSales = floatToString(s.TotalSales)
	}
	return it
}

func fromSessionItem(it sessionItem) entities.RegisterSession {
	s := entities.RegisterSession{
		ID:                it.ID,
		OpenedBy:          it.OpenedBy,
		OpenedAt:          parseTime(it.OpenedAt),
		InitialCashAmount: parseFloat(it.InitialCashAmount),
		ClosedBy:          it.ClosedBy,
		ClosedAt:          parseTime(it.ClosedAt),
		Observations:      it.Observations,
		Status:            entities.RegisterStatus(strings.TrimSpace(it.Status)),
	}
	if it.FinalCashAmount != "" {
		s.FinalCashAmount = parseFloat(it.FinalCashAmount)
	}
	if it.FinalQRAmount != "" {
		s.FinalQRAmount = parseFloat(it.FinalQRAmount)
	}
	if it.DayCashSum != "" {
		s.DayCashSum = parseFloat(it.DayCashSum)
	}
	if it.DiscountAmount != "" {
		s.DiscountAmount = parseFloat(it.DiscountAmount)
	}
	if it.TotalSales != "" {
		s.TotalSales = parseFloat(it.TotalSales)
	}
	return s
}
