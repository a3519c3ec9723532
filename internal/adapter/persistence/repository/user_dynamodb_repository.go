package repository

import (
	"context"

	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "usuarios"
	usersUsernameIndex    = "usuario-index"
)

type userItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"nombre"`
	Username string `dynamodbav:"usuario"`
	PIN      string `dynamodbav:"pin"`
	Role     string `dynamodbav:"rol"`
}

// UserDynamoRepository reads staff accounts from the usuarios table.
// Lookups by username go through the usuario-index GSI.
type UserDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoDBAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USUARIOS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	// Key-condition-only query with no filter: the first page always carries
	// the matching row if one exists, so Limit 1 needs no pagination.
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersUsernameIndex),
		KeyConditionExpression: aws.String("usuario = :usuario"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":usuario": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:       it.ID,
		Name:     it.Name,
		Username: it.Username,
		PIN:      it.PIN,
		Role:     it.Role,
	}
}
