package dal

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	"github.com/doitintl/product-catalog/productcatalog/domain"
)

const (
	attrID   = "id"
	attrName = "name"
)

// ProductsDynamoDB keeps products in a DynamoDB table keyed by the string "id".
type ProductsDynamoDB struct {
	client    dynamodbiface.DynamoDBAPI
	tableName string
}

// NewProductsDynamoDB opens a session against region using the default credential chain.
func NewProductsDynamoDB(region, tableName string) (*ProductsDynamoDB, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return NewProductsDynamoDBWithClient(dynamodb.New(sess), tableName), nil
}

func NewProductsDynamoDBWithClient(client dynamodbiface.DynamoDBAPI, tableName string) *ProductsDynamoDB {
	return &ProductsDynamoDB{
		client:    client,
		tableName: tableName,
	}
}

func (d *ProductsDynamoDB) ListProducts(ctx context.Context) ([]domain.Product, error) {
	input := &dynamodb.ScanInput{
		TableName:       aws.String(d.tableName),
		AttributesToGet: aws.StringSlice([]string{attrID, attrName}),
	}

	var products []domain.Product

	for {
		out, err := d.client.ScanWithContext(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", d.tableName, err)
		}

		var page []domain.Product
		if err := dynamodbattribute.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}

		products = append(products, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}

		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return products, nil
}

func (d *ProductsDynamoDB) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			attrID: {S: aws.String(id)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item %s from %s: %w", id, d.tableName, err)
	}

	if len(out.Item) == 0 {
		return nil, domain.ErrProductNotFound
	}

	var product domain.Product
	if err := dynamodbattribute.UnmarshalMap(out.Item, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (d *ProductsDynamoDB) PutProduct(ctx context.Context, product domain.Product) error {
	item, err := dynamodbattribute.MarshalMap(product)
	if err != nil {
		return err
	}

	if _, err := d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put item %s into %s: %w", product.ID, d.tableName, err)
	}

	return nil
}
