package db

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/model"
	"github.com/jsphweid/harmonykit/util"
	"github.com/pkg/errors"
)

// DynamoDB caps BatchWriteItem at 25 requests.
const batchSize = 25

const maxRetries = 5

// item is one indexed harmony. PK is the chord key, SK tells apart the
// harmonies sharing it.
type item struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Root      uint8  `dynamodbav:"Root"`
	Kind      uint8  `dynamodbav:"Kind"`
	Inversion uint8  `dynamodbav:"Inversion"`
}

type Client struct {
	api   dynamodbiface.DynamoDBAPI
	table string
}

func New(endpoint, region, table string) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewWithAPI(dynamodb.New(sess), table), nil
}

func NewWithAPI(api dynamodbiface.DynamoDBAPI, table string) *Client {
	return &Client{api: api, table: table}
}

func toItem(c model.Chord) (map[string]*dynamodb.AttributeValue, error) {
	return dynamodbattribute.MarshalMap(item{
		PK:        chord.KeyFromPitchClasses(c.Notes),
		SK:        fmt.Sprintf("%d#%d#%d", c.Root, c.Kind, c.Inversion),
		Root:      c.Root,
		Kind:      c.Kind,
		Inversion: c.Inversion,
	})
}

func fromItem(av map[string]*dynamodb.AttributeValue) (model.Chord, error) {
	var it item
	if err := dynamodbattribute.UnmarshalMap(av, &it); err != nil {
		return model.Chord{}, errors.Wrap(err, "could not unmarshal item")
	}
	notes, err := chord.ParseChordKey(it.PK)
	if err != nil {
		return model.Chord{}, err
	}
	return model.Chord{Notes: notes, Root: it.Root, Kind: it.Kind, Inversion: it.Inversion}, nil
}

// EnsureTable creates the table when it does not exist yet.
func (c *Client) EnsureTable() error {
	_, err := c.api.DescribeTable(&dynamodb.DescribeTableInput{TableName: aws.String(c.table)})
	if err == nil {
		return nil
	}
	if aerr, ok := err.(awserr.Error); !ok || aerr.Code() != dynamodb.ErrCodeResourceNotFoundException {
		return errors.Wrap(err, "could not describe table")
	}

	fmt.Printf("Creating table %v\n", c.table)
	_, err = c.api.CreateTable(&dynamodb.CreateTableInput{
		TableName:   aws.String(c.table),
		BillingMode: aws.String(dynamodb.BillingModePayPerRequest),
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
			{AttributeName: aws.String("SK"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
		},
		KeySchema: []*dynamodb.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: aws.String(dynamodb.KeyTypeHash)},
			{AttributeName: aws.String("SK"), KeyType: aws.String(dynamodb.KeyTypeRange)},
		},
	})
	return errors.Wrap(err, "could not create table")
}

func (c *Client) writeBatch(requests []*dynamodb.WriteRequest) error {
	pending := map[string][]*dynamodb.WriteRequest{c.table: requests}
	for attempt := 0; len(pending[c.table]) > 0; attempt++ {
		if attempt == maxRetries {
			return errors.Errorf("%d items still unprocessed after %d attempts", len(pending[c.table]), maxRetries)
		}
		out, err := c.api.BatchWriteItem(&dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return errors.Wrap(err, "error from DynamoDB")
		}
		pending = out.UnprocessedItems
		if len(pending[c.table]) > 0 {
			util.Tracef("retrying %d unprocessed items", len(pending[c.table]))
		}
	}
	return nil
}

func (c *Client) PutChords(chords []model.Chord) error {
	var batch []*dynamodb.WriteRequest
	for i, ch := range chords {
		av, err := toItem(ch)
		if err != nil {
			return errors.Wrap(err, "could not marshal chord")
		}
		batch = append(batch, &dynamodb.WriteRequest{PutRequest: &dynamodb.PutRequest{Item: av}})
		if len(batch) == batchSize || i == len(chords)-1 {
			if err := c.writeBatch(batch); err != nil {
				return err
			}
			batch = nil
		}
		if (i+1)%500 == 0 {
			fmt.Printf("Mirrored %v of %v chords\n", i+1, len(chords))
		}
	}
	return nil
}

// Lookup returns every harmony stored under key.
func (c *Client) Lookup(key string) ([]model.Chord, error) {
	var res []model.Chord
	input := &dynamodb.QueryInput{
		TableName:              aws.String(c.table),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(key)},
		},
	}
	for {
		out, err := c.api.Query(input)
		if err != nil {
			return nil, errors.Wrap(err, "error from DynamoDB")
		}
		for _, av := range out.Items {
			ch, err := fromItem(av)
			if err != nil {
				return nil, err
			}
			res = append(res, ch)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return res, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
