package repository

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

const defaultSnapshotsTableName = "pos_snapshots"

// Storage slot names. Each slot holds the full JSON snapshot of one store.
const (
	SlotMenuItems    = "menuItems"
	SlotCustomers    = "customers"
	SlotBusinessInfo = "businessInfo"
)

type snapshotItem struct {
	Slot      string `dynamodbav:"slot"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SnapshotDynamoRepository persists store snapshots in DynamoDB.
//
// Table requirements:
//   - PK: slot (string)
//
// Every save overwrites the slot's previous snapshot unconditionally: there
// are no deltas and no versioning, which is safe because the POS has exactly
// one logical writer. A slot whose payload cannot be decoded is reported as
// absent (with a warning) so the owning store falls back to its seed data
// instead of failing startup.
type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotStore = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *SnapshotDynamoRepository) LoadMenuItems(ctx context.Context) ([]entities.MenuItem, bool, error) {
	var items []entities.MenuItem
	found, err := r.load(ctx, SlotMenuItems, &items)
	if !found || err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (r *SnapshotDynamoRepository) SaveMenuItems(ctx context.Context, items []entities.MenuItem) error {
	return r.save(ctx, SlotMenuItems, items)
}

func (r *SnapshotDynamoRepository) LoadCustomers(ctx context.Context) ([]entities.Customer, bool, error) {
	var customers []entities.Customer
	found, err := r.load(ctx, SlotCustomers, &customers)
	if !found || err != nil {
		return nil, false, err
	}
	return customers, true, nil
}

func (r *SnapshotDynamoRepository) SaveCustomers(ctx context.Context, customers []entities.Customer) error {
	return r.save(ctx, SlotCustomers, customers)
}

func (r *SnapshotDynamoRepository) LoadBusinessInfo(ctx context.Context) (entities.BusinessInfo, bool, error) {
	var info entities.BusinessInfo
	found, err := r.load(ctx, SlotBusinessInfo, &info)
	if !found || err != nil {
		return entities.BusinessInfo{}, false, err
	}
	return info, true, nil
}

func (r *SnapshotDynamoRepository) SaveBusinessInfo(ctx context.Context, info entities.BusinessInfo) error {
	return r.save(ctx, SlotBusinessInfo, info)
}

func (r *SnapshotDynamoRepository) load(ctx context.Context, slot string, dst any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: slot},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		logrus.WithError(err).WithField("slot", slot).Warn("snapshot: unreadable item, using defaults")
		return false, nil
	}
	if err := json.Unmarshal([]byte(it.Payload), dst); err != nil {
		logrus.WithError(err).WithField("slot", slot).Warn("snapshot: corrupt payload, using defaults")
		return false, nil
	}
	return true, nil
}

func (r *SnapshotDynamoRepository) save(ctx context.Context, slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(snapshotItem{
		Slot:      slot,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
