package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workpulse/attendance-system/internal/core/domain"
	"github.com/workpulse/attendance-system/internal/core/ports"
)

const collectionAttendance = "attendance"

type AttendanceRepository struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{col: db.Collection(collectionAttendance)}
}

type recordDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Employee     domain.EmployeeRef `bson:"employee"`
	Date         time.Time          `bson:"date"`
	CheckInTime  time.Time          `bson:"check_in_time"`
	CheckOutTime *time.Time         `bson:"check_out_time"`
	TotalHours   float64            `bson:"total_hours"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *recordDoc) toDomain() *domain.AttendanceRecord {
	return &domain.AttendanceRecord{
		ID:           d.ID.Hex(),
		Employee:     d.Employee,
		Date:         d.Date,
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
		TotalHours:   d.TotalHours,
		Status:       domain.Status(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// sortByDateDesc orders listings most recent first; _id breaks equal-date
// ties in creation order, keeping pagination deterministic.
var sortByDateDesc = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}

// Insert persists a new record. The unique (employee.user_id, date) index
// rejects a second record for the same day; the duplicate-key error maps to
// the domain conflict so a lost check-in race surfaces as Conflict.
func (r *AttendanceRepository) Insert(ctx context.Context, rec *domain.AttendanceRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := recordDoc{
		Employee:     rec.Employee,
		Date:         rec.Date,
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
		TotalHours:   rec.TotalHours,
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("insert attendance: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	return nil
}

// Update replaces the mutable fields of an existing record.
func (r *AttendanceRepository) Update(ctx context.Context, rec *domain.AttendanceRecord) error {
	oid, err := primitive.ObjectIDFromHex(rec.ID)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"check_out_time": rec.CheckOutTime,
		"total_hours":    rec.TotalHours,
		"status":         string(rec.Status),
		"updated_at":     rec.UpdatedAt,
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *AttendanceRepository) FindByUserAndDay(ctx context.Context, userID string, day time.Time) (*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"employee.user_id": userID,
		"date":             dayRange(day),
	}

	var doc recordDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, filter ports.HistoryFilter) ([]*domain.AttendanceRecord, int64, error) {
	query := bson.M{"employee.user_id": filter.UserID}
	addDateRange(query, filter.DateFrom, filter.DateTo)
	return r.list(ctx, query, filter.Page, filter.Limit)
}

func (r *AttendanceRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.AttendanceRecord, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Department != "" {
		query["employee.department"] = filter.Department
	}
	addDateRange(query, filter.DateFrom, filter.DateTo)
	return r.list(ctx, query, filter.Page, filter.Limit)
}

func (r *AttendanceRepository) ListRange(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	query := bson.M{}
	addDateRange(query, from, to)
	records, _, err := r.list(ctx, query, 0, 0)
	return records, err
}

func (r *AttendanceRepository) ListDay(ctx context.Context, day time.Time) ([]*domain.AttendanceRecord, error) {
	records, _, err := r.list(ctx, bson.M{"date": dayRange(day)}, 0, 0)
	return records, err
}

func (r *AttendanceRepository) CountDay(ctx context.Context, day time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"date": dayRange(day)})
	if err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return n, nil
}

func (r *AttendanceRepository) list(ctx context.Context, query bson.M, page, limit int) ([]*domain.AttendanceRecord, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count attendance: %w", err)
	}

	opts := options.Find().SetSort(sortByDateDesc)
	if limit > 0 {
		skip := (page - 1) * limit
		if skip < 0 {
			skip = 0
		}
		opts = opts.SetSkip(int64(skip)).SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendance: %w", err)
	}
	defer cur.Close(ctx)

	records := make([]*domain.AttendanceRecord, 0)
	for cur.Next(ctx) {
		var doc recordDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode attendance: %w", err)
		}
		records = append(records, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list attendance: %w", err)
	}
	return records, total, nil
}

// EnsureIndexes creates the attendance indexes. The unique compound index
// on (employee.user_id, date) is what enforces the one-record-per-day
// invariant under concurrent check-ins.
func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee.user_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "employee.department", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// dayRange is the [midnight, midnight+24h) filter for a single day.
func dayRange(day time.Time) bson.M {
	start, end := domain.DayWindow(day)
	return bson.M{"$gte": start, "$lt": end}
}

func addDateRange(query bson.M, from, to time.Time) {
	if from.IsZero() && to.IsZero() {
		return
	}
	dateRange := bson.M{}
	if !from.IsZero() {
		dateRange["$gte"] = from
	}
	if !to.IsZero() {
		dateRange["$lte"] = to
	}
	query["date"] = dateRange
}
