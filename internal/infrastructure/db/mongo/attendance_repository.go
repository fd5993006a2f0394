package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrms-lite/hrms-api/internal/core/domain"
	"github.com/hrms-lite/hrms-api/internal/core/ports"
)

const collectionAttendance = "attendance"

const idxEmployeeDate = "uniq_employee_date"

type AttendanceRepository struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{col: db.Collection(collectionAttendance)}
}

// Upsert atomically creates or updates the record for (employeeID, date) in a
// single conditional write, so concurrent marks for the same pair can neither
// duplicate the record nor lose an update. created is derived from the
// returned document: a fresh insert has created_at == updated_at.
func (r *AttendanceRepository) Upsert(ctx context.Context, employeeID primitive.ObjectID, date time.Time, status domain.AttendanceStatus) (*domain.Attendance, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"employee_id": employeeID, "date": date}
	update := bson.M{
		"$set": bson.M{"status": status, "updated_at": now},
		"$setOnInsert": bson.M{
			"employee_id": employeeID,
			"date":        date,
			"created_at":  now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var a domain.Attendance
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&a); err != nil {
		return nil, false, err
	}

	created := a.CreatedAt.Equal(a.UpdatedAt)
	return &a, created, nil
}

// ListRecords returns attendance rows joined with minimal employee fields via
// $lookup, ordered by date descending then creation time descending.
func (r *AttendanceRepository) ListRecords(ctx context.Context, filter ports.ListAttendanceFilter) ([]*domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{}
	if filter.EmployeeID != nil {
		match["employee_id"] = *filter.EmployeeID
	}
	if dateRange := rangeFilter(filter.From, filter.To); len(dateRange) > 0 {
		match["date"] = dateRange
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{
			{Key: "date", Value: -1},
			{Key: "created_at", Value: -1},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionEmployees,
			"localField":   "employee_id",
			"foreignField": "_id",
			"as":           "employee",
		}}},
		{{Key: "$unwind", Value: "$employee"}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]*domain.AttendanceRecord, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SummaryByEmployee groups the employee's records by status and folds the
// buckets into a summary.
func (r *AttendanceRepository) SummaryByEmployee(ctx context.Context, employeeID primitive.ObjectID) (*domain.AttendanceSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"employee_id": employeeID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var buckets []statusBucket
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}

	summary := &domain.AttendanceSummary{}
	for _, b := range buckets {
		switch domain.AttendanceStatus(b.Status) {
		case domain.StatusPresent:
			summary.PresentDays = b.Count
		case domain.StatusAbsent:
			summary.AbsentDays = b.Count
		}
		summary.TotalDays += b.Count
	}
	return summary, nil
}

// CountByStatus counts records with date in [from, to), split by status.
func (r *AttendanceRepository) CountByStatus(ctx context.Context, from, to time.Time) (int64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": rangeFilter(from, to)}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var buckets []statusBucket
	if err := cur.All(ctx, &buckets); err != nil {
		return 0, 0, err
	}

	var present, absent int64
	for _, b := range buckets {
		switch domain.AttendanceStatus(b.Status) {
		case domain.StatusPresent:
			present = b.Count
		case domain.StatusAbsent:
			absent = b.Count
		}
	}
	return present, absent, nil
}

// DeleteByEmployee removes every record referencing the employee.
func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the compound unique index enforcing one record per
// (employee, date) pair, plus a date index for range scans.
func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "employee_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(idxEmployeeDate),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

type statusBucket struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// rangeFilter builds a half-open [from, to) date filter; zero bounds are omitted.
func rangeFilter(from, to time.Time) bson.M {
	f := bson.M{}
	if !from.IsZero() {
		f["$gte"] = from
	}
	if !to.IsZero() {
		f["$lt"] = to
	}
	return f
}
