package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/employee-directory/internal/apperrors"
	"github.com/YusovID/employee-directory/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var employeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetName("uniq_employeeId").SetUnique(true),
	},
}

type employeeDocument struct {
	EmployeeID    string                `bson:"employeeId"`
	FirstName     string                `bson:"firstName"`
	LastName      string                `bson:"lastName"`
	Position      string                `bson:"position"`
	Department    string                `bson:"department"`
	DirectReports []string              `bson:"directReports"`
	Compensation  *compensationDocument `bson:"compensation,omitempty"`
}

type compensationDocument struct {
	Salary        int64      `bson:"salary"`
	EffectiveDate *time.Time `bson:"effectiveDate,omitempty"`
}

func toDocument(e *domain.Employee) employeeDocument {
	reports := e.DirectReports
	if reports == nil {
		reports = []string{}
	}

	doc := employeeDocument{
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Position:      e.Position,
		Department:    e.Department,
		DirectReports: reports,
	}

	if e.Compensation != nil {
		c := toCompensationDocument(*e.Compensation)
		doc.Compensation = &c
	}

	return doc
}

func toCompensationDocument(c domain.Compensation) compensationDocument {
	doc := compensationDocument{Salary: c.Salary}
	if !c.EffectiveDate.IsZero() {
		t := c.EffectiveDate.Time
		doc.EffectiveDate = &t
	}

	return doc
}

func (d compensationDocument) toDomain() domain.Compensation {
	c := domain.Compensation{Salary: d.Salary}
	if d.EffectiveDate != nil {
		c.EffectiveDate = domain.DateOf(d.EffectiveDate.UTC())
	}

	return c
}

func (d employeeDocument) toDomain() domain.Employee {
	e := domain.Employee{
		EmployeeID:    d.EmployeeID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Position:      d.Position,
		Department:    d.Department,
		DirectReports: d.DirectReports,
	}

	if e.DirectReports == nil {
		e.DirectReports = []string{}
	}

	if d.Compensation != nil {
		c := d.Compensation.toDomain()
		e.Compensation = &c
	}

	return e
}

type EmployeeRepository struct {
	coll *mongo.Collection
	log  *slog.Logger
}

func NewEmployeeRepository(db *mongo.Database, collection string, log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		coll: db.Collection(collection),
		log:  log,
	}
}

// EnsureIndexes creates the unique employeeId index. It is idempotent.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	const op = "internal.repository.mongo.EnsureIndexes"

	names, err := r.coll.Indexes().CreateMany(ctx, employeeIndexes)
	if err != nil {
		return apperrors.StoreFailure(op, err)
	}

	r.log.Debug("employee indexes ensured", slog.String("op", op), slog.Any("indexes", names))

	return nil
}

func byID(id string) bson.D {
	return bson.D{{Key: "employeeId", Value: id}}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const op = "internal.repository.mongo.GetByID"

	var doc employeeDocument
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperrors.InvalidEmployeeIDError{ID: id}
		}

		return nil, apperrors.StoreFailure(op, err)
	}

	e := doc.toDomain()

	return &e, nil
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Employee, error) {
	const op = "internal.repository.mongo.GetByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	filter := bson.D{{Key: "employeeId", Value: bson.D{{Key: "$in", Value: ids}}}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.StoreFailure(op, err)
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.StoreFailure(op, err)
	}

	employees := make([]domain.Employee, len(docs))
	for i, doc := range docs {
		employees[i] = doc.toDomain()
	}

	return employees, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const op = "internal.repository.mongo.Create"

	doc := toDocument(e)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperrors.EmployeeAlreadyExistsError{ID: e.EmployeeID}
		}

		return nil, apperrors.StoreFailure(op, err)
	}

	r.log.Debug("employee inserted", slog.String("op", op), slog.String("employee_id", e.EmployeeID))

	out := doc.toDomain()

	return &out, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const op = "internal.repository.mongo.Update"

	doc := toDocument(e)

	res, err := r.coll.ReplaceOne(ctx, byID(e.EmployeeID), doc)
	if err != nil {
		return nil, apperrors.StoreFailure(op, err)
	}

	if res.MatchedCount == 0 {
		return nil, &apperrors.InvalidEmployeeIDError{ID: e.EmployeeID}
	}

	out := doc.toDomain()

	return &out, nil
}

func (r *EmployeeRepository) Upsert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	const op = "internal.repository.mongo.Upsert"

	doc := toDocument(e)

	if _, err := r.coll.ReplaceOne(ctx, byID(e.EmployeeID), doc, options.Replace().SetUpsert(true)); err != nil {
		return nil, apperrors.StoreFailure(op, err)
	}

	out := doc.toDomain()

	return &out, nil
}

func (r *EmployeeRepository) UpdateCompensation(ctx context.Context, id string, c domain.Compensation) (*domain.Compensation, error) {
	const op = "internal.repository.mongo.UpdateCompensation"

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "compensation", Value: toCompensationDocument(c)}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc employeeDocument
	if err := r.coll.FindOneAndUpdate(ctx, byID(id), update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperrors.InvalidEmployeeIDError{ID: id}
		}

		return nil, apperrors.StoreFailure(op, err)
	}

	if doc.Compensation == nil {
		return nil, apperrors.StoreFailure(op, fmt.Errorf("compensation missing after update of '%s'", id))
	}

	stored := doc.Compensation.toDomain()

	return &stored, nil
}

func (r *EmployeeRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.StoreFailure("internal.repository.mongo.Ping", err)
	}

	return nil
}
