package seed

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	logrus "github.com/sirupsen/logrus"

	"fleetops_driver_service/internal/apperrors"
	"fleetops_driver_service/internal/models"
)

// bundled holds the sample records shipped with the binary.
//
//go:embed data/*.json
var bundled embed.FS

// Bundled returns the sample data directory.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Store is the slice of a repository seeding needs.
type Store[T any] interface {
	Count(ctx context.Context) (int64, error)
	InsertAll(ctx context.Context, rows []T) error
}

// Collection is one table the seeder fills from one JSON file.
type Collection interface {
	Name() string
	// Seed returns the number of rows inserted; 0 with a nil error means the
	// table already had data or the file was an empty list.
	Seed(ctx context.Context, files fs.FS) (int, error)
}

type collection[T any] struct {
	name     string
	file     string
	store    Store[T]
	validate *validator.Validate
}

// NewCollection seeds store from file, validating each record with v.
func NewCollection[T any](name, file string, store Store[T], v *validator.Validate) Collection {
	return &collection[T]{name: name, file: file, store: store, validate: v}
}

func (c *collection[T]) Name() string { return c.name }

func (c *collection[T]) Seed(ctx context.Context, files fs.FS) (int, error) {
	n, err := c.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	if n > 0 {
		return 0, nil
	}

	raw, err := fs.ReadFile(files, c.file)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", c.file, err)
	}
	rows, err := c.decode(raw)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := c.store.InsertAll(ctx, rows); err != nil {
		return 0, fmt.Errorf("insert %s: %w", c.name, err)
	}
	return len(rows), nil
}

// decode parses a JSON array of records, rejecting unknown fields and any
// record that is missing a required field.
func (c *collection[T]) decode(raw []byte) ([]T, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var rows []T
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrMalformedInput, c.file, err)
	}
	for i := range rows {
		if err := c.validate.Struct(rows[i]); err != nil {
			return nil, fmt.Errorf("%w: %s record %d: %v", apperrors.ErrMalformedInput, c.file, i, err)
		}
	}
	return rows, nil
}

// Seeder fills empty tables with sample data at startup.
type Seeder struct {
	files       fs.FS
	collections []Collection
	log         logrus.FieldLogger
}

func NewSeeder(files fs.FS, log logrus.FieldLogger, collections ...Collection) *Seeder {
	return &Seeder{files: files, collections: collections, log: log}
}

// Run seeds every collection in order. Failures are logged and never stop
// the remaining collections. The result maps collection name to rows inserted.
func (s *Seeder) Run(ctx context.Context) map[string]int {
	report := make(map[string]int, len(s.collections))
	for _, c := range s.collections {
		log := s.log.WithField("collection", c.Name())

		n, err := c.Seed(ctx, s.files)
		report[c.Name()] = n
		switch {
		case err != nil:
			log.WithError(err).Error("failed to seed")
		case n > 0:
			log.WithField("count", n).Info("seeded sample data")
		default:
			log.Info("table already populated or no sample data, skipping seed")
		}
	}
	return report
}

const (
	DriversFile   = "sample_driver_records.json"
	FormsFile     = "sample_form_records.json"
	SchedulesFile = "sample_schedule_records.json"
)

// Collections returns the service's seedable tables in seeding order.
func Collections(
	drivers Store[models.Driver],
	forms Store[models.Form],
	schedules Store[models.Schedule],
	v *validator.Validate,
) []Collection {
	return []Collection{
		NewCollection("drivers", DriversFile, drivers, v),
		NewCollection("forms", FormsFile, forms, v),
		NewCollection("schedules", SchedulesFile, schedules, v),
	}
}
