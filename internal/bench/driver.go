package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/Rana718/edubench/internal/config"
	"github.com/Rana718/edubench/internal/datagen"
	"github.com/Rana718/edubench/internal/dataset"
	"github.com/Rana718/edubench/internal/models"
	"github.com/Rana718/edubench/internal/store"
	"github.com/fatih/color"
)

// Phase names as they appear in the timing log.
const (
	PhaseDropSchema   = "Drop Tables"
	PhaseCreateSchema = "Create Tables"
	PhaseInsertAll    = "Insert All Data"
	PhaseRetrieveAll  = "Retrieve All Data"
	PhaseUpdateAll    = "Update All Data"
	PhaseDeleteAll    = "Delete All Data"
)

// Driver sequences the benchmark phases strictly in order, each gated
// on the previous one completing. Any phase failure aborts the run and
// leaves earlier timings intact.
type Driver struct {
	store  store.Store
	gen    *datagen.Generator
	cfg    *config.Config
	runner *Runner
}

func NewDriver(st store.Store, gen *datagen.Generator, cfg *config.Config, runner *Runner) *Driver {
	return &Driver{store: st, gen: gen, cfg: cfg, runner: runner}
}

// Run executes the full phase sequence at the given scale multiplier.
// Scaling is resolved to a derived config before any store mutation;
// an invalid multiplier fails the run up front.
func (d *Driver) Run(ctx context.Context, scale int) error {
	cfg, err := d.cfg.Scaled(scale)
	if err != nil {
		return err
	}

	builder := dataset.New(d.store, d.gen, cfg.Dataset)

	if _, err := d.runner.Measure(PhaseDropSchema, func() error {
		return d.store.DropSchema(ctx)
	}); err != nil {
		return err
	}

	if _, err := d.runner.Measure(PhaseCreateSchema, func() error {
		return d.store.CreateSchema(ctx)
	}); err != nil {
		return err
	}

	if _, err := d.runner.Measure(PhaseInsertAll, func() error {
		return d.insertAll(ctx, builder, cfg.Dataset)
	}); err != nil {
		return err
	}

	if _, err := d.runner.Measure(PhaseRetrieveAll, func() error {
		return d.retrieveAll(ctx, builder)
	}); err != nil {
		return err
	}

	if _, err := d.runner.Measure(PhaseUpdateAll, func() error {
		return d.updateAll(ctx)
	}); err != nil {
		return err
	}

	if _, err := d.runner.Measure(PhaseDeleteAll, func() error {
		return d.deleteAll(ctx)
	}); err != nil {
		return err
	}

	return nil
}

// insertAll sub-sequences the inserts because each later step needs the
// ids the earlier ones produced: users before courses (instructor
// references), users and courses before enrollments. The two retrieval
// calls in between fetch the join-key material back from the store and
// are excluded from the insert-only total printed at the end.
func (d *Driver) insertAll(ctx context.Context, builder *dataset.Builder, ds config.Dataset) error {
	var inserting time.Duration

	start := time.Now()
	if _, err := builder.BuildUsers(ctx, ds.Users); err != nil {
		return err
	}
	inserting += time.Since(start)

	userRows, err := builder.RetrieveAll(ctx, models.TableUsers)
	if err != nil {
		return err
	}
	users := make([]models.User, 0, len(userRows))
	for _, row := range userRows {
		users = append(users, models.UserFromRecord(row))
	}

	start = time.Now()
	if _, err := builder.BuildCoursesWithContent(ctx, ds.Courses, users); err != nil {
		return err
	}
	inserting += time.Since(start)

	courseRows, err := builder.RetrieveAll(ctx, models.TableCourses)
	if err != nil {
		return err
	}
	courses := make([]models.Course, 0, len(courseRows))
	for _, row := range courseRows {
		courses = append(courses, models.CourseFromRecord(row))
	}

	start = time.Now()
	if _, err := builder.BuildEnrollments(ctx, users, courses); err != nil {
		return err
	}
	inserting += time.Since(start)

	color.Cyan("Inserting all data took %.2f seconds (excluding retrievals)", inserting.Seconds())
	return nil
}

func (d *Driver) retrieveAll(ctx context.Context, builder *dataset.Builder) error {
	for _, table := range models.Tables() {
		if _, err := builder.RetrieveAll(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

// updateAll performs a full scan per table followed by one put per row:
// a deliberate O(row count) round-trip workload with no batching.
func (d *Driver) updateAll(ctx context.Context) error {
	for _, table := range models.Tables() {
		field := models.UpdateField(table)

		rows, err := d.store.Query(ctx, table)
		if err != nil {
			return err
		}
		for _, rec := range rows {
			value, _ := rec[field].(string)
			rec[field] = value + "_updated"
			if err := d.store.Put(ctx, table, rec); err != nil {
				return fmt.Errorf("failed to update row in %s: %w", table, err)
			}
		}
	}
	return nil
}

func (d *Driver) deleteAll(ctx context.Context) error {
	for _, table := range models.Tables() {
		rows, err := d.store.Query(ctx, table)
		if err != nil {
			return err
		}
		for _, rec := range rows {
			id, _ := rec["id"].(string)
			if err := d.store.Delete(ctx, table, id); err != nil {
				return fmt.Errorf("failed to delete row from %s: %w", table, err)
			}
		}
	}
	return nil
}
