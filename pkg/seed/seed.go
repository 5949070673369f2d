// Package seed loads the demo dataset into empty stores.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v4"

	"github.com/artem13815/talent/pkg/candidate"
	"github.com/artem13815/talent/pkg/clock"
	"github.com/artem13815/talent/pkg/interview"
	"github.com/artem13815/talent/pkg/job"
	"github.com/artem13815/talent/pkg/offer"
	"github.com/artem13815/talent/pkg/onboarding"
	"github.com/artem13815/talent/pkg/repository"
)

//go:embed demo.yaml
var demo []byte

// Dataset is the decoded demo data, in display order.
type Dataset struct {
	Jobs       []job.Job             `json:"jobs"`
	Candidates []candidate.Candidate `json:"candidates"`
	Interviews []interview.Interview `json:"interviews"`
	Offers     []offer.Offer         `json:"offers"`
	NewHires   []onboarding.NewHire  `json:"newHires"`
}

// Inserter is the write half of a collection.
type Inserter[T any] interface {
	Insert(ctx context.Context, id string, v T) error
}

// Stores receives the dataset.
type Stores struct {
	Jobs       Inserter[job.Job]
	Candidates Inserter[candidate.Candidate]
	Interviews Inserter[interview.Interview]
	Offers     Inserter[offer.Offer]
	NewHires   Inserter[onboarding.NewHire]
}

// Demo returns the embedded dataset.
func Demo(now time.Time) (Dataset, error) { return Parse(demo, now) }

// Load reads a dataset from a YAML file.
func Load(path string, now time.Time) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data, now)
}

// Parse decodes YAML through JSON so the entities' json tags apply. Missing
// timestamps are set to now and new hire progress is recomputed from tasks.
// Overdue pending offers are moved forward to now.
func Parse(data []byte, now time.Time) (Dataset, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Dataset{}, fmt.Errorf("parse seed yaml: %w", err)
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("encode seed: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode seed: %w", err)
	}

	for i := range ds.Jobs {
		ds.Jobs[i].UpdatedAt = orNow(ds.Jobs[i].UpdatedAt, now)
	}
	for i := range ds.Candidates {
		c := &ds.Candidates[i]
		c.CreatedAt = orNow(c.CreatedAt, now)
		c.UpdatedAt = orNow(c.UpdatedAt, now)
	}
	for i := range ds.Interviews {
		iv := &ds.Interviews[i]
		iv.CreatedAt = orNow(iv.CreatedAt, now)
		iv.UpdatedAt = orNow(iv.UpdatedAt, now)
	}
	for i := range ds.Offers {
		o := &ds.Offers[i]
		if o.Status == offer.StatusPending {
			if err := rebasePending(o, now); err != nil {
				return Dataset{}, fmt.Errorf("offer %s: %w", o.ID, err)
			}
		}
		o.UpdatedAt = orNow(o.UpdatedAt, now)
	}
	for i := range ds.NewHires {
		h := &ds.NewHires[i]
		h.Recalculate()
		h.UpdatedAt = orNow(h.UpdatedAt, now)
	}
	return ds, nil
}

// rebasePending moves an overdue pending offer forward so it was created
// today, keeping its validity window and the gap to the start date. Without
// this the expiry sweep closes every seeded pending offer on boot.
func rebasePending(o *offer.Offer, now time.Time) error {
	today := clock.Date(now)
	if o.ExpiryDate == "" || o.ExpiryDate >= today {
		return nil
	}
	created, err := clock.ParseDate(o.CreatedDate)
	if err != nil {
		return err
	}
	ref, err := clock.ParseDate(today)
	if err != nil {
		return err
	}
	days := int(ref.Sub(created).Hours() / 24)
	for _, d := range []*string{&o.CreatedDate, &o.ExpiryDate, &o.StartDate} {
		if *d == "" {
			continue
		}
		t, err := clock.ParseDate(*d)
		if err != nil {
			return err
		}
		*d = clock.Date(t.AddDate(0, 0, days))
	}
	return nil
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

// Apply inserts the dataset. Records are inserted last to first so the file
// order is the list order of newest-first collections. Records that already
// exist are left untouched, which makes Apply safe to run on every start.
func Apply(ctx context.Context, st Stores, ds Dataset, log zerolog.Logger) error {
	steps := []struct {
		name string
		run  func() (int, error)
	}{
		{"jobs", func() (int, error) { return insert(ctx, st.Jobs, ds.Jobs, func(j job.Job) string { return j.ID }) }},
		{"candidates", func() (int, error) {
			return insert(ctx, st.Candidates, ds.Candidates, func(c candidate.Candidate) string { return c.ID })
		}},
		{"interviews", func() (int, error) {
			return insert(ctx, st.Interviews, ds.Interviews, func(iv interview.Interview) string { return iv.ID })
		}},
		{"offers", func() (int, error) { return insert(ctx, st.Offers, ds.Offers, func(o offer.Offer) string { return o.ID }) }},
		{"new hires", func() (int, error) {
			return insert(ctx, st.NewHires, ds.NewHires, func(h onboarding.NewHire) string { return h.ID })
		}},
	}
	for _, s := range steps {
		n, err := s.run()
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
		log.Info().Str("collection", s.name).Int("inserted", n).Msg("demo data loaded")
	}
	return nil
}

func insert[T any](ctx context.Context, dst Inserter[T], items []T, id func(T) string) (int, error) {
	n := 0
	for i := len(items) - 1; i >= 0; i-- {
		err := dst.Insert(ctx, id(items[i]), items[i])
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
