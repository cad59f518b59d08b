package store

import (
	"time"

	"go.uber.org/zap"

	"tourcab/idgen"
)

// Deps bundles what every entity store is built from.
type Deps struct {
	Backend Backend
	IDs     idgen.Strings
	Seq     idgen.Sequence
	Now     func() time.Time
	Logger  *zap.SugaredLogger
}

// WithDefaults fills unset fields: memory backend, UUID ids, monotonic
// numeric ids, wall clock, no-op logger.
func (d Deps) WithDefaults() Deps {
	if d.Backend == nil {
		d.Backend = NewMemoryBackend()
	}
	if d.IDs == nil {
		d.IDs = idgen.UUID{}
	}
	if d.Seq == nil {
		d.Seq = idgen.NewMonotonic()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop().Sugar()
	}
	return d
}

// Stamp returns the current time in UTC.
func (d Deps) Stamp() time.Time {
	return d.Now().UTC()
}

// ObserveIDs raises a monotonic sequence past every id already stored.
func ObserveIDs(seq idgen.Sequence, ids []int64) {
	o, ok := seq.(interface{ Observe(int64) })
	if !ok {
		return
	}
	for _, id := range ids {
		o.Observe(id)
	}
}
