package shared

import "time"

// BaseAggregateRoot adds a version counter to BaseEntity. Concurrent writes
// are last-write-wins; the counter exists so a store boundary can add an
// ETag-style check later without a schema change.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// Touch refreshes the update timestamp and bumps the version. Setters call
// it after a successful mutation.
func (a *BaseAggregateRoot) Touch() {
	a.UpdatedAt = time.Now()
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
