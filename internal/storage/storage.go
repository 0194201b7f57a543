package storage

import "github.com/bogdoslavik/balancer-sor/internal/model"

// Storage defines a sink for canonical pools.
type Storage interface {
	PutPoolBatch(pools []model.Pool) error
}
