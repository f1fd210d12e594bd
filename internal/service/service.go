package service

import (
	"github.com/saferoute/backend/internal/domain"
)

// DataRepository is re-exported from domain for convenience
type DataRepository = domain.DataRepository

// RecordProvider is re-exported from domain for convenience
type RecordProvider = domain.RecordProvider
