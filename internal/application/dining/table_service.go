package dining

import (
	"context"

	"github.com/RayLight-369/rms/internal/domain/dining"
)

// TableService exposes the floor plan
type TableService struct {
	tableRepo dining.TableRepository
}

// NewTableService creates a new TableService
func NewTableService(tableRepo dining.TableRepository) *TableService {
	return &TableService{tableRepo: tableRepo}
}

// List retrieves all tables ordered by number
func (s *TableService) List(ctx context.Context) ([]TableResponse, error) {
	tables, err := s.tableRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToTableResponses(tables), nil
}
