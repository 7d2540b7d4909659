package unit

import "log/slog"

// Service groups the flat reference rows into dropdown entries and answers
// pairing checks for the mutasi workflow.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Dropdown returns every unit with its sub-units, preserving the order the
// reference table yields units in.
func (s *Service) Dropdown() ([]UnitDropdown, error) {
	pairs, err := s.repo.ListPairs()
	if err != nil {
		s.logger.Error("failed to list unit pairs", "error", err)
		return nil, err
	}

	byUnit := make(map[string]int)
	result := make([]UnitDropdown, 0)
	for _, p := range pairs {
		idx, ok := byUnit[p.Unit]
		if !ok {
			idx = len(result)
			byUnit[p.Unit] = idx
			result = append(result, UnitDropdown{UnitBaru: p.Unit})
		}
		result[idx].SubUnitBaru = append(result[idx].SubUnitBaru, p.SubUnit)
	}
	return result, nil
}

// ValidPair reports whether the sub-unit belongs to the unit in the
// reference table.
func (s *Service) ValidPair(unit, subUnit string) (bool, error) {
	return s.repo.PairExists(unit, subUnit)
}
