package nano

import (
	"fmt"

	"github.com/AlexZinkM/local-nano/internal/common"
)

// NanoToRaw converts a Nano amount to raw
// Example: NanoToRaw("1") = "1000000000000000000000000000000"
func (s *Service) NanoToRaw(nano string) (string, error) {
	raw, err := common.ToRaw(nano)
	if err != nil {
		return "", err
	}
	return raw.String(), nil
}

// RawToNano converts raw to the shortest exact Nano amount
func (s *Service) RawToNano(raw string) (string, error) {
	r, err := common.ParseRaw(raw)
	if err != nil {
		return "", err
	}
	return common.ToDisplay(r), nil
}

// Add returns raw1 + raw2
func (s *Service) Add(raw1, raw2 string) (string, error) {
	a, b, err := parsePair(raw1, raw2)
	if err != nil {
		return "", err
	}
	sum, err := a.Add(b)
	if err != nil {
		return "", err
	}
	return sum.String(), nil
}

// Subtract returns raw1 - raw2
func (s *Service) Subtract(raw1, raw2 string) (string, error) {
	a, b, err := parsePair(raw1, raw2)
	if err != nil {
		return "", err
	}
	diff, err := a.Sub(b)
	if err != nil {
		return "", err
	}
	return diff.String(), nil
}

// Compare compares two raw amounts.
// Returns: -1 if raw < baseRaw, 0 if equal, 1 if raw > baseRaw
func (s *Service) Compare(raw, baseRaw string) (int, error) {
	a, b, err := parsePair(raw, baseRaw)
	if err != nil {
		return 0, err
	}
	return a.Cmp(b), nil
}

// Greater reports whether raw > baseRaw
func (s *Service) Greater(raw, baseRaw string) (bool, error) {
	cmp, err := s.Compare(raw, baseRaw)
	return cmp > 0, err
}

// GreaterOrEqual reports whether raw >= baseRaw
func (s *Service) GreaterOrEqual(raw, baseRaw string) (bool, error) {
	cmp, err := s.Compare(raw, baseRaw)
	return err == nil && cmp >= 0, err
}

// ConvertUnitToRaw converts a whole number of legacy nano units (10^24 raw) to raw
func (s *Service) ConvertUnitToRaw(units string) (string, error) {
	u, err := common.ParseRaw(units)
	if err != nil {
		return "", err
	}
	raw, err := common.ConvertUnitToRaw(u)
	if err != nil {
		return "", err
	}
	return raw.String(), nil
}

func parsePair(a, b string) (common.Raw, common.Raw, error) {
	ra, err := common.ParseRaw(a)
	if err != nil {
		return common.Raw{}, common.Raw{}, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}
	rb, err := common.ParseRaw(b)
	if err != nil {
		return common.Raw{}, common.Raw{}, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}
	return ra, rb, nil
}
