package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет обязательные поля и длительность
// Все ошибки собираются в один ValidationError
func validateRequest(req *Request, minHours, maxHours int) error {
	missing := make([]string, 0, 4)

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"vehicle", req.Vehicle},
		{"license", req.License},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}

	if req.DurationHours == 0 {
		missing = append(missing, "durationHours")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Reason: "missing required fields"}
	}

	if req.DurationHours < minHours || req.DurationHours > maxHours {
		return &ValidationError{
			Fields: []string{"durationHours"},
			Reason: fmt.Sprintf("must be between %d and %d", minHours, maxHours),
		}
	}

	return nil
}
