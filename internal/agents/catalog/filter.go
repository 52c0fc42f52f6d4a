package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/product/repository"
)

// filterSpec is the wire shape the gateway is asked to emit: one entry per
// field, each carrying the operators that field supports.
type filterSpec map[string]struct {
	Contains string   `json:"contains"`
	LTE      *float64 `json:"lte"`
	GTE      *float64 `json:"gte"`
}

// parseFilter turns raw model output into a validated filter. Surrounding
// code fences are stripped first since models add them despite instructions.
func parseFilter(raw string) (repository.Filter, error) {
	cleaned := stripCodeFences(raw)

	var spec filterSpec
	if err := json.Unmarshal([]byte(cleaned), &spec); err != nil {
		return repository.Filter{}, fmt.Errorf("unmarshal filter: %w", err)
	}

	var filter repository.Filter
	for field, cond := range spec {
		field = strings.ToLower(strings.TrimSpace(field))

		if cond.Contains != "" {
			filter.Conditions = append(filter.Conditions, repository.Condition{
				Field: field,
				Op:    repository.OpContains,
				Value: cond.Contains,
			})
		}
		if cond.LTE != nil {
			filter.Conditions = append(filter.Conditions, repository.Condition{
				Field:  field,
				Op:     repository.OpLTE,
				Number: *cond.LTE,
			})
		}
		if cond.GTE != nil {
			filter.Conditions = append(filter.Conditions, repository.Condition{
				Field:  field,
				Op:     repository.OpGTE,
				Number: *cond.GTE,
			})
		}
	}

	if err := filter.Validate(); err != nil {
		return repository.Filter{}, err
	}
	return filter, nil
}

// stripCodeFences removes ```json ... ``` wrappers if present.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
