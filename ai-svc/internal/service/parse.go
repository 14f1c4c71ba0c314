package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"best-menu/ai-svc/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

const dishesSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name", "description", "averageRating", "reviewCount", "reviewSummary"],
		"properties": {
			"id": {"type": ["string", "number"]},
			"name": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"averageRating": {"type": "number", "minimum": 0, "maximum": 5},
			"reviewCount": {"type": "integer", "minimum": 0},
			"reviewSummary": {"type": "string"}
		}
	}
}`

var dishesSchemaLoader = gojsonschema.NewStringLoader(dishesSchema)

// stripCodeFence removes a surrounding ```json ... ``` block if the model added one.
func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseDishes turns the model's message content into dishes.
func ParseDishes(content string) ([]domain.Dish, error) {
	raw := stripCodeFence(content)
	if !json.Valid([]byte(raw)) {
		return nil, ErrInvalidAIResponse
	}

	result, err := gojsonschema.Validate(dishesSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, errs)
	}

	var items []struct {
		ID            json.RawMessage `json:"id"`
		Name          string          `json:"name"`
		Description   string          `json:"description"`
		AverageRating float64         `json:"averageRating"`
		ReviewCount   int             `json:"reviewCount"`
		ReviewSummary string          `json:"reviewSummary"`
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}

	dishes := make([]domain.Dish, 0, len(items))
	for _, item := range items {
		id, err := dishID(item.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
		}
		dishes = append(dishes, domain.Dish{
			ID:            id,
			Name:          item.Name,
			Description:   item.Description,
			AverageRating: item.AverageRating,
			ReviewCount:   item.ReviewCount,
			ReviewSummary: item.ReviewSummary,
		})
	}
	return dishes, nil
}

// dishID accepts either a JSON string or a JSON number and returns its text.
func dishID(raw json.RawMessage) (string, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", fmt.Errorf("dish id: %w", err)
		}
		return id, nil
	}
	return string(raw), nil
}
