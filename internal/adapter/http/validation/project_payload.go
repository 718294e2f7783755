package validation

import (
	"encoding/json"
	"errors"

	"github.com/jongwon/todo-app/internal/adapter/http/dto"
	"github.com/jongwon/todo-app/internal/core/domain"
)

var ErrInvalidProjectPayload = errors.New("invalid project payload")

func BuildCreateProjectInput(req dto.CreateProjectRequest) domain.CreateProjectInput {
	return domain.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	}
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasAnyJSONField(raw, "title", "description", "color", "isActive") {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	for _, field := range []string{"title", "color", "isActive"} {
		if isExplicitNull(raw, field) {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
	}

	return domain.UpdateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		Color:          req.Color,
		IsActive:       req.IsActive,
	}, nil
}
