package generator

import (
	"fmt"

	"github.com/businessdatasolutions/beat-generator/models"
)

// ValidateContent runs the shallow structural check gating persistence: it
// verifies the top-level shape only. The strict per-template validation in
// pkg/templates is a separate concern and never blocks a save.
func ValidateContent(content map[string]any, templateType models.TemplateType) []string {
	if content == nil {
		return []string{"Content must be an object"}
	}

	var errs []string

	meta, ok := content["metadata"].(map[string]any)
	if !ok {
		errs = append(errs, "Missing metadata")
	} else {
		if isMissing(meta["id"]) {
			errs = append(errs, "Missing metadata.id")
		}
		if isMissing(meta["title"]) {
			errs = append(errs, "Missing metadata.title")
		}
		if meta["templateType"] != string(templateType) {
			errs = append(errs, fmt.Sprintf("Invalid templateType: expected %s", templateType))
		}
	}

	switch templateType {
	case models.TemplateConceptTutorial:
		if isMissing(content["intro"]) {
			errs = append(errs, "Missing intro")
		}
		if _, ok := content["scenarios"].([]any); !ok {
			errs = append(errs, "Missing or invalid scenarios array")
		}
	case models.TemplateStrategicFramework:
		if isMissing(content["framework"]) {
			errs = append(errs, "Missing framework")
		}
		if isMissing(content["context"]) {
			errs = append(errs, "Missing context")
		}
	}

	return errs
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
