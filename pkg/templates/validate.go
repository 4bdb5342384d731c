package templates

import (
	"fmt"

	"github.com/businessdatasolutions/beat-generator/models"
)

// quadrantPositions are the four required positions of a 2x2 matrix.
var quadrantPositions = []string{"top-left", "top-right", "bottom-left", "bottom-right"}

// Validate runs the strict, template-owned content validation. An empty
// result means the content is publishable for its template type.
func Validate(content map[string]any, templateType models.TemplateType) []string {
	switch templateType {
	case models.TemplateConceptTutorial:
		return validateConceptTutorial(content)
	case models.TemplateStrategicFramework:
		return validateStrategicFramework(content)
	default:
		return []string{fmt.Sprintf("unknown template type: %q", templateType)}
	}
}

func validateMetadata(content map[string]any, templateType models.TemplateType) []string {
	var errors []string

	meta, ok := getMap(content, "metadata")
	if !ok {
		return []string{"Missing metadata"}
	}
	if getString(meta, "id") == "" {
		errors = append(errors, "Missing metadata.id")
	}
	if getString(meta, "title") == "" {
		errors = append(errors, "Missing metadata.title")
	}
	if getString(meta, "templateType") != string(templateType) {
		errors = append(errors, fmt.Sprintf("Invalid templateType: must be %q", templateType))
	}
	return errors
}

func validateConceptTutorial(content map[string]any) []string {
	errors := validateMetadata(content, models.TemplateConceptTutorial)

	intro, ok := getMap(content, "intro")
	if !ok {
		errors = append(errors, "Missing intro")
	} else if sections, ok := getSlice(intro, "sections"); !ok || len(sections) == 0 {
		errors = append(errors, "At least one intro section is required")
	}

	scenarios, ok := getSlice(content, "scenarios")
	if !ok || len(scenarios) == 0 {
		errors = append(errors, "At least one scenario is required")
		return errors
	}

	for i, raw := range scenarios {
		scenario, ok := raw.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Scenario %d: not an object", i))
			continue
		}
		if getString(scenario, "id") == "" {
			errors = append(errors, fmt.Sprintf("Scenario %d: missing id", i))
		}

		stages, ok := getSlice(scenario, "stages")
		if !ok || len(stages) == 0 {
			errors = append(errors, fmt.Sprintf("Scenario %d: at least one stage is required", i))
			continue
		}

		for j, rawStage := range stages {
			stage, ok := rawStage.(map[string]any)
			if !ok {
				errors = append(errors, fmt.Sprintf("Scenario %d, Stage %d: not an object", i, j))
				continue
			}

			options, _ := getSlice(stage, "options")
			if len(options) < 2 {
				errors = append(errors, fmt.Sprintf("Scenario %d, Stage %d: at least 2 options required", i, j))
			}

			correct := 0
			for _, rawOpt := range options {
				if opt, ok := rawOpt.(map[string]any); ok && getBool(opt, "isCorrect") {
					correct++
				}
			}
			if correct == 0 {
				errors = append(errors, fmt.Sprintf("Scenario %d, Stage %d: at least one correct option required", i, j))
			}
		}
	}

	return errors
}

func validateStrategicFramework(content map[string]any) []string {
	errors := validateMetadata(content, models.TemplateStrategicFramework)

	framework, ok := getMap(content, "framework")
	if !ok {
		errors = append(errors, "Missing framework configuration")
	} else {
		if getString(framework, "title") == "" {
			errors = append(errors, "Missing framework.title")
		}
		if xAxis, ok := getMap(framework, "xAxis"); !ok || getString(xAxis, "label") == "" {
			errors = append(errors, "Missing framework.xAxis.label")
		}
		if yAxis, ok := getMap(framework, "yAxis"); !ok || getString(yAxis, "label") == "" {
			errors = append(errors, "Missing framework.yAxis.label")
		}

		quadrants, _ := getSlice(framework, "quadrants")
		if len(quadrants) != 4 {
			errors = append(errors, "Exactly 4 quadrants are required")
		} else {
			seen := make(map[string]bool)
			for i, raw := range quadrants {
				quadrant, ok := raw.(map[string]any)
				if !ok {
					errors = append(errors, fmt.Sprintf("Quadrant %d: not an object", i))
					continue
				}
				seen[getString(quadrant, "position")] = true

				if getString(quadrant, "id") == "" {
					errors = append(errors, fmt.Sprintf("Quadrant %d: missing id", i))
				}
				if getString(quadrant, "title") == "" {
					errors = append(errors, fmt.Sprintf("Quadrant %d: missing title", i))
				}
				if getString(quadrant, "description") == "" {
					errors = append(errors, fmt.Sprintf("Quadrant %d: missing description", i))
				}
			}
			for _, pos := range quadrantPositions {
				if !seen[pos] {
					errors = append(errors, fmt.Sprintf("Missing quadrant for position: %s", pos))
				}
			}
		}
	}

	if context, ok := getMap(content, "context"); !ok || getString(context, "introduction") == "" {
		errors = append(errors, "Missing context.introduction")
	}

	return errors
}
