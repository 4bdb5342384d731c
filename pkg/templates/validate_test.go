package templates

import (
	"encoding/json"
	"testing"

	"github.com/businessdatasolutions/beat-generator/models"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var content map[string]any
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return content
}

const validTutorialJSON = `{
  "metadata": {"id": "data-basics", "title": "Data Basics", "templateType": "concept-tutorial"},
  "intro": {"sections": [{"id": "waarom", "tabLabel": "WAAROM", "title": "Waarom", "content": "..."}]},
  "scenarios": [{
    "id": "scenario-1",
    "title": "Eerste",
    "stages": [{
      "id": "data",
      "question": "Welke data?",
      "options": [
        {"id": "a", "text": "A", "feedback": "goed", "isCorrect": true},
        {"id": "b", "text": "B", "feedback": "minder", "isCorrect": false}
      ]
    }]
  }]
}`

const validFrameworkJSON = `{
  "metadata": {"id": "matrix", "title": "Matrix", "templateType": "strategic-framework"},
  "framework": {
    "title": "2x2",
    "xAxis": {"label": "Impact"},
    "yAxis": {"label": "Moeite"},
    "quadrants": [
      {"id": "q1", "title": "Q1", "description": "d", "position": "top-left"},
      {"id": "q2", "title": "Q2", "description": "d", "position": "top-right"},
      {"id": "q3", "title": "Q3", "description": "d", "position": "bottom-left"},
      {"id": "q4", "title": "Q4", "description": "d", "position": "bottom-right"}
    ]
  },
  "context": {"introduction": "Zo gebruik je deze matrix."}
}`

func TestValidateConceptTutorialValid(t *testing.T) {
	content := decode(t, validTutorialJSON)
	if errs := Validate(content, models.TemplateConceptTutorial); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateConceptTutorialErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr string
	}{
		{
			"missing metadata id",
			func(c map[string]any) { delete(c["metadata"].(map[string]any), "id") },
			"Missing metadata.id",
		},
		{
			"wrong template type",
			func(c map[string]any) { c["metadata"].(map[string]any)["templateType"] = "strategic-framework" },
			`Invalid templateType: must be "concept-tutorial"`,
		},
		{
			"missing intro",
			func(c map[string]any) { delete(c, "intro") },
			"Missing intro",
		},
		{
			"no scenarios",
			func(c map[string]any) { c["scenarios"] = []any{} },
			"At least one scenario is required",
		},
		{
			"no correct option",
			func(c map[string]any) {
				stage := c["scenarios"].([]any)[0].(map[string]any)["stages"].([]any)[0].(map[string]any)
				for _, opt := range stage["options"].([]any) {
					opt.(map[string]any)["isCorrect"] = false
				}
			},
			"Scenario 0, Stage 0: at least one correct option required",
		},
		{
			"too few options",
			func(c map[string]any) {
				stage := c["scenarios"].([]any)[0].(map[string]any)["stages"].([]any)[0].(map[string]any)
				stage["options"] = stage["options"].([]any)[:1]
			},
			"Scenario 0, Stage 0: at least 2 options required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := decode(t, validTutorialJSON)
			tt.mutate(content)
			errs := Validate(content, models.TemplateConceptTutorial)
			if !containsError(errs, tt.wantErr) {
				t.Errorf("Validate() = %v, want to contain %q", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateStrategicFrameworkValid(t *testing.T) {
	content := decode(t, validFrameworkJSON)
	if errs := Validate(content, models.TemplateStrategicFramework); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateStrategicFrameworkErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr string
	}{
		{
			"missing framework",
			func(c map[string]any) { delete(c, "framework") },
			"Missing framework configuration",
		},
		{
			"missing axis label",
			func(c map[string]any) { delete(c["framework"].(map[string]any), "xAxis") },
			"Missing framework.xAxis.label",
		},
		{
			"wrong quadrant count",
			func(c map[string]any) {
				fw := c["framework"].(map[string]any)
				fw["quadrants"] = fw["quadrants"].([]any)[:3]
			},
			"Exactly 4 quadrants are required",
		},
		{
			"duplicate quadrant position",
			func(c map[string]any) {
				fw := c["framework"].(map[string]any)
				fw["quadrants"].([]any)[3].(map[string]any)["position"] = "top-left"
			},
			"Missing quadrant for position: bottom-right",
		},
		{
			"missing context",
			func(c map[string]any) { delete(c, "context") },
			"Missing context.introduction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := decode(t, validFrameworkJSON)
			tt.mutate(content)
			errs := Validate(content, models.TemplateStrategicFramework)
			if !containsError(errs, tt.wantErr) {
				t.Errorf("Validate() = %v, want to contain %q", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateUnknownTemplate(t *testing.T) {
	errs := Validate(map[string]any{}, models.TemplateType("quiz"))
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
}

func containsError(errs []string, want string) bool {
	for _, e := range errs {
		if e == want {
			return true
		}
	}
	return false
}
