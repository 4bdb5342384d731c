// Package templates owns per-template knowledge: scaffold locations and the
// strict content validation each template enforces beyond the generator's
// shallow shape check.
package templates

import (
	"path/filepath"

	"github.com/businessdatasolutions/beat-generator/models"
)

// ScaffoldDirName is the subdirectory holding a template's scaffold files.
const ScaffoldDirName = "scaffold"

// ScaffoldDir returns the scaffold source directory for a template type.
func ScaffoldDir(templatesDir string, templateType models.TemplateType) string {
	return filepath.Join(templatesDir, string(templateType), ScaffoldDirName)
}

// Content accessors. Generated content arrives as decoded JSON, so the
// validators navigate generic maps rather than concrete structs.

func getMap(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	sub, ok := v.(map[string]any)
	return sub, ok
}

func getSlice(m map[string]any, key string) ([]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

func getString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func getBool(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
