package services

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"cvinsight/cv-parser/internal/models"
)

// ToCVProfile maps a normalized extraction response into a CVProfile.
// Missing or null lists become empty lists; unknown or mistyped fields inside
// the contact block and inside list entries are rejected.
func ToCVProfile(data map[string]any) (*models.CVProfile, error) {
	name, err := stringOrDefault(data, "name", models.NotAvailable)
	if err != nil {
		return nil, err
	}
	title, err := stringOrDefault(data, "title", models.NotAvailable)
	if err != nil {
		return nil, err
	}

	profile := &models.CVProfile{Name: name, Title: title}

	contact, err := mappingAt(data, "contact")
	if err != nil {
		return nil, err
	}
	if contact["other_links"] == nil {
		contact["other_links"] = []any{}
	}
	if err := decodeStrict("contact", contact, &profile.Contact, false); err != nil {
		return nil, err
	}

	if profile.Education, err = decodeList[models.Education](data, "education"); err != nil {
		return nil, err
	}
	if profile.Experience, err = decodeList[models.Experience](data, "experience"); err != nil {
		return nil, err
	}
	if profile.Projects, err = decodeList[models.Project](data, "projects"); err != nil {
		return nil, err
	}
	if profile.Certifications, err = decodeList[models.Certification](data, "certifications"); err != nil {
		return nil, err
	}
	if profile.Skills, err = decodeList[string](data, "skills"); err != nil {
		return nil, err
	}
	if profile.SkillsFromWorkExperience, err = decodeList[string](data, "skills_from_work_experience"); err != nil {
		return nil, err
	}

	fillEmptySlices(reflect.ValueOf(profile).Elem())
	return profile, nil
}

// ToAnalysisReport maps a normalized analysis response into an
// AnalysisReport. The metadata block is always rebuilt from the caller's
// values; only analyzer_comments is kept from the model output.
func ToAnalysisReport(data map[string]any, jobTitle, companyName string, analyzedAt time.Time) (*models.AnalysisReport, error) {
	body := make(map[string]any, len(data))
	for key, value := range data {
		body[key] = value
	}

	comments := ""
	if meta, ok := data["metadata"].(map[string]any); ok {
		if c, ok := meta["analyzer_comments"].(string); ok {
			comments = c
		}
	}
	body["metadata"] = map[string]any{
		"analysis_date":     analyzedAt,
		"job_title":         jobTitle,
		"company_name":      companyName,
		"analyzer_comments": comments,
	}

	report := &models.AnalysisReport{}
	if err := decodeStrict("analysis", body, report, true); err != nil {
		return nil, err
	}

	fillEmptySlices(reflect.ValueOf(report).Elem())
	return report, nil
}

func decodeStrict(path string, input any, out any, requireAll bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		ErrorUnset:  requireAll,
		DecodeHook:  rejectFractionalInts,
		Result:      out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder for %s: %w", path, err)
	}

	if err := decoder.Decode(input); err != nil {
		return newError(KindSchema, err, "schema violation in %s", path)
	}
	return nil
}

// rejectFractionalInts stops mapstructure from truncating a JSON number such
// as 5.7 into an integer field.
func rejectFractionalInts(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f := data.(float64); f != math.Trunc(f) {
			return nil, fmt.Errorf("cannot use fractional number %v as an integer", f)
		}
	}
	return data, nil
}

func decodeList[T any](data map[string]any, key string) ([]T, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return []T{}, nil
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, newError(KindSchema, nil, "schema violation in %s: expected a list, got %T", key, raw)
	}

	result := make([]T, 0, len(entries))
	for i, entry := range entries {
		path := fmt.Sprintf("%s[%d]", key, i)
		if entry == nil {
			return nil, newError(KindSchema, nil, "schema violation in %s: entry is null", path)
		}

		var item T
		if err := decodeStrict(path, entry, &item, false); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, nil
}

// mappingAt returns a copy of the object stored under key, or an empty map
// when it is absent or null.
func mappingAt(data map[string]any, key string) (map[string]any, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return map[string]any{}, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, newError(KindSchema, nil, "schema violation in %s: expected an object, got %T", key, raw)
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

func stringOrDefault(data map[string]any, key, fallback string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return fallback, nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", newError(KindSchema, nil, "schema violation in %s: expected a string, got %T", key, raw)
	}
	return s, nil
}

// fillEmptySlices replaces every nil slice reachable through exported fields
// of v with an empty slice.
func fillEmptySlices(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr:
		if !v.IsNil() {
			fillEmptySlices(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if field := v.Field(i); field.CanSet() {
				fillEmptySlices(field)
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			if v.CanSet() {
				v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			}
			return
		}
		for i := 0; i < v.Len(); i++ {
			fillEmptySlices(v.Index(i))
		}
	}
}
