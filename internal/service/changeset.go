package service

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// ComputeChangeSet diffs two wire payloads of the same shape and returns the
// fields whose string representation changed, each mapped to its {old, new}
// pair. Comparison is deliberately string-coerced rather than type-aware:
// numeric 1 and textual "1" count as equal. Downstream audit consumers depend
// on this granularity, so it must not be tightened.
func ComputeChangeSet(oldPayload, newPayload interface{}) (datatypes.JSONMap, error) {
	oldFields, err := payloadFields(oldPayload)
	if err != nil {
		return nil, err
	}
	newFields, err := payloadFields(newPayload)
	if err != nil {
		return nil, err
	}

	changes := datatypes.JSONMap{}
	for field, newValue := range newFields {
		oldValue := oldFields[field]
		if coerce(oldValue) != coerce(newValue) {
			changes[field] = map[string]interface{}{
				"old": oldValue,
				"new": newValue,
			}
		}
	}
	return changes, nil
}

// CreateChangeSet records a full payload as the new side of every field,
// with a null old side.
func CreateChangeSet(payload interface{}) (datatypes.JSONMap, error) {
	fields, err := payloadFields(payload)
	if err != nil {
		return nil, err
	}

	changes := datatypes.JSONMap{}
	for field, value := range fields {
		changes[field] = map[string]interface{}{
			"old": nil,
			"new": value,
		}
	}
	return changes, nil
}

// payloadFields normalises a payload through its JSON representation so both
// diff sides see identical key names and value types.
func payloadFields(payload interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return fields, nil
}

func coerce(value interface{}) string {
	return fmt.Sprintf("%v", value)
}
