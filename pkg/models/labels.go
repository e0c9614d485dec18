package models

import "encoding/json"

// LabelList is a set of chat/customer labels. The backend persists label
// sets as a JSON array serialized into a text column, so the wire value
// may arrive either as a real JSON array or as a string containing one.
// Malformed text decodes to an empty set instead of failing the whole
// payload.
type LabelList []string

// ParseLabels decodes the serialized-text form of a label set.
func ParseLabels(raw string) LabelList {
	if raw == "" {
		return LabelList{}
	}
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return LabelList{}
	}
	return dedupe(labels)
}

func (l *LabelList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = dedupe(arr)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = ParseLabels(raw)
		return nil
	}
	*l = LabelList{}
	return nil
}

// MarshalJSON emits the serialized-string form the backend stores.
func (l LabelList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = LabelList{}
	}
	inner, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}

// Has reports whether the set contains label.
func (l LabelList) Has(label string) bool {
	for _, v := range l {
		if v == label {
			return true
		}
	}
	return false
}

// Add returns the union of the set and label.
func (l LabelList) Add(label string) LabelList {
	if l.Has(label) {
		return l
	}
	out := make(LabelList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, label)
}

// Remove returns the set without label.
func (l LabelList) Remove(label string) LabelList {
	if !l.Has(label) {
		return l
	}
	out := make(LabelList, 0, len(l))
	for _, v := range l {
		if v != label {
			out = append(out, v)
		}
	}
	return out
}

// Equal reports whether two sets hold the same labels in the same order.
func (l LabelList) Equal(other LabelList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

func dedupe(labels []string) LabelList {
	out := make(LabelList, 0, len(labels))
	for _, v := range labels {
		if !out.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
