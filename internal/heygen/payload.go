package heygen

// Payload is a decoded upstream JSON object. The upstream API is loosely
// typed; accessors tolerate missing keys and the number representations
// encoding/json produces so callers can normalize at the boundary.
type Payload map[string]any

func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Payload) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func (p Payload) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p Payload) Int64(key string) (int64, bool) {
	switch v := p[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

func (p Payload) Float64(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (p Payload) Object(key string) Payload {
	if v, ok := p[key].(map[string]any); ok {
		return Payload(v)
	}
	return nil
}

func (p Payload) List(key string) []Payload {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	items := make([]Payload, 0, len(raw))
	for _, entry := range raw {
		if obj, ok := entry.(map[string]any); ok {
			items = append(items, Payload(obj))
		}
	}
	return items
}
