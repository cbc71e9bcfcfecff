package config

import (
	"fmt"
	"strconv"
	"strings"
)

// toFloatSlice accepts what viper hands back for a list key: a yaml sequence,
// the default slice, or a comma/space separated env string.
func toFloatSlice(value interface{}) ([]float64, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []float64:
		return append([]float64(nil), v...), nil
	case []int:
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, nil
	case []interface{}:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			f, err := toFloat(item)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	case string:
		fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
		out := make([]float64, 0, len(fields))
		for _, field := range fields {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("levels_time_quantum: %w", err)
			}
			out = append(out, f)
		}
		return out, nil
	}
	return nil, fmt.Errorf("levels_time_quantum: unsupported value %v (%T)", value, value)
}

func toFloat(item interface{}) (float64, error) {
	switch n := item.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("levels_time_quantum: %w", err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("levels_time_quantum: unsupported item %v (%T)", item, item)
}
