package schedule

import (
	"sort"
	"strings"
)

// Campos aos quais as violações são associadas.
const (
	FieldDate = "date"
	FieldTime = "time"
)

// Violations mapeia campo → motivo. Todas as regras são avaliadas e
// todas as violações são reportadas de uma vez, nunca apenas a primeira.
type Violations map[string]string

func (v Violations) Error() string {
	if len(v) == 0 {
		return ""
	}

	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return strings.Join(parts, "; ")
}

func (v Violations) Empty() bool {
	return len(v) == 0
}
