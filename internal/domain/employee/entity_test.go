package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCode(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty table", nil, "EMP001"},
		{"gap is not reused", []string{"EMP001", "EMP007"}, "EMP008"},
		{"other shapes ignored", []string{"EMP002", "X100", "EMPabc"}, "EMP003"},
		{"grows past padding", []string{"EMP999"}, "EMP1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextCode(tt.existing))
		})
	}
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 40, Filter{Page: 3, Limit: 20}.Offset())
}
