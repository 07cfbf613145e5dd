package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{`350`, 350},
		{`12.5`, 12.5},
		{`"350"`, 350},
		{`"35g"`, 35},
		{`" 42 kcal"`, 42},
		{`"1,200 kcal"`, 1200},
		{`"12,500"`, 12500},
		{`"350-400"`, 350},
		{`"10-12g"`, 10},
		{`"-5"`, -5},
		{`"2.5.1"`, 2.5},
		{`"about 300"`, 0},
		{`"-"`, 0},
		{`""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var n FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, float64(n))
		})
	}
}

func TestFlexNumberRejectsNonNumbers(t *testing.T) {
	var n FlexNumber
	assert.Error(t, json.Unmarshal([]byte(`{"calories": 1}`), &n))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &n))
}
