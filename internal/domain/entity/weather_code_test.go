package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateWeatherCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"ExactSunny", "100", "晴れ"},
		{"ExactCloudyThenRain", "212", "くもり後一時雨"},
		{"ExactSnow", "400", "雪"},
		{"RangeFallbackSunny", "199", "晴れ"},
		{"RangeFallbackCloudy", "299", "くもり"},
		{"RangeFallbackRain", "399", "雨"},
		{"RangeFallbackSnow", "999", "雪"},
		{"BelowRange", "99", NoDataText},
		{"Empty", "", NoDataText},
		{"NonNumeric", "abc", NoDataText},
		{"SignedInput", "-100", NoDataText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateWeatherCode(tt.code))
		})
	}
}
