package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lessco/internal/core/domain"
)

func TestSanitizeVariables(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]string
		want map[string]string
	}{
		{
			name: "empty value becomes empty string literal",
			raw:  map[string]string{"logo": ""},
			want: map[string]string{"logo": `""`},
		},
		{
			name: "whitespace only value becomes empty string literal",
			raw:  map[string]string{"logo": "   "},
			want: map[string]string{"logo": `""`},
		},
		{
			name: "path value is quoted",
			raw:  map[string]string{"bg": "foo/bar"},
			want: map[string]string{"bg": `"foo/bar"`},
		},
		{
			name: "path value is trimmed before quoting",
			raw:  map[string]string{"bg": "  images/bg.png "},
			want: map[string]string{"bg": `"images/bg.png"`},
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  map[string]string{"greeting": "  hello  "},
			want: map[string]string{"greeting": "hello"},
		},
		{
			name: "plain values pass through",
			raw:  map[string]string{"color": "#08c", "width": "960px"},
			want: map[string]string{"color": "#08c", "width": "960px"},
		},
		{
			name: "free-form keys are dropped",
			raw: map[string]string{
				"customCssCode": "body { color: red; }",
				"textLogo":      "My Site",
				"slogan":        "fast",
				"copyText":      "(c) me",
				"color":         "red",
			},
			want: map[string]string{"color": "red"},
		},
		{
			name: "nil input yields empty map",
			raw:  nil,
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SanitizeVariables(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeVariables_DoesNotModifyInput(t *testing.T) {
	raw := map[string]string{"bg": " a/b ", "textLogo": "x"}

	_ = domain.SanitizeVariables(raw)

	assert.Equal(t, map[string]string{"bg": " a/b ", "textLogo": "x"}, raw)
}
