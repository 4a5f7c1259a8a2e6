package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "golang", want: "golang"},
		{name: "percent", in: "100%", want: `100\%`},
		{name: "underscore", in: "snake_case", want: `snake\_case`},
		{name: "backslash", in: `C:\path`, want: `C:\\path`},
		{name: "mixed", in: `%_\`, want: `\%\_\\`},
		{name: "empty", in: "", want: ""},
		{name: "multibyte", in: "記事_1", want: `記事\_1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLike(tt.in))
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%go%", ContainsPattern("go"))
	assert.Equal(t, `%50\%%`, ContainsPattern("50%"))
}
