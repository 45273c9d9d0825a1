package usercontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uc   UserContext
		want string
	}{
		{name: "full name preferred", uc: UserContext{Username: "jsmith", FullName: "Jane Smith"}, want: "Jane Smith"},
		{name: "falls back to username", uc: UserContext{Username: "jsmith"}, want: "jsmith"},
		{name: "empty context", uc: UserContext{}, want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.uc.DisplayName())
		})
	}
}
