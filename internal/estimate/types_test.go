package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod_String(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		want   string
	}{
		{"optimal", Optimal, "optimal"},
		{"chia", Chia, "chia"},
		{"permutation", Permutation, "permutation"},
		{"bitpacking", Bitpacking, "bitpacking"},
		{"unknown", Method(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.String())
		})
	}
}

func TestMethods_Order(t *testing.T) {
	assert.Equal(t, []Method{Optimal, Chia, Permutation, Bitpacking}, Methods())
}

func TestMethod_FuncUnknown(t *testing.T) {
	_, err := Method(42).Func()
	require.Error(t, err)

	_, err = Method(42).Estimate(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no estimator")
}
