package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/matzehuels/permrank/pkg/errors"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		sep     string
		want    []int
		wantErr bool
	}{
		{name: "comma list", input: "1,0,2", sep: ",", want: []int{1, 0, 2}},
		{name: "with spaces", input: " 4, 3 ,2 ", sep: ",", want: []int{4, 3, 2}},
		{name: "single", input: "0", sep: ",", want: []int{0}},
		{name: "empty", input: "", sep: ",", want: []int{}},
		{name: "custom separator", input: "2;0;1", sep: ";", want: []int{2, 0, 1}},
		{name: "space separator", input: "2 0 1", sep: " ", want: []int{2, 0, 1}},
		{name: "negative", input: "-1,0", sep: ",", want: []int{-1, 0}},
		{name: "missing item", input: "1,,2", sep: ",", wantErr: true},
		{name: "not a number", input: "1,a", sep: ",", wantErr: true},
		{name: "wrong separator", input: "1;2", sep: ",", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInts(tt.input, tt.sep)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, perrors.Is(err, perrors.ErrCodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "0", want: "0"},
		{input: "119", want: "119"},
		{input: "1000000000000000000000000", want: "1000000000000000000000000"},
		{input: "0x10", want: "16"},
		{input: " 7 ", want: "7"},
		{input: "-3", want: "-3"},
		{input: "", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseRank(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseSize(t *testing.T) {
	n, err := parseSize("5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = parseSize("-1")
	assert.True(t, perrors.Is(err, perrors.ErrCodeInvalidSize))

	_, err = parseSize("five")
	assert.True(t, perrors.Is(err, perrors.ErrCodeInvalidInput))
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "1,0,2", joinInts([]int{1, 0, 2}, ","))
	assert.Equal(t, "4 3", joinInts([]int{4, 3}, " "))
	assert.Equal(t, "", joinInts(nil, ","))
}
