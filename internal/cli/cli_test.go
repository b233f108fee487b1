package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		assertFn  func(t *testing.T, args *Args, err error)
	}{
		{
			name:      "required positionals only",
			arguments: []string{"0050", "2021-09-13"},
			assertFn: func(t *testing.T, args *Args, err error) {
				require.NoError(t, err)
				assert.Equal(t, "0050", args.StockID)
				assert.Equal(t, "2021-09-13", args.StartDate)
				assert.Empty(t, args.EndDate)
				assert.Equal(t, "stock_data.csv", args.Output)
			},
		},
		{
			name:      "with end date",
			arguments: []string{"0050", "2021-09-13", "2021-09-30"},
			assertFn: func(t *testing.T, args *Args, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2021-09-30", args.EndDate)
			},
		},
		{
			name:      "output flag after positionals",
			arguments: []string{"0050", "2021-09-13", "--output", "tw0050.csv"},
			assertFn: func(t *testing.T, args *Args, err error) {
				require.NoError(t, err)
				assert.Equal(t, "tw0050.csv", args.Output)
				assert.Empty(t, args.EndDate)
			},
		},
		{
			name:      "output flag before positionals",
			arguments: []string{"--output", "tw0050.csv", "0050", "2021-09-13", "2021-09-30"},
			assertFn: func(t *testing.T, args *Args, err error) {
				require.NoError(t, err)
				assert.Equal(t, "tw0050.csv", args.Output)
				assert.Equal(t, "2021-09-30", args.EndDate)
			},
		},
		{
			name:      "output flag between positionals",
			arguments: []string{"0050", "--output=tw0050.csv", "2021-09-13"},
			assertFn: func(t *testing.T, args *Args, err error) {
				require.NoError(t, err)
				assert.Equal(t, "tw0050.csv", args.Output)
				assert.Equal(t, "2021-09-13", args.StartDate)
			},
		},
		{
			name:      "missing start date",
			arguments: []string{"0050"},
			assertFn: func(t *testing.T, args *Args, err error) {
				assert.Error(t, err)
				assert.Nil(t, args)
			},
		},
		{
			name:      "no arguments",
			arguments: nil,
			assertFn: func(t *testing.T, args *Args, err error) {
				assert.Error(t, err)
				assert.Nil(t, args)
			},
		},
		{
			name:      "too many positionals",
			arguments: []string{"0050", "2021-09-13", "2021-09-30", "extra"},
			assertFn: func(t *testing.T, args *Args, err error) {
				assert.Error(t, err)
				assert.Nil(t, args)
			},
		},
		{
			name:      "unknown flag",
			arguments: []string{"0050", "2021-09-13", "--format", "json"},
			assertFn: func(t *testing.T, args *Args, err error) {
				assert.Error(t, err)
				assert.Nil(t, args)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := Parse("stockinfo", tc.arguments, "stock_data.csv")
			tc.assertFn(t, args, err)
		})
	}
}
