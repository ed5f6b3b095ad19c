package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_GroupsThousands(t *testing.T) {
	cases := map[Money]string{
		0:        "0",
		999:      "999",
		1500:     "1 500",
		21000:    "21 000",
		-1500:    "-1 500",
		1234567:  "1 234 567",
		-100000:  "-100 000",
	}
	for in, want := range cases {
		assert.Equal(t, want, in.String())
	}
}

func TestParse(t *testing.T) {
	m, err := Parse(" 1 500 ")
	require.NoError(t, err)
	assert.Equal(t, Money(1500), m)

	m, err = Parse("-20_000")
	require.NoError(t, err)
	assert.Equal(t, Money(-20000), m)

	for _, bad := range []string{"", "12.5", "abc", "1,5"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestSumAndMul(t *testing.T) {
	assert.Equal(t, Money(0), Sum())
	assert.Equal(t, Money(3500), Sum(1500, 2000))
	assert.Equal(t, Money(16000), Money(2000).Mul(8))
	assert.True(t, Money(-1).IsNegative())
}
