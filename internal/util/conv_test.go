package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.3, Round1(4.333333))
	assert.Equal(t, 4.7, Round1(4.666666))
	assert.Equal(t, 4.5, Round1(4.45))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, 5.0, Round1(5))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "mia", DisplayName("mia@example.com"))
	assert.Equal(t, "leo.smith", DisplayName("leo.smith@kids.example"))
	assert.Equal(t, "noatsign", DisplayName("noatsign"))
}

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint("not-a-number"))
}
