package peerdisc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairsString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Pairs{}.String())
	assert.Equal(t, "region=us-east-1,az=a", Pairs{{"region", "us-east-1"}, {"az", "a"}}.String())
}

func TestPairsToMap(t *testing.T) {
	t.Parallel()
	pairs := Pairs{{"a", "1"}, {"b", "2"}, {"a", "3"}}
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, pairs.ToMap())
}

func TestPairsCopy(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Pairs(nil).Copy())
	pairs := Pairs{{"a", "1"}}
	pairsCopy := pairs.Copy()
	pairsCopy[0].Value = "2"
	assert.Equal(t, "1", pairs[0].Value)
}
