package props

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlassian/peerdisc"
	"github.com/atlassian/peerdisc/internal/fixtures"
)

func TestDecodeStructuredInputIsIdentity(t *testing.T) {
	t.Parallel()
	pairs := peerdisc.Pairs{{Key: "region", Value: "us-east-1"}, {Key: "az", Value: "a"}}
	assert.Equal(t, pairs, Decode(fixtures.NewTestLogger(t), pairs))
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Decode(fixtures.NewTestLogger(t), nil))
	assert.Empty(t, Decode(fixtures.NewTestLogger(t), ""))
	assert.Empty(t, Decode(fixtures.NewTestLogger(t), peerdisc.None()))
	assert.Empty(t, Decode(fixtures.NewTestLogger(t), peerdisc.Pairs{}))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected peerdisc.Pairs
	}{
		{
			"object flattens to sorted pairs",
			`{"region":"us-east-1","az":"a"}`,
			peerdisc.Pairs{{Key: "az", Value: "a"}, {Key: "region", Value: "us-east-1"}},
		},
		{
			"numbers and booleans flatten to text",
			`{"port":5672,"durable":true,"weight":1.5}`,
			peerdisc.Pairs{{Key: "durable", Value: "true"}, {Key: "port", Value: "5672"}, {Key: "weight", Value: "1.5"}},
		},
		{
			"null flattens to empty text",
			`{"comment":null}`,
			peerdisc.Pairs{{Key: "comment", Value: ""}},
		},
		{
			"nested values keep their JSON form",
			`{"zones":["a","b"]}`,
			peerdisc.Pairs{{Key: "zones", Value: `["a","b"]`}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Decode(fixtures.NewTestLogger(t), tc.input))
		})
	}
}

func TestDecodeDegradesToEmpty(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input interface{}
	}{
		{"malformed JSON", `{"region":`},
		{"non object JSON", `["a","b"]`},
		{"scalar JSON", `42`},
		{"unsupported input shape", 42},
		{"numeric value is not an object", peerdisc.Number(42)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, Decode(fixtures.NewTestLogger(t), tc.input))
		})
	}
}
