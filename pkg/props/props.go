// Package props decodes optional, environment-supplied key/value
// structures into canonical peerdisc.Pairs. The data is advisory (node
// tags and the like), so every failure mode degrades to an empty list
// instead of blocking node startup.
package props

import (
	"fmt"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/atlassian/peerdisc"
)

var jsonConfig = jsoniter.Config{
	EscapeHTML: false,
}.Froze()

// Decode converts v into Pairs. Already-structured pairs are returned
// unchanged, text is decoded as a JSON object and flattened to string
// pairs in key order, absent values decode to an empty list. Malformed
// JSON, non-object JSON and unsupported input shapes are logged and
// degrade to an empty list; Decode never fails.
func Decode(logger logrus.FieldLogger, v interface{}) peerdisc.Pairs {
	switch val := v.(type) {
	case nil:
		return peerdisc.Pairs{}
	case peerdisc.Pairs:
		return val
	case []peerdisc.Pair:
		return val
	case string:
		return decodeJSON(logger, val)
	case peerdisc.Value:
		text, err := peerdisc.ToText(val)
		if err != nil {
			logger.WithError(err).WithField("value", val).Error("Unable to normalize proplist input")
			return peerdisc.Pairs{}
		}
		return decodeJSON(logger, text)
	default:
		logger.WithField("type", fmt.Sprintf("%T", v)).Error("Unsupported proplist input")
		return peerdisc.Pairs{}
	}
}

func decodeJSON(logger logrus.FieldLogger, text string) peerdisc.Pairs {
	if text == "" {
		return peerdisc.Pairs{}
	}
	var decoded map[string]interface{}
	if err := jsonConfig.UnmarshalFromString(text, &decoded); err != nil {
		logger.WithError(err).Error("Unable to decode proplist JSON")
		return peerdisc.Pairs{}
	}
	keys := make([]string, 0, len(decoded))
	for key := range decoded {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make(peerdisc.Pairs, 0, len(decoded))
	for _, key := range keys {
		pairs = append(pairs, peerdisc.Pair{Key: key, Value: flatten(decoded[key])})
	}
	return pairs
}

// flatten renders a decoded JSON value as text. Nested structures keep
// their JSON form.
func flatten(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		out, _ := jsonConfig.MarshalToString(val)
		return out
	}
}
