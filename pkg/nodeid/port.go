package nodeid

import (
	"strings"

	"github.com/atlassian/peerdisc"
)

// ParsePort extracts a numeric port from v. Textual values may be composite
// "host:port" forms such as the "tcp://10.0.0.1:5672" strings injected by
// container linking; only the trailing colon-delimited segment is parsed.
// No range validation is performed, callers must bound-check the result.
func ParsePort(v peerdisc.Value) (int64, error) {
	switch v.Kind() {
	case peerdisc.KindText, peerdisc.KindSymbol:
		text, _ := peerdisc.ToText(v) // cannot fail for these kinds
		segments := strings.Split(text, ":")
		return peerdisc.ToInteger(peerdisc.Text(segments[len(segments)-1]))
	default:
		return peerdisc.ToInteger(v)
	}
}
