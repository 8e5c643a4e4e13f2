package dispatcher

import (
	"fmt"
	"time"

	"github.com/arthur-debert/guess/pkg/interpreters"
	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

// plausible applies the unforced range filters. The reason is only
// meaningful when the interpretation is rejected.
func plausible(in types.Interpretation, h recognizer.Hints, s interpreters.Settings) (string, bool) {
	switch in.Domain {
	case types.DomainTimestamp:
		t, ok := in.Value.(time.Time)
		if !ok {
			return "not a time", false
		}
		if y := t.UTC().Year(); y < s.MinYear || y > s.MaxYear {
			return fmt.Sprintf("year %d outside %d-%d", y, s.MinYear, s.MaxYear), false
		}
	case types.DomainPermission:
		m, ok := in.Value.(interpreters.Mode)
		if !ok || m > interpreters.MaxPermission {
			return "mode outside 0-511", false
		}
	case types.DomainByteSize:
		n, ok := in.Value.(uint64)
		if !ok {
			return "not a byte count", false
		}
		if h.ByteUnit == "" && n < s.MinByteCount {
			return fmt.Sprintf("bare count below %d", s.MinByteCount), false
		}
	}
	return "", true
}
