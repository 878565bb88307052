package evt

import (
	"github.com/asaskevich/EventBus"
)

const (
	// ResourceDecoded fires after a blob is successfully decoded. Parameter: record count.
	ResourceDecoded = "resource:decoded"

	// ResourceDecodeFailed fires when a blob fails to decode. Parameter: error.
	ResourceDecodeFailed = "resource:decodeFailed"

	// ResourceComposed fires after to_dns produces a message. Parameter: query name, qtype.
	ResourceComposed = "resource:composed"

	// CacheHit fires when Decode is served from the decode cache. Parameter: digest.
	CacheHit = "resource:cacheHit"

	// CacheMiss fires when Decode falls through to a fresh parse. Parameter: digest.
	CacheMiss = "resource:cacheMiss"
)

// nolint
var evtBus = EventBus.New()

// Bus returns the global bus instance.
func Bus() EventBus.Bus {
	return evtBus
}
