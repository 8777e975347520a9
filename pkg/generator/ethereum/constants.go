package ethereum

const (
	// Every address string starts with this marker (go-ethereum's Address.Hex)
	addressMarker    = "0x"
	addressMarkerLen = len(addressMarker)

	// 20 bytes = 40 hex characters after the marker
	addressHexLen = 40
	addressLen    = addressMarkerLen + addressHexLen
)
