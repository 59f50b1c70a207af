package web

// Message prefixes sent by clients.
const (
	// Layer toggles a layer of the renderer: [Layer, layer, enabled].
	Layer uint8 = 9
	// System changes a setting of the hub: [System, Event, value].
	System uint8 = 10
)

// Event is a setting changed by a System message.
type Event = uint8

const (
	_ Event = iota
	Compression
	CompressionLevel
	KeepAlive = 254
	Closing   = 255
)

// Layers that can be toggled by a Layer message.
const (
	BackgroundLayer uint8 = iota
	WindowLayer
	SpritesLayer
)

// Type is the type of a message sent by the hub.
type Type = uint8

const (
	// Frame carries a new frame: [Frame, flags, index(2), data].
	Frame Type = iota
	// FrameCache repeats a cached frame: [FrameCache, index(2)].
	FrameCache
	// FrameSync carries the current frame to a new client:
	// [FrameSync, flags, data].
	FrameSync
	// FrameCacheSync carries the frame cache to a new client, as
	// repeated [index(2), flags, length(4), data] entries.
	FrameCacheSync
	// ClientInfo carries the hub's status byte: [ClientInfo, info].
	ClientInfo
	// ClientClosing announces a client leaving: [ClientClosing, ID].
	ClientClosing
	// ServerInfo carries each client's latency as repeated
	// [ID, latency in ms(2)] entries.
	ServerInfo
	// Title carries a description of what is displayed.
	Title
)

// Frame flags.
const (
	// FlagBrotli marks brotli compressed frame data.
	FlagBrotli uint8 = 1 << iota
)
