// Package web streams the frames of a display.Framebuffer to browsers
// over websockets.
package web

import (
	"bytes"
	"context"
	"encoding/binary"
	"net/http"
	"sync"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gbvideo/internal/ppu"
	"github.com/thelolagemann/gbvideo/internal/types"
	"github.com/thelolagemann/gbvideo/pkg/display"
	"github.com/thelolagemann/gbvideo/pkg/log"
	"github.com/thelolagemann/gbvideo/pkg/utils"
)

// Hub tracks the connected clients and broadcasts frames to them.
type Hub struct {
	clients              map[*Client]bool
	broadcast            chan []byte
	register, unregister chan *Client
	done                 chan struct{}

	renderer *ppu.Renderer
	log      log.Logger

	compression  bool
	quality      int
	frames       *cache
	currentFrame []byte
	currentHash  uint64
	title        string
	currentID    uint8

	mu sync.Mutex
}

// Opt configures a Hub.
type Opt func(h *Hub)

// WithCompression enables brotli compression of frames at the given
// quality (0-11).
func WithCompression(quality int) Opt {
	return func(h *Hub) {
		h.compression = true
		h.quality = clampQuality(quality)
	}
}

// WithCacheSize sets the number of frames clients are asked to cache.
func WithCacheSize(n int) Opt {
	return func(h *Hub) {
		h.frames = newCache(n)
	}
}

// WithRenderer lets clients toggle the layers of r.
func WithRenderer(r *ppu.Renderer) Opt {
	return func(h *Hub) {
		h.renderer = r
	}
}

// WithLogger sets the logger of the hub.
func WithLogger(l log.Logger) Opt {
	return func(h *Hub) {
		h.log = l
	}
}

// NewHub returns a hub with no clients. Run must be called for it to
// accept any.
func NewHub(opts ...Opt) *Hub {
	h := &Hub{
		clients:      make(map[*Client]bool),
		broadcast:    make(chan []byte, 16),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		done:         make(chan struct{}),
		log:          log.NewNullLogger(),
		quality:      7,
		frames:       newCache(64),
		currentFrame: make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run handles client registration and broadcasting until ctx is
// cancelled.
func (h *Hub) Run(ctx context.Context) {
	t := time.NewTicker(time.Second)
	defer func() {
		t.Stop()
		close(h.done)
		for c := range h.clients {
			delete(h.clients, c)
			close(c.Send)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = true
			h.log.Infof("web: client %d connected from %s", c.ID, c.Metadata.RemoteAddr)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; !ok {
				continue
			}
			delete(h.clients, c)
			close(c.Send)
			h.log.Infof("web: client %d disconnected after %s", c.ID, time.Since(c.connectedAt).Round(time.Second))

			// notify connected clients that this client has disconnected
			h.send([]byte{ClientClosing, c.ID})
		case msg := <-h.broadcast:
			h.send(msg)
		case <-t.C:
			// periodic latency updates
			var data []byte
			for c := range h.clients {
				data = append(data, c.ID)
				data = binary.LittleEndian.AppendUint16(data, uint16(c.latency.Load()))
			}
			h.send(append([]byte{ServerInfo}, data...))
		}
	}
}

// send delivers msg to every client, dropping those that can't keep up.
func (h *Hub) send(msg []byte) {
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			h.log.Warnf("web: dropping slow client %d", c.ID)
			close(c.Send)
			delete(h.clients, c)
		}
	}
}

// queue hands msg to Run for broadcasting.
func (h *Hub) queue(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// ServeHTTP upgrades the request to a websocket connection and
// registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	// queue the initial state before the hub can broadcast to the client
	c := h.newClient(conn, r)
	h.sync(c)

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
}

// newClient creates a new client for conn.
func (h *Hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.currentID++
	c := &Client{
		hub:         h,
		conn:        conn,
		Send:        make(chan []byte, 256),
		ID:          h.currentID,
		connectedAt: time.Now(),
	}
	c.Metadata.RemoteAddr = r.RemoteAddr
	c.Metadata.UserAgent = r.Header.Get("User-Agent")
	return c
}

// sync sends the hub status, the frame cache and the current frame to a
// newly connected client.
func (h *Hub) sync(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msgs := [][]byte{{ClientInfo, h.info()}}
	if h.title != "" {
		msgs = append(msgs, append([]byte{Title}, h.title...))
	}

	h.frames.RLock()
	data := []byte{FrameCacheSync}
	for i, e := range h.frames.entries {
		if e.data == nil {
			continue
		}
		data = binary.LittleEndian.AppendUint16(data, uint16(i))
		data = append(data, e.flags)
		data = binary.LittleEndian.AppendUint32(data, uint32(len(e.data)))
		data = append(data, e.data...)
	}
	h.frames.RUnlock()
	msgs = append(msgs, data)

	frame, flags, err := h.encode(h.currentFrame)
	if err != nil {
		h.log.Errorf("web: encoding sync frame: %v", err)
	} else {
		msgs = append(msgs, append([]byte{FrameSync, flags}, frame...))
	}

	for _, msg := range msgs {
		select {
		case c.Send <- msg:
		default:
			return
		}
	}
}

// Publish broadcasts a packed RGB frame, as produced by
// display.Framebuffer, to every client. Frames identical to the last
// one are skipped, and frames still in the cache are sent by index.
func (h *Hub) Publish(frame []byte) {
	if len(frame) != display.FrameSize {
		h.log.Warnf("web: ignoring frame of %d bytes", len(frame))
		return
	}

	h.mu.Lock()
	for i := 0; i < len(frame)/3; i++ {
		copy(h.currentFrame[i*4:], frame[i*3:i*3+3])
		h.currentFrame[i*4+3] = 0xFF
	}
	hash := xxhash.Sum64(h.currentFrame)
	if hash == h.currentHash {
		h.mu.Unlock()
		return
	}
	h.currentHash = hash

	var msg []byte
	h.frames.Lock()
	if idx, ok := h.frames.index(hash); ok {
		msg = binary.LittleEndian.AppendUint16([]byte{FrameCache}, uint16(idx))
	} else if output, flags, err := h.encode(h.currentFrame); err != nil {
		h.log.Errorf("web: encoding frame: %v", err)
	} else {
		idx := h.frames.add(hash, flags, output)
		msg = binary.LittleEndian.AppendUint16([]byte{Frame, flags}, uint16(idx))
		msg = append(msg, output...)
	}
	h.frames.Unlock()
	h.mu.Unlock()

	if msg != nil {
		h.queue(msg)
	}
}

// SetTitle describes what is being displayed to every client.
func (h *Hub) SetTitle(title string) {
	h.mu.Lock()
	h.title = title
	h.mu.Unlock()
	h.queue(append([]byte{Title}, title...))
}

// encode returns data as it should be sent to clients. Must be called
// with h.mu held.
func (h *Hub) encode(data []byte) ([]byte, uint8, error) {
	if !h.compression {
		return append([]byte(nil), data...), 0, nil
	}

	var b bytes.Buffer
	w := brotli.NewWriterLevel(&b, h.quality)
	if _, err := w.Write(data); err != nil {
		return nil, 0, err
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return b.Bytes(), FlagBrotli, nil
}

// setting applies a System message from a client.
func (h *Hub) setting(e Event, value uint8) {
	h.mu.Lock()
	switch e {
	case Compression:
		h.compression = value == 1
	case CompressionLevel:
		h.quality = clampQuality(int(value))
	case KeepAlive:
		h.mu.Unlock()
		return
	}
	info := h.info()
	h.mu.Unlock()

	h.queue([]byte{ClientInfo, info})
}

// toggle applies a Layer message from a client.
func (h *Hub) toggle(layer uint8, enabled bool) {
	if h.renderer == nil {
		return
	}

	switch layer {
	case BackgroundLayer:
		h.renderer.Debug.BackgroundDisabled.Store(!enabled)
	case WindowLayer:
		h.renderer.Debug.WindowDisabled.Store(!enabled)
	case SpritesLayer:
		h.renderer.Debug.SpritesDisabled.Store(!enabled)
	default:
		return
	}

	h.mu.Lock()
	info := h.info()
	h.mu.Unlock()
	h.queue([]byte{ClientInfo, info})
}

// info returns a byte of information containing the various
// hub settings. The byte is constructed as follows:
//
//	Bit 0: Compression enabled
//	Bit 1: Background disabled
//	Bit 2: Window disabled
//	Bit 3: Sprites disabled
func (h *Hub) info() byte {
	var info uint8
	if h.compression {
		info |= types.Bit0
	}
	if h.renderer != nil {
		if h.renderer.Debug.BackgroundDisabled.Load() {
			info |= types.Bit1
		}
		if h.renderer.Debug.WindowDisabled.Load() {
			info |= types.Bit2
		}
		if h.renderer.Debug.SpritesDisabled.Load() {
			info |= types.Bit3
		}
	}

	return info
}

func clampQuality(q int) int {
	return utils.Clamp(brotli.BestSpeed, q, brotli.BestCompression)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
