//go:build !linux

package web

import (
	"errors"
	"net"
	"time"
)

// latency is only measured on linux.
func latency(net.Conn) (time.Duration, error) {
	return 0, errors.New("web: latency unsupported")
}
