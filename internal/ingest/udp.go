package ingest

import (
	"context"
	"errors"
	"fmt"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"net"

	"go.uber.org/zap"
)

// maxDatagram is large enough for two hands in the object landmark form.
const maxDatagram = 64 * 1024

// UDPListener receives one frame per datagram.
type UDPListener struct {
	conn net.PacketConn
	recv receiver
}

// ListenUDP binds addr. Frames are submitted to sink once Serve runs.
func ListenUDP(ctx context.Context, addr string, sink Sink, m *metrics.Metrics) (*UDPListener, error) {
	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not listen on udp %s: %w", addr, err)
	}

	return &UDPListener{conn: conn, recv: newReceiver("udp", sink, m)}, nil
}

// Addr returns the bound address.
func (l *UDPListener) Addr() net.Addr { return l.conn.LocalAddr() }

// Serve reads datagrams until ctx is done or the listener is closed.
func (l *UDPListener) Serve(ctx context.Context) error {
	ctx = logger.Named(ctx, "udp")
	logger.Info(ctx, "listening for tracker frames", zap.Stringer("addr", l.Addr()))

	stop := context.AfterFunc(ctx, func() { _ = l.conn.Close() })
	defer stop()

	buf := make([]byte, maxDatagram)
	for {
		n, _, err := l.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}

			return fmt.Errorf("could not read udp datagram: %w", err)
		}
		l.recv.receive(ctx, buf[:n])
	}
}

// Close releases the socket.
func (l *UDPListener) Close() error {
	if err := l.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("could not close udp listener: %w", err)
	}

	return nil
}
