package system

import (
	"io"

	"tinygo.org/x/drivers"
)

// SerialChannel binds one transport to one baud rate for the life of the
// process. It is a passthrough: no buffering, retry or framing.
type SerialChannel struct {
	name      string
	transport drivers.UART
	baud      uint32
}

func newSerialChannel(name string, t drivers.UART, baud uint32) SerialChannel {
	return SerialChannel{name: name, transport: t, baud: baud}
}

func (c *SerialChannel) Read(p []byte) (int, error)  { return c.transport.Read(p) }
func (c *SerialChannel) Write(p []byte) (int, error) { return c.transport.Write(p) }

func (c *SerialChannel) WriteByte(b byte) error {
	if w, ok := c.transport.(io.ByteWriter); ok {
		return w.WriteByte(b)
	}
	one := [1]byte{b}
	_, err := c.transport.Write(one[:])
	return err
}

// Available is the number of bytes readable without waiting.
func (c *SerialChannel) Available() int { return c.transport.Buffered() }

func (c *SerialChannel) BaudRate() uint32 { return c.baud }

// Name is "USB" or "WIRELESS".
func (c *SerialChannel) Name() string { return c.name }
