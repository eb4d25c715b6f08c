package main

import (
	"context"
	"time"

	"plen2-go/services/system"
	"plen2-go/services/system/inputio"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[plen2] boot")

	sys, err := system.NewDefault(nil)
	if err != nil {
		println("[plen2] FAIL: platform:", err.Error())
		halt()
	}
	sys.TimerAttach()
	sys.Dump()

	ctx := context.Background()
	pump := inputio.New(8)
	pump.Start(ctx, inputio.Config{
		Input:     func() inputio.Port { return sys.InputChannel() },
		Mode:      "lines",
		MaxFrame:  128,
		IdleFlush: 100 * time.Millisecond,
		Poll:      2 * time.Millisecond,
	})

	link := time.NewTicker(250 * time.Millisecond)
	defer link.Stop()

	out := sys.OutputChannel()
	for {
		select {
		case ev := <-pump.Events():
			// Echo framed input back on the output channel.
			_, _ = out.Write([]byte(ev.Channel + "> "))
			_, _ = out.Write(ev.Data)
			_, _ = out.Write([]byte("\r\n"))
		case <-link.C:
			if sys.FollowTraffic() {
				println("Info: input now", sys.Input().String())
			}
		}
	}
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
