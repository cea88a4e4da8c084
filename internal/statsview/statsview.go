// Package statsview serves live runtime charts of the emulator process.
package statsview

import (
	"context"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// Address is the address the stats server listens on.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Launch starts the stats server in a new goroutine. The server is stopped
// when the context is canceled.
func Launch(ctx context.Context, logger *log.Logger) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go mgr.Start()
	go func() {
		<-ctx.Done()
		mgr.Stop()
	}()

	logger.Info("Stats server available", log.String("url", "http://"+Address+url))
}
