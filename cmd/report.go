package cmd

import (
	"github.com/getsentry/raven-go"

	"github.com/go-imsto/imresize/config"
)

var (
	packagePrefixes = []string{"github.com/go-imsto"}
)

func reportError(err error, tags map[string]string) {
	dsn := config.Current.SentryDSN
	if dsn == "" {
		return
	}
	if e := raven.SetDSN(dsn); e != nil {
		logger().Warnw("sentry dsn", "err", e)
		return
	}
	raven.SetTagsContext(map[string]string{"service": "imresize", "ver": config.Version})

	packet := raven.NewPacket(err.Error(),
		raven.NewException(err, raven.NewStacktrace(1, 3, packagePrefixes)))

	_, ch := raven.Capture(packet, tags)
	if ch != nil {
		if e := <-ch; e != nil {
			logger().Warnw("sentry capture", "err", e)
		}
	}
}
