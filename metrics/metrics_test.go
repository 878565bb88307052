package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nodarii/hnsresource/config"
	"github.com/nodarii/hnsresource/evt"
	"github.com/nodarii/hnsresource/metrics"
)

func Test_StartDisabled_DoesNotEnable(t *testing.T) {
	metrics.Start(config.Metrics{Enable: false})
	assert.False(t, metrics.IsEnabled())
}

func Test_StartEnabled_Enables(t *testing.T) {
	metrics.Start(config.Metrics{Enable: true, Path: "/metrics"})
	assert.True(t, metrics.IsEnabled())
}

func Test_DecodedEvent_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		evt.Bus().Publish(evt.ResourceDecoded, 3)
	})
}
