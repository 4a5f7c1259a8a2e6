package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	requests := HTTPRequestsTotal.WithLabelValues("GET", "/articles/:id", "200")
	before := testutil.ToFloat64(requests)

	RecordHTTPRequest("GET", "/articles/:id", "200", 15*time.Millisecond, 0, 256)

	assert.Equal(t, before+1, testutil.ToFloat64(requests))
	assert.True(t, HTTPResponseSize.DeleteLabelValues("GET", "/articles/:id"), "response size observed")
}

func TestRecordHTTPRequest_SkipsEmptyBodies(t *testing.T) {
	RecordHTTPRequest("DELETE", "/children/:id", "204", time.Millisecond, 0, 0)

	// 0 バイトのボディはサイズヒストグラムに系列を作らない
	assert.False(t, HTTPRequestSize.DeleteLabelValues("DELETE", "/children/:id"))
	assert.False(t, HTTPResponseSize.DeleteLabelValues("DELETE", "/children/:id"))
	assert.True(t, HTTPRequestsTotal.DeleteLabelValues("DELETE", "/children/:id", "204"))
}
