package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionsCounter(t *testing.T) {
	before := testutil.ToFloat64(SubscriptionsTotal.WithLabelValues("created"))
	SubscriptionsTotal.WithLabelValues("created").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SubscriptionsTotal.WithLabelValues("created")))
}

func TestRequestMetricsRegistered(t *testing.T) {
	APIRequestsTotal.WithLabelValues("GET", "/api/arrondissements", "200").Inc()
	assert.GreaterOrEqual(t, testutil.CollectAndCount(APIRequestsTotal), 1)
}
