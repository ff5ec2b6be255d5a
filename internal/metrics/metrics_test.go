package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBrowse(t *testing.T) {
	before := testutil.ToFloat64(BrowseRequests.WithLabelValues("videos"))

	ObserveBrowse("videos", 3, 2*time.Millisecond)
	ObserveBrowse("videos", 0, time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(BrowseRequests.WithLabelValues("videos")))
}

func TestObserveMutation(t *testing.T) {
	ok := Mutations.WithLabelValues("ads", "create", "ok")
	failed := Mutations.WithLabelValues("ads", "create", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	ObserveMutation("ads", "create", nil)
	ObserveMutation("ads", "create", errors.New("boom"))
	ObserveMutation("ads", "create", nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}
