// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zivi-portal/internal/metrics"
	"github.com/MKhiriev/zivi-portal/models"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	router, m := newMockedHandler(t)
	m.signedInAs(anna)
	m.bulletin.EXPECT().ViewPost(gomock.Any(), anna, gomock.Any()).Return(models.Post{}, nil).Times(2)

	counter := metrics.RequestTotal.WithLabelValues(http.MethodPost, "/api/bulletin/{id}/view", "200")
	before := testutil.ToFloat64(counter)

	serve(t, router, http.MethodPost, "/api/bulletin/p-1/view", validToken, nil)
	serve(t, router, http.MethodPost, "/api/bulletin/p-2/view", validToken, nil)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestWithMetrics_SkipsScrapes(t *testing.T) {
	router, _ := newMockedHandler(t)

	counter := metrics.RequestTotal.WithLabelValues(http.MethodGet, metricsPath, "200")
	before := testutil.ToFloat64(counter)

	rr := serve(t, router, http.MethodGet, metricsPath, "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, before, testutil.ToFloat64(counter))
}
