package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openrelief/relief-api/schema"
)

func TestDistance(t *testing.T) {
	taipei := schema.Location{Latitude: 25.0330, Longitude: 121.5654}
	kaohsiung := schema.Location{Latitude: 22.6273, Longitude: 120.3014}

	assert.Zero(t, Distance(taipei, taipei))

	d := Distance(taipei, kaohsiung)
	assert.InDelta(t, 295, d, 10)

	// distance is symmetric
	assert.InDelta(t, d, Distance(kaohsiung, taipei), 1e-9)
}
