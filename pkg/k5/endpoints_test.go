package k5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsForRegion(t *testing.T) {
	endpoints := EndpointsForRegion("fi-1")
	require.NotNil(t, endpoints)

	assert.Equal(t, "https://identity.fi-1.cloud.global.fujitsu.com", endpoints.Identity)
	assert.Equal(t, "https://networking.fi-1.cloud.global.fujitsu.com", endpoints.Networking)
	assert.Equal(t, "https://networking-ex.fi-1.cloud.global.fujitsu.com", endpoints.NetworkingEx)
	assert.Equal(t, "https://image.fi-1.cloud.global.fujitsu.com", endpoints.Image)
	assert.Equal(t, "https://blockstorage.fi-1.cloud.global.fujitsu.com", endpoints.BlockStorage)
	assert.Equal(t, "https://import-export.fi-1.cloud.global.fujitsu.com", endpoints.ImportExport)
	assert.Equal(t, "https://vmimport.fi-1.cloud.global.fujitsu.com", endpoints.VMImport)
}

func TestEndpointsForRegion_VariesByRegion(t *testing.T) {
	uk := EndpointsForRegion("uk-1")
	assert.Equal(t, "https://networking.uk-1.cloud.global.fujitsu.com", uk.Networking)
}
