package client

import (
	internalhttp "github.com/k5ops/k5go/internal/http"
	"github.com/k5ops/k5go/pkg/k5"
)

const testProjectID = "test-project-id"

// newTestClient builds a full client with every service endpoint pointed at
// the same test server. No token manager is attached.
func newTestClient(serverURL string) *Client {
	client := &Client{
		endpoints: &k5.Endpoints{
			Identity:     serverURL,
			Networking:   serverURL,
			NetworkingEx: serverURL,
			Image:        serverURL,
			BlockStorage: serverURL,
			ImportExport: serverURL,
			VMImport:     serverURL,
		},
		projectID: testProjectID,
	}

	client.networking = internalhttp.NewClient(serverURL, nil)
	client.networkingEx = internalhttp.NewClient(serverURL, nil)
	client.image = internalhttp.NewClient(serverURL, nil)
	client.blockStorage = internalhttp.NewClient(serverURL, nil)
	client.importExport = internalhttp.NewClient(serverURL, nil)
	client.vmImport = internalhttp.NewClient(serverURL, nil)

	client.initializeResourceClients()

	return client
}
