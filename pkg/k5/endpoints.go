package k5

import "fmt"

const endpointDomain = "cloud.global.fujitsu.com"

// Endpoints holds the base URL for each K5 service family. All fields are
// plain https base URLs without a trailing slash; API version prefixes are
// added by the resource clients.
type Endpoints struct {
	// Identity serves token acquisition (identity v3).
	Identity string `json:"identity" yaml:"identity"`
	// Networking serves networks, subnets, ports, routers, security
	// groups, floating IPs, and network connectors (networking v2.0).
	Networking string `json:"networking" yaml:"networking"`
	// NetworkingEx serves the cross-project router interface extension.
	NetworkingEx string `json:"networking_ex" yaml:"networking_ex"`
	// Image serves the image registry (image v2).
	Image string `json:"image" yaml:"image"`
	// BlockStorage serves volumes, with project-scoped paths (v2).
	BlockStorage string `json:"block_storage" yaml:"block_storage"`
	// ImportExport accepts image export requests (v1).
	ImportExport string `json:"import_export" yaml:"import_export"`
	// VMImport serves export status and the import queue (v1).
	VMImport string `json:"vm_import" yaml:"vm_import"`
}

// EndpointsForRegion returns the standard service endpoints for a K5
// region, for example "fi-1" or "uk-1".
func EndpointsForRegion(region string) *Endpoints {
	return &Endpoints{
		Identity:     serviceURL("identity", region),
		Networking:   serviceURL("networking", region),
		NetworkingEx: serviceURL("networking-ex", region),
		Image:        serviceURL("image", region),
		BlockStorage: serviceURL("blockstorage", region),
		ImportExport: serviceURL("import-export", region),
		VMImport:     serviceURL("vmimport", region),
	}
}

func serviceURL(service, region string) string {
	return fmt.Sprintf("https://%s.%s.%s", service, region, endpointDomain)
}
