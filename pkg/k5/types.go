package k5

// Network represents a virtual network.
type Network struct {
	ID               string   `json:"id"                          yaml:"id"`
	Name             string   `json:"name"                        yaml:"name"`
	Status           string   `json:"status,omitempty"            yaml:"status,omitempty"`
	AdminStateUp     bool     `json:"admin_state_up"              yaml:"admin_state_up"`
	AvailabilityZone string   `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	TenantID         string   `json:"tenant_id,omitempty"         yaml:"tenant_id,omitempty"`
	Subnets          []string `json:"subnets,omitempty"           yaml:"subnets,omitempty"`
}

// NetworkCreateRequest represents a request to create a network.
type NetworkCreateRequest struct {
	Name             string `json:"name"                        yaml:"name"`
	AdminStateUp     bool   `json:"admin_state_up"              yaml:"admin_state_up"`
	AvailabilityZone string `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
}

// AllocationPool represents the start and end addresses of a subnet
// allocation pool.
type AllocationPool struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

// HostRoute represents a static route attached to a subnet or router.
type HostRoute struct {
	Destination string `json:"destination" yaml:"destination"`
	Nexthop     string `json:"nexthop"     yaml:"nexthop"`
}

// Subnet represents an IP subnet within a network.
type Subnet struct {
	ID               string           `json:"id"                          yaml:"id"`
	Name             string           `json:"name"                        yaml:"name"`
	NetworkID        string           `json:"network_id"                  yaml:"network_id"`
	CIDR             string           `json:"cidr"                        yaml:"cidr"`
	IPVersion        int              `json:"ip_version"                  yaml:"ip_version"`
	AvailabilityZone string           `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	EnableDHCP       bool             `json:"enable_dhcp"                 yaml:"enable_dhcp"`
	GatewayIP        string           `json:"gateway_ip,omitempty"        yaml:"gateway_ip,omitempty"`
	AllocationPools  []AllocationPool `json:"allocation_pools,omitempty"  yaml:"allocation_pools,omitempty"`
	DNSNameservers   []string         `json:"dns_nameservers,omitempty"   yaml:"dns_nameservers,omitempty"`
	HostRoutes       []HostRoute      `json:"host_routes,omitempty"       yaml:"host_routes,omitempty"`
	TenantID         string           `json:"tenant_id,omitempty"         yaml:"tenant_id,omitempty"`
}

// SubnetCreateRequest represents a request to create a subnet. Optional
// fields are pointers; unset fields are omitted from the serialized body
// because several endpoints reject explicit nulls with a 400.
type SubnetCreateRequest struct {
	Name             string           `json:"name,omitempty"              yaml:"name,omitempty"`
	NetworkID        string           `json:"network_id"                  yaml:"network_id"`
	CIDR             string           `json:"cidr"                        yaml:"cidr"`
	IPVersion        int              `json:"ip_version"                  yaml:"ip_version"`
	AvailabilityZone *string          `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	EnableDHCP       *bool            `json:"enable_dhcp,omitempty"       yaml:"enable_dhcp,omitempty"`
	GatewayIP        *string          `json:"gateway_ip,omitempty"        yaml:"gateway_ip,omitempty"`
	AllocationPools  []AllocationPool `json:"allocation_pools,omitempty"  yaml:"allocation_pools,omitempty"`
	DNSNameservers   []string         `json:"dns_nameservers,omitempty"   yaml:"dns_nameservers,omitempty"`
	HostRoutes       []HostRoute      `json:"host_routes,omitempty"       yaml:"host_routes,omitempty"`
}

// FixedIP represents an address binding attached to a port within a subnet.
type FixedIP struct {
	SubnetID  string `json:"subnet_id"  yaml:"subnet_id"`
	IPAddress string `json:"ip_address" yaml:"ip_address"`
}

// Port represents a network port.
type Port struct {
	ID               string    `json:"id"                          yaml:"id"`
	Name             string    `json:"name"                        yaml:"name"`
	NetworkID        string    `json:"network_id"                  yaml:"network_id"`
	Status           string    `json:"status,omitempty"            yaml:"status,omitempty"`
	AdminStateUp     bool      `json:"admin_state_up"              yaml:"admin_state_up"`
	AvailabilityZone string    `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	MACAddress       string    `json:"mac_address,omitempty"       yaml:"mac_address,omitempty"`
	FixedIPs         []FixedIP `json:"fixed_ips,omitempty"         yaml:"fixed_ips,omitempty"`
	SecurityGroups   []string  `json:"security_groups,omitempty"   yaml:"security_groups,omitempty"`
	TenantID         string    `json:"tenant_id,omitempty"         yaml:"tenant_id,omitempty"`
}

// PortCreateRequest represents a request to create a port. Fixed IPs and
// security groups are omitted entirely when unset.
type PortCreateRequest struct {
	Name             string    `json:"name,omitempty"              yaml:"name,omitempty"`
	NetworkID        string    `json:"network_id"                  yaml:"network_id"`
	AdminStateUp     bool      `json:"admin_state_up"              yaml:"admin_state_up"`
	AvailabilityZone string    `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	FixedIPs         []FixedIP `json:"fixed_ips,omitempty"         yaml:"fixed_ips,omitempty"`
	SecurityGroups   []string  `json:"security_groups,omitempty"   yaml:"security_groups,omitempty"`
}

// ExternalGatewayInfo represents a router's external network attachment.
type ExternalGatewayInfo struct {
	NetworkID string `json:"network_id" yaml:"network_id"`
}

// Router represents a virtual router.
type Router struct {
	ID                  string               `json:"id"                              yaml:"id"`
	Name                string               `json:"name"                            yaml:"name"`
	Status              string               `json:"status,omitempty"                yaml:"status,omitempty"`
	AdminStateUp        bool                 `json:"admin_state_up"                  yaml:"admin_state_up"`
	AvailabilityZone    string               `json:"availability_zone,omitempty"     yaml:"availability_zone,omitempty"`
	ExternalGatewayInfo *ExternalGatewayInfo `json:"external_gateway_info,omitempty" yaml:"external_gateway_info,omitempty"`
	Routes              []HostRoute          `json:"routes,omitempty"                yaml:"routes,omitempty"`
	TenantID            string               `json:"tenant_id,omitempty"             yaml:"tenant_id,omitempty"`
}

// RouterCreateRequest represents a request to create a router.
type RouterCreateRequest struct {
	Name             *string `json:"name,omitempty"              yaml:"name,omitempty"`
	AvailabilityZone *string `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	AdminStateUp     *bool   `json:"admin_state_up,omitempty"    yaml:"admin_state_up,omitempty"`
}

// RouterUpdateRequest represents a request to update a router.
type RouterUpdateRequest struct {
	Name                *string              `json:"name,omitempty"                  yaml:"name,omitempty"`
	AvailabilityZone    *string              `json:"availability_zone,omitempty"     yaml:"availability_zone,omitempty"`
	AdminStateUp        *bool                `json:"admin_state_up,omitempty"        yaml:"admin_state_up,omitempty"`
	ExternalGatewayInfo *ExternalGatewayInfo `json:"external_gateway_info,omitempty" yaml:"external_gateway_info,omitempty"`
	Routes              []HostRoute          `json:"routes,omitempty"                yaml:"routes,omitempty"`
}

// RouterInterface represents the result of attaching or detaching a router
// interface.
type RouterInterface struct {
	ID       string `json:"id"                  yaml:"id"`
	SubnetID string `json:"subnet_id,omitempty" yaml:"subnet_id,omitempty"`
	PortID   string `json:"port_id,omitempty"   yaml:"port_id,omitempty"`
	TenantID string `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
}

// SecurityGroup represents a security group.
type SecurityGroup struct {
	ID          string              `json:"id"                             yaml:"id"`
	Name        string              `json:"name"                           yaml:"name"`
	Description string              `json:"description,omitempty"          yaml:"description,omitempty"`
	Rules       []SecurityGroupRule `json:"security_group_rules,omitempty" yaml:"security_group_rules,omitempty"`
	TenantID    string              `json:"tenant_id,omitempty"            yaml:"tenant_id,omitempty"`
}

// SecurityGroupCreateRequest represents a request to create a security group.
type SecurityGroupCreateRequest struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// SecurityGroupRule represents a single security group rule.
type SecurityGroupRule struct {
	ID              string `json:"id"                         yaml:"id"`
	SecurityGroupID string `json:"security_group_id"          yaml:"security_group_id"`
	Direction       string `json:"direction"                  yaml:"direction"`
	EtherType       string `json:"ethertype"                  yaml:"ethertype"`
	Protocol        string `json:"protocol,omitempty"         yaml:"protocol,omitempty"`
	PortRangeMin    *int   `json:"port_range_min,omitempty"   yaml:"port_range_min,omitempty"`
	PortRangeMax    *int   `json:"port_range_max,omitempty"   yaml:"port_range_max,omitempty"`
	RemoteIPPrefix  string `json:"remote_ip_prefix,omitempty" yaml:"remote_ip_prefix,omitempty"`
	RemoteGroupID   string `json:"remote_group_id,omitempty"  yaml:"remote_group_id,omitempty"`
	TenantID        string `json:"tenant_id,omitempty"        yaml:"tenant_id,omitempty"`
}

// SecurityGroupRuleCreateRequest represents a request to create a security
// group rule. Unset optional fields never appear in the serialized body.
type SecurityGroupRuleCreateRequest struct {
	SecurityGroupID string  `json:"security_group_id"          yaml:"security_group_id"`
	Direction       string  `json:"direction"                  yaml:"direction"`
	EtherType       string  `json:"ethertype"                  yaml:"ethertype"`
	Protocol        *string `json:"protocol,omitempty"         yaml:"protocol,omitempty"`
	PortRangeMin    *int    `json:"port_range_min,omitempty"   yaml:"port_range_min,omitempty"`
	PortRangeMax    *int    `json:"port_range_max,omitempty"   yaml:"port_range_max,omitempty"`
	RemoteIPPrefix  *string `json:"remote_ip_prefix,omitempty" yaml:"remote_ip_prefix,omitempty"`
	RemoteGroupID   *string `json:"remote_group_id,omitempty"  yaml:"remote_group_id,omitempty"`
}

// FloatingIP represents a floating IP address.
type FloatingIP struct {
	ID                string `json:"id"                          yaml:"id"`
	FloatingIPAddress string `json:"floating_ip_address"         yaml:"floating_ip_address"`
	FloatingNetworkID string `json:"floating_network_id"         yaml:"floating_network_id"`
	FixedIPAddress    string `json:"fixed_ip_address,omitempty"  yaml:"fixed_ip_address,omitempty"`
	PortID            string `json:"port_id,omitempty"           yaml:"port_id,omitempty"`
	Status            string `json:"status,omitempty"            yaml:"status,omitempty"`
	AvailabilityZone  string `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	TenantID          string `json:"tenant_id,omitempty"         yaml:"tenant_id,omitempty"`
}

// FloatingIPCreateRequest represents a request to allocate a floating IP
// and attach it to a port.
type FloatingIPCreateRequest struct {
	FloatingNetworkID string `json:"floating_network_id"         yaml:"floating_network_id"`
	PortID            string `json:"port_id"                     yaml:"port_id"`
	AvailabilityZone  string `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
}

// NetworkConnector represents a cross-project network connector.
type NetworkConnector struct {
	ID          string   `json:"id"                                  yaml:"id"`
	Name        string   `json:"name"                                yaml:"name"`
	PoolID      string   `json:"network_connector_pool_id,omitempty" yaml:"network_connector_pool_id,omitempty"`
	EndpointIDs []string `json:"network_connector_endpoints,omitempty" yaml:"network_connector_endpoints,omitempty"`
	TenantID    string   `json:"tenant_id,omitempty"                 yaml:"tenant_id,omitempty"`
}

// NetworkConnectorCreateRequest represents a request to create a network
// connector.
type NetworkConnectorCreateRequest struct {
	Name     string `json:"name"      yaml:"name"`
	TenantID string `json:"tenant_id" yaml:"tenant_id"`
}

// NetworkConnectorEndpoint represents an endpoint attached to a network
// connector, bound to an availability zone.
type NetworkConnectorEndpoint struct {
	ID           string `json:"id"                   yaml:"id"`
	Name         string `json:"name"                 yaml:"name"`
	ConnectorID  string `json:"network_connector_id" yaml:"network_connector_id"`
	EndpointType string `json:"endpoint_type"        yaml:"endpoint_type"`
	Location     string `json:"location"             yaml:"location"`
	TenantID     string `json:"tenant_id,omitempty"  yaml:"tenant_id,omitempty"`
}

// NetworkConnectorEndpointCreateRequest represents a request to create a
// network connector endpoint.
type NetworkConnectorEndpointCreateRequest struct {
	Name         string `json:"name"                 yaml:"name"`
	ConnectorID  string `json:"network_connector_id" yaml:"network_connector_id"`
	EndpointType string `json:"endpoint_type"        yaml:"endpoint_type"`
	Location     string `json:"location"             yaml:"location"`
	TenantID     string `json:"tenant_id"            yaml:"tenant_id"`
}

// ConnectorEndpointInterface represents a port connected to a network
// connector endpoint.
type ConnectorEndpointInterface struct {
	PortID string `json:"port_id" yaml:"port_id"`
}

// Image represents an entry in the image registry.
type Image struct {
	ID              string `json:"id"                         yaml:"id"`
	Name            string `json:"name"                       yaml:"name"`
	Status          string `json:"status,omitempty"           yaml:"status,omitempty"`
	Visibility      string `json:"visibility,omitempty"       yaml:"visibility,omitempty"`
	ContainerFormat string `json:"container_format,omitempty" yaml:"container_format,omitempty"`
	DiskFormat      string `json:"disk_format,omitempty"      yaml:"disk_format,omitempty"`
	Size            int64  `json:"size,omitempty"             yaml:"size,omitempty"`
	Checksum        string `json:"checksum,omitempty"         yaml:"checksum,omitempty"`
	MinRAM          int    `json:"min_ram,omitempty"          yaml:"min_ram,omitempty"`
	MinDisk         int    `json:"min_disk,omitempty"         yaml:"min_disk,omitempty"`
	Owner           string `json:"owner,omitempty"            yaml:"owner,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"       yaml:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"       yaml:"updated_at,omitempty"`
}

// ImageMember represents an image share with another project.
type ImageMember struct {
	MemberID  string `json:"member_id"            yaml:"member_id"`
	ImageID   string `json:"image_id"             yaml:"image_id"`
	Status    string `json:"status"               yaml:"status"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ImageExport represents an accepted image export request.
type ImageExport struct {
	ExportID string `json:"export_id" yaml:"export_id"`
}

// ImageExportStatus represents the state of a previously requested image
// export. Polling and backoff are the caller's responsibility.
type ImageExportStatus struct {
	ExportID         string `json:"export_id,omitempty"         yaml:"export_id,omitempty"`
	ImageID          string `json:"image_id,omitempty"          yaml:"image_id,omitempty"`
	Status           string `json:"status"                      yaml:"status"`
	Progress         int    `json:"progress,omitempty"          yaml:"progress,omitempty"`
	StorageContainer string `json:"storage_container,omitempty" yaml:"storage_container,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"     yaml:"error_message,omitempty"`
}

// ImageImportQueueStatus represents the state of the image import queue.
type ImageImportQueueStatus struct {
	QueuedCount     int `json:"queued_count,omitempty"     yaml:"queued_count,omitempty"`
	ProcessingCount int `json:"processing_count,omitempty" yaml:"processing_count,omitempty"`
	SucceededCount  int `json:"succeeded_count,omitempty"  yaml:"succeeded_count,omitempty"`
	FailedCount     int `json:"failed_count,omitempty"     yaml:"failed_count,omitempty"`
}

// Volume represents a block storage volume.
type Volume struct {
	ID               string `json:"id"                          yaml:"id"`
	Name             string `json:"name,omitempty"              yaml:"name,omitempty"`
	Status           string `json:"status,omitempty"            yaml:"status,omitempty"`
	Size             int    `json:"size,omitempty"              yaml:"size,omitempty"`
	AvailabilityZone string `json:"availability_zone,omitempty" yaml:"availability_zone,omitempty"`
	VolumeType       string `json:"volume_type,omitempty"       yaml:"volume_type,omitempty"`
	Bootable         string `json:"bootable,omitempty"          yaml:"bootable,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
}

// VolumeUploadImage represents the result of cloning a volume into an image.
type VolumeUploadImage struct {
	ImageID         string `json:"image_id"                   yaml:"image_id"`
	ImageName       string `json:"image_name"                 yaml:"image_name"`
	Status          string `json:"status,omitempty"           yaml:"status,omitempty"`
	VolumeType      string `json:"volume_type,omitempty"      yaml:"volume_type,omitempty"`
	ContainerFormat string `json:"container_format,omitempty" yaml:"container_format,omitempty"`
	DiskFormat      string `json:"disk_format,omitempty"      yaml:"disk_format,omitempty"`
	Size            int    `json:"size,omitempty"             yaml:"size,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"       yaml:"updated_at,omitempty"`
}

// FreeIPQuery selects the subnet for a free address lookup. Exactly one of
// SubnetID and SubnetName must be set. Offset skips the first Offset
// addresses past the network address; the returned address is always
// strictly above network address + offset.
type FreeIPQuery struct {
	SubnetID   string `json:"subnet_id,omitempty"   yaml:"subnet_id,omitempty"`
	SubnetName string `json:"subnet_name,omitempty" yaml:"subnet_name,omitempty"`
	Offset     uint32 `json:"offset,omitempty"      yaml:"offset,omitempty"`
}
