package k5

import (
	"context"
	"net/netip"
	"time"
)

// NetworksClient provides access to virtual network operations.
type NetworksClient interface {
	Create(ctx context.Context, request *NetworkCreateRequest) (*Network, error)
	List(ctx context.Context, params *QueryParams) ([]Network, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, networkID string) error
}

// SubnetsClient provides access to subnet operations.
type SubnetsClient interface {
	Create(ctx context.Context, request *SubnetCreateRequest) (*Subnet, error)
	List(ctx context.Context, params *QueryParams) ([]Subnet, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, subnetID string) error
}

// PortsClient provides access to port operations.
type PortsClient interface {
	Create(ctx context.Context, request *PortCreateRequest) (*Port, error)
	List(ctx context.Context, params *QueryParams) ([]Port, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, portID string) error
}

// RouterInterfaceRequest selects the interface to attach or detach.
// Exactly one of SubnetID and PortID must be set; the selection is
// validated locally before any request is issued.
type RouterInterfaceRequest struct {
	SubnetID string
	PortID   string
}

// RoutersClient provides access to router operations, including the
// cross-project interface extension.
type RoutersClient interface {
	Create(ctx context.Context, request *RouterCreateRequest) (*Router, error)
	List(ctx context.Context, params *QueryParams) ([]Router, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	Update(ctx context.Context, routerID string, request *RouterUpdateRequest) (*Router, error)
	Delete(ctx context.Context, routerID string) error
	AddInterface(ctx context.Context, routerID string, request *RouterInterfaceRequest) (*RouterInterface, error)
	RemoveInterface(ctx context.Context, routerID string, request *RouterInterfaceRequest) (*RouterInterface, error)
	AddCrossProjectInterface(ctx context.Context, routerID, portID string) (*RouterInterface, error)
	RemoveCrossProjectInterface(ctx context.Context, routerID, portID string) (*RouterInterface, error)
	UpdateRoutes(ctx context.Context, routerID string, routes []HostRoute) (string, error)
}

// SecurityGroupsClient provides access to security group operations.
type SecurityGroupsClient interface {
	Create(ctx context.Context, request *SecurityGroupCreateRequest) (*SecurityGroup, error)
	List(ctx context.Context, params *QueryParams) ([]SecurityGroup, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, securityGroupID string) error
	CreateRule(ctx context.Context, request *SecurityGroupRuleCreateRequest) (*SecurityGroupRule, error)
}

// FloatingIPsClient provides access to floating IP operations.
type FloatingIPsClient interface {
	AttachToPort(ctx context.Context, request *FloatingIPCreateRequest) (*FloatingIP, error)
	List(ctx context.Context, params *QueryParams) ([]FloatingIP, error)
}

// NetworkConnectorsClient provides access to cross-project network
// connector and connector endpoint operations.
type NetworkConnectorsClient interface {
	Create(ctx context.Context, name string) (*NetworkConnector, error)
	List(ctx context.Context, params *QueryParams) ([]NetworkConnector, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, connectorID string) error
	CreateEndpoint(ctx context.Context, az, name, connectorID string) (*NetworkConnectorEndpoint, error)
	ListEndpoints(ctx context.Context, params *QueryParams) ([]NetworkConnectorEndpoint, error)
	GetEndpointIDByName(ctx context.Context, name string) (string, error)
	GetEndpointInfo(ctx context.Context, endpointID string) (*NetworkConnectorEndpoint, error)
	ListEndpointInterfaces(ctx context.Context, endpointID string) ([]ConnectorEndpointInterface, error)
	ConnectEndpoint(ctx context.Context, endpointID, portID string) error
	DisconnectEndpoint(ctx context.Context, endpointID, portID string) error
	DeleteEndpoint(ctx context.Context, endpointID string) error
}

// ImagesClient provides access to image registry, sharing, and export
// operations.
type ImagesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Image, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	GetInfo(ctx context.Context, imageID string) (*Image, error)
	Share(ctx context.Context, projectID, imageID string) (*ImageMember, error)
	AcceptShare(ctx context.Context, projectID, imageID string) (*ImageMember, error)
	Export(ctx context.Context, imageID, containerName string) (*ImageExport, error)
	ExportStatus(ctx context.Context, exportID string) (*ImageExportStatus, error)
	ImportQueueStatus(ctx context.Context) (*ImageImportQueueStatus, error)
}

// VolumesClient provides access to block storage volume operations.
type VolumesClient interface {
	GetInfo(ctx context.Context, volumeID string) (*Volume, error)
	CloneToImage(ctx context.Context, volumeID, imageName string) (*VolumeUploadImage, error)
}

// Client is the composite interface over all resource clients.
type Client interface {
	Networks() NetworksClient
	Subnets() SubnetsClient
	Ports() PortsClient
	Routers() RoutersClient
	SecurityGroups() SecurityGroupsClient
	FloatingIPs() FloatingIPsClient
	NetworkConnectors() NetworkConnectorsClient
	Images() ImagesClient
	Volumes() VolumesClient

	// FindFreeIP returns the numerically lowest unallocated host address
	// in the selected subnet that is strictly above the network address
	// plus the query offset. The result is a point-in-time snapshot: no
	// reservation is made and concurrent allocation by other callers can
	// race with it.
	FindFreeIP(ctx context.Context, query FreeIPQuery) (netip.Addr, error)

	// ProjectID returns the project scope the client operates in.
	ProjectID() string
}

// Logger is the structured logging interface consumed by the transport
// layer. The sink's configuration is entirely the caller's concern.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a k5.Client.
//
// Authentication: provide either ProjectToken (a pre-acquired token used
// as-is) or Username/Password/Domain/ProjectName, in which case the client
// obtains and renews tokens from the identity service. ProjectID is
// required for block storage operations; with password authentication it
// is discovered during the token exchange when left empty.
//
// Requests are issued once, without retries, unless RetryMax opts in.
// Per-request deadlines should be controlled through the context passed to
// client methods; HTTPTimeout caps each underlying HTTP call.
type Config struct {
	// Region selects the K5 region whose service endpoints are used,
	// for example "fi-1".
	Region string

	// ProjectID scopes block storage paths and connector creation.
	ProjectID string

	// ProjectToken is a pre-acquired token, used as-is when set.
	ProjectToken string

	// Username, Password, Domain, and ProjectName drive the identity v3
	// password exchange when ProjectToken is empty.
	Username    string
	Password    string
	Domain      string
	ProjectName string

	// Endpoints overrides the per-region service endpoints. Intended for
	// tests and private deployments.
	Endpoints *Endpoints

	// HTTPTimeout caps each underlying HTTP call. Zero means no cap.
	HTTPTimeout time.Duration

	// RetryMax enables transparent retries for transient failures when
	// greater than zero. Retries are off by default.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging when Logger is set.
	Debug bool

	// Logger receives failure diagnostics from the transport layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
