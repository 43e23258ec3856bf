package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const serviceName = "ghdashboard.v1.Dashboard"

// DashboardServer is the server API for Dashboard service, see dashboard.proto.
type DashboardServer interface {
	CreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetState(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Search(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleRepository(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(DashboardServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var dashboardServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DashboardServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc("CreateSession", DashboardServer.CreateSession),
		methodDesc("GetState", DashboardServer.GetState),
		methodDesc("Search", DashboardServer.Search),
		methodDesc("ToggleRepository", DashboardServer.ToggleRepository),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dashboard.proto",
}

// RegisterDashboardServer registers Dashboard service implementation.
func RegisterDashboardServer(s grpc.ServiceRegistrar, srv DashboardServer) {
	s.RegisterService(&dashboardServiceDesc, srv)
}

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DashboardServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(DashboardServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string {
	return "/" + serviceName + "/" + name
}

// DashboardClient is the client API for Dashboard service.
type DashboardClient struct {
	cc grpc.ClientConnInterface
}

// NewDashboardClient creates new DashboardClient instance.
func NewDashboardClient(cc grpc.ClientConnInterface) *DashboardClient {
	return &DashboardClient{cc: cc}
}

// CreateSession starts new session. Reply contains session "id".
func (c *DashboardClient) CreateSession(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out, err := c.invoke(ctx, "CreateSession", map[string]interface{}{}, opts...)
	if err != nil {
		return "", err
	}

	return out.GetFields()["id"].GetStringValue(), nil
}

// GetState returns session state view.
func (c *DashboardClient) GetState(ctx context.Context, session string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetState", map[string]interface{}{
		fieldSession: session,
	}, opts...)
}

// Search searches user in session and returns session state view.
func (c *DashboardClient) Search(
	ctx context.Context,
	session string,
	username string,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, "Search", map[string]interface{}{
		fieldSession:  session,
		fieldUsername: username,
	}, opts...)
}

// ToggleRepository expands or collapses repository and returns session state view.
func (c *DashboardClient) ToggleRepository(
	ctx context.Context,
	session string,
	repoID int64,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, "ToggleRepository", map[string]interface{}{
		fieldSession: session,
		fieldRepoID:  repoID,
	}, opts...)
}

func (c *DashboardClient) invoke(
	ctx context.Context,
	method string,
	fields map[string]interface{},
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
