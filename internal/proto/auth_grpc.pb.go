// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: auth.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	UnivErpAuthService_Login_FullMethodName              = "/univerp.auth.UnivErpAuthService/Login"
	UnivErpAuthService_ChangePassword_FullMethodName     = "/univerp.auth.UnivErpAuthService/ChangePassword"
	UnivErpAuthService_RegisterUser_FullMethodName       = "/univerp.auth.UnivErpAuthService/RegisterUser"
	UnivErpAuthService_SetMaintenanceMode_FullMethodName = "/univerp.auth.UnivErpAuthService/SetMaintenanceMode"
	UnivErpAuthService_GetMaintenanceMode_FullMethodName = "/univerp.auth.UnivErpAuthService/GetMaintenanceMode"
	UnivErpAuthService_Ping_FullMethodName               = "/univerp.auth.UnivErpAuthService/Ping"
)

// UnivErpAuthServiceClient is the client API for UnivErpAuthService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type UnivErpAuthServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error)
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	SetMaintenanceMode(ctx context.Context, in *SetMaintenanceModeRequest, opts ...grpc.CallOption) (*SetMaintenanceModeResponse, error)
	GetMaintenanceMode(ctx context.Context, in *GetMaintenanceModeRequest, opts ...grpc.CallOption) (*GetMaintenanceModeResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type univErpAuthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUnivErpAuthServiceClient(cc grpc.ClientConnInterface) UnivErpAuthServiceClient {
	return &univErpAuthServiceClient{cc}
}

func (c *univErpAuthServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, UnivErpAuthService_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *univErpAuthServiceClient) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ChangePasswordResponse)
	err := c.cc.Invoke(ctx, UnivErpAuthService_ChangePassword_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *univErpAuthServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterUserResponse)
	err := c.cc.Invoke(ctx, UnivErpAuthService_RegisterUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *univErpAuthServiceClient) SetMaintenanceMode(ctx context.Context, in *SetMaintenanceModeRequest, opts ...grpc.CallOption) (*SetMaintenanceModeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetMaintenanceModeResponse)
	err := c.cc.Invoke(ctx, UnivErpAuthService_SetMaintenanceMode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *univErpAuthServiceClient) GetMaintenanceMode(ctx context.Context, in *GetMaintenanceModeRequest, opts ...grpc.CallOption) (*GetMaintenanceModeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMaintenanceModeResponse)
	err := c.cc.Invoke(ctx, UnivErpAuthService_GetMaintenanceMode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *univErpAuthServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, UnivErpAuthService_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnivErpAuthServiceServer is the server API for UnivErpAuthService service.
// All implementations must embed UnimplementedUnivErpAuthServiceServer
// for forward compatibility.
type UnivErpAuthServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error)
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	SetMaintenanceMode(context.Context, *SetMaintenanceModeRequest) (*SetMaintenanceModeResponse, error)
	GetMaintenanceMode(context.Context, *GetMaintenanceModeRequest) (*GetMaintenanceModeResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	mustEmbedUnimplementedUnivErpAuthServiceServer()
}

// UnimplementedUnivErpAuthServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUnivErpAuthServiceServer struct{}

func (UnimplementedUnivErpAuthServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedUnivErpAuthServiceServer) ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangePassword not implemented")
}
func (UnimplementedUnivErpAuthServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedUnivErpAuthServiceServer) SetMaintenanceMode(context.Context, *SetMaintenanceModeRequest) (*SetMaintenanceModeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetMaintenanceMode not implemented")
}
func (UnimplementedUnivErpAuthServiceServer) GetMaintenanceMode(context.Context, *GetMaintenanceModeRequest) (*GetMaintenanceModeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMaintenanceMode not implemented")
}
func (UnimplementedUnivErpAuthServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedUnivErpAuthServiceServer) mustEmbedUnimplementedUnivErpAuthServiceServer() {}
func (UnimplementedUnivErpAuthServiceServer) testEmbeddedByValue()                            {}

// UnsafeUnivErpAuthServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UnivErpAuthServiceServer will
// result in compilation errors.
type UnsafeUnivErpAuthServiceServer interface {
	mustEmbedUnimplementedUnivErpAuthServiceServer()
}

func RegisterUnivErpAuthServiceServer(s grpc.ServiceRegistrar, srv UnivErpAuthServiceServer) {
	// If the following call pancis, it indicates UnimplementedUnivErpAuthServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UnivErpAuthService_ServiceDesc, srv)
}

func _UnivErpAuthService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnivErpAuthServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnivErpAuthService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnivErpAuthServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnivErpAuthService_ChangePassword_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangePasswordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnivErpAuthServiceServer).ChangePassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnivErpAuthService_ChangePassword_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnivErpAuthServiceServer).ChangePassword(ctx, req.(*ChangePasswordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnivErpAuthService_RegisterUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnivErpAuthServiceServer).RegisterUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnivErpAuthService_RegisterUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnivErpAuthServiceServer).RegisterUser(ctx, req.(*RegisterUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnivErpAuthService_SetMaintenanceMode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetMaintenanceModeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnivErpAuthServiceServer).SetMaintenanceMode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnivErpAuthService_SetMaintenanceMode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnivErpAuthServiceServer).SetMaintenanceMode(ctx, req.(*SetMaintenanceModeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnivErpAuthService_GetMaintenanceMode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMaintenanceModeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnivErpAuthServiceServer).GetMaintenanceMode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnivErpAuthService_GetMaintenanceMode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnivErpAuthServiceServer).GetMaintenanceMode(ctx, req.(*GetMaintenanceModeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UnivErpAuthService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnivErpAuthServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UnivErpAuthService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnivErpAuthServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UnivErpAuthService_ServiceDesc is the grpc.ServiceDesc for UnivErpAuthService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UnivErpAuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "univerp.auth.UnivErpAuthService",
	HandlerType: (*UnivErpAuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Login",
			Handler:    _UnivErpAuthService_Login_Handler,
		},
		{
			MethodName: "ChangePassword",
			Handler:    _UnivErpAuthService_ChangePassword_Handler,
		},
		{
			MethodName: "RegisterUser",
			Handler:    _UnivErpAuthService_RegisterUser_Handler,
		},
		{
			MethodName: "SetMaintenanceMode",
			Handler:    _UnivErpAuthService_SetMaintenanceMode_Handler,
		},
		{
			MethodName: "GetMaintenanceMode",
			Handler:    _UnivErpAuthService_GetMaintenanceMode_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _UnivErpAuthService_Ping_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth.proto",
}
