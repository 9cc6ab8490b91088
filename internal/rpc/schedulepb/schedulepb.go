// Package schedulepb carries the wire types and service descriptor of
// the schedule gRPC service. The messages travel as json via a forced
// codec, so the package stays hand-maintained instead of being
// regenerated from a proto file.
package schedulepb

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
)

type Empty struct{}

type DateRequest struct {
	Date string `json:"date"`
}

type ScheduleEntry struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

type ScheduleList struct {
	Entries []*ScheduleEntry `json:"entries"`
}

type AddScheduleRequest struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

type UpdateScheduleRequest struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

type DeleteScheduleResponse struct {
	Message      string         `json:"message"`
	DeletedEntry *ScheduleEntry `json:"deleted_entry"`
}

type Movie struct {
	Id       string  `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating"`
}

type BestRatedResponse struct {
	Date     string  `json:"date"`
	HasMovie bool    `json:"has_movie"`
	Message  string  `json:"message,omitempty"`
	Movie    *Movie  `json:"movie,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
}

// Codec marshals the messages above as json. Both ends force it:
// servers via grpc.ForceServerCodec, clients per call via
// grpc.ForceCodec.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) { return json.Marshal(v) }
func (Codec) Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
func (Codec) Name() string { return "json" }

const (
	Schedule_GetAllSchedules_FullMethodName         = "/cinebooking.Schedule/GetAllSchedules"
	Schedule_GetScheduleByDate_FullMethodName       = "/cinebooking.Schedule/GetScheduleByDate"
	Schedule_AddScheduleEntry_FullMethodName        = "/cinebooking.Schedule/AddScheduleEntry"
	Schedule_UpdateScheduleEntry_FullMethodName     = "/cinebooking.Schedule/UpdateScheduleEntry"
	Schedule_DeleteScheduleEntry_FullMethodName     = "/cinebooking.Schedule/DeleteScheduleEntry"
	Schedule_BestRatedScheduledMovie_FullMethodName = "/cinebooking.Schedule/BestRatedScheduledMovie"
)

type ScheduleClient interface {
	GetAllSchedules(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ScheduleList, error)
	GetScheduleByDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*ScheduleEntry, error)
	AddScheduleEntry(ctx context.Context, in *AddScheduleRequest, opts ...grpc.CallOption) (*ScheduleEntry, error)
	UpdateScheduleEntry(ctx context.Context, in *UpdateScheduleRequest, opts ...grpc.CallOption) (*ScheduleEntry, error)
	DeleteScheduleEntry(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*DeleteScheduleResponse, error)
	BestRatedScheduledMovie(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*BestRatedResponse, error)
}

type scheduleClient struct {
	cc grpc.ClientConnInterface
}

func NewScheduleClient(cc grpc.ClientConnInterface) ScheduleClient {
	return &scheduleClient{cc: cc}
}

func (c *scheduleClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *scheduleClient) GetAllSchedules(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ScheduleList, error) {
	out := new(ScheduleList)
	if err := c.invoke(ctx, Schedule_GetAllSchedules_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleClient) GetScheduleByDate(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*ScheduleEntry, error) {
	out := new(ScheduleEntry)
	if err := c.invoke(ctx, Schedule_GetScheduleByDate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleClient) AddScheduleEntry(ctx context.Context, in *AddScheduleRequest, opts ...grpc.CallOption) (*ScheduleEntry, error) {
	out := new(ScheduleEntry)
	if err := c.invoke(ctx, Schedule_AddScheduleEntry_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleClient) UpdateScheduleEntry(ctx context.Context, in *UpdateScheduleRequest, opts ...grpc.CallOption) (*ScheduleEntry, error) {
	out := new(ScheduleEntry)
	if err := c.invoke(ctx, Schedule_UpdateScheduleEntry_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleClient) DeleteScheduleEntry(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*DeleteScheduleResponse, error) {
	out := new(DeleteScheduleResponse)
	if err := c.invoke(ctx, Schedule_DeleteScheduleEntry_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scheduleClient) BestRatedScheduledMovie(ctx context.Context, in *DateRequest, opts ...grpc.CallOption) (*BestRatedResponse, error) {
	out := new(BestRatedResponse)
	if err := c.invoke(ctx, Schedule_BestRatedScheduledMovie_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ScheduleServer is implemented by the schedule service adapter.
type ScheduleServer interface {
	GetAllSchedules(context.Context, *Empty) (*ScheduleList, error)
	GetScheduleByDate(context.Context, *DateRequest) (*ScheduleEntry, error)
	AddScheduleEntry(context.Context, *AddScheduleRequest) (*ScheduleEntry, error)
	UpdateScheduleEntry(context.Context, *UpdateScheduleRequest) (*ScheduleEntry, error)
	DeleteScheduleEntry(context.Context, *DateRequest) (*DeleteScheduleResponse, error)
	BestRatedScheduledMovie(context.Context, *DateRequest) (*BestRatedResponse, error)
}

// RegisterScheduleServer registers srv on s. The server must be built
// with grpc.ForceServerCodec(Codec{}) so requests decode as json.
func RegisterScheduleServer(s grpc.ServiceRegistrar, srv ScheduleServer) {
	s.RegisterService(&Schedule_ServiceDesc, srv)
}

func _Schedule_GetAllSchedules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServer).GetAllSchedules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Schedule_GetAllSchedules_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScheduleServer).GetAllSchedules(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Schedule_GetScheduleByDate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServer).GetScheduleByDate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Schedule_GetScheduleByDate_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScheduleServer).GetScheduleByDate(ctx, req.(*DateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Schedule_AddScheduleEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServer).AddScheduleEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Schedule_AddScheduleEntry_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScheduleServer).AddScheduleEntry(ctx, req.(*AddScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Schedule_UpdateScheduleEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServer).UpdateScheduleEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Schedule_UpdateScheduleEntry_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScheduleServer).UpdateScheduleEntry(ctx, req.(*UpdateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Schedule_DeleteScheduleEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServer).DeleteScheduleEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Schedule_DeleteScheduleEntry_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScheduleServer).DeleteScheduleEntry(ctx, req.(*DateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Schedule_BestRatedScheduledMovie_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScheduleServer).BestRatedScheduledMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Schedule_BestRatedScheduledMovie_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScheduleServer).BestRatedScheduledMovie(ctx, req.(*DateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Schedule_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cinebooking.Schedule",
	HandlerType: (*ScheduleServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAllSchedules", Handler: _Schedule_GetAllSchedules_Handler},
		{MethodName: "GetScheduleByDate", Handler: _Schedule_GetScheduleByDate_Handler},
		{MethodName: "AddScheduleEntry", Handler: _Schedule_AddScheduleEntry_Handler},
		{MethodName: "UpdateScheduleEntry", Handler: _Schedule_UpdateScheduleEntry_Handler},
		{MethodName: "DeleteScheduleEntry", Handler: _Schedule_DeleteScheduleEntry_Handler},
		{MethodName: "BestRatedScheduledMovie", Handler: _Schedule_BestRatedScheduledMovie_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/rpc/schedulepb/schedulepb.go",
}
