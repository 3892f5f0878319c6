// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package rustgen

import "github.com/iancoleman/strcase"

// Service is the capability set a service-shaped schema entity must expose
// to be generated. The generator never depends on a concrete model type.
type Service interface {
	// Name is the service name exactly as declared in the schema.
	Name() string
	// Package is the single module-level package name the service belongs
	// to, already resolved from the schema's dotted package path.
	Package() string
	// Methods returns the service's methods in declaration order.
	Methods() []Method
}

// Method is the capability set a method-shaped schema entity must expose to
// be generated.
type Method interface {
	// Name is the Rust callable identifier for the method.
	Name() string
	// RouteName is the method name exactly as declared in the schema. Wire
	// routes are built from it; naming conventions never alter it.
	RouteName() string
	// RequestType and ResponseType are Rust type paths relative to the
	// configured proto root, e.g. "::testing::GetRequest".
	RequestType() string
	ResponseType() string
	// CodecPath is the Rust path of the codec the generated code
	// constructs for this method.
	CodecPath() string
	ClientStreaming() bool
	ServerStreaming() bool
}

// Config controls what the generator emits for each service.
type Config struct {
	// ProtoPath is the Rust path under which generated code expects the
	// request and response message types to be reachable.
	ProtoPath string
	// BuildClient and BuildServer enable each half of the output.
	BuildClient bool
	BuildServer bool
	// BuildTransport adds transport convenience constructors to generated
	// clients.
	BuildTransport bool
}

// serviceData is the template view of one service.
//
//	{
//	  Name:      "Streaming",
//	  Type:      "Streaming",
//	  ClientMod: "streaming_client",
//	  ServerMod: "streaming_server",
//	  Route:     "testing.Streaming",
//	}
type serviceData struct {
	Name      string
	Type      string
	ClientMod string
	ServerMod string
	Route     string
	Transport bool
	Methods   []*methodData
}

// methodData is the template view of one method.
//
//	{
//	  Name:       "get_server_streaming",
//	  RouteName:  "GetServerStreaming",
//	  SvcType:    "GetServerStreamingSvc",
//	  StreamType: "GetServerStreamingStream",
//	  Route:      "/testing.Streaming/GetServerStreaming",
//	  Request:    "super::testing::GetRequest",
//	  Response:   "super::testing::GetResponse",
//	  Codec:      "::tonic_codec_protobuf::ProtobufCodecV3",
//	}
type methodData struct {
	Name            string
	RouteName       string
	SvcType         string
	StreamType      string
	Route           string
	Request         string
	Response        string
	Codec           string
	ClientStreaming bool
	ServerStreaming bool
}

func newServiceData(svc Service, config Config) *serviceData {
	route := svc.Name()
	if pkg := svc.Package(); pkg != "" {
		route = pkg + "." + svc.Name()
	}
	snake := strcase.ToSnake(svc.Name())
	data := &serviceData{
		Name:      svc.Name(),
		Type:      strcase.ToCamel(svc.Name()),
		ClientMod: snake + "_client",
		ServerMod: snake + "_server",
		Route:     route,
		Transport: config.BuildTransport,
	}
	for _, m := range svc.Methods() {
		pascal := strcase.ToCamel(m.RouteName())
		data.Methods = append(data.Methods, &methodData{
			Name:            m.Name(),
			RouteName:       m.RouteName(),
			SvcType:         pascal + "Svc",
			StreamType:      pascal + "Stream",
			Route:           "/" + route + "/" + m.RouteName(),
			Request:         config.ProtoPath + m.RequestType(),
			Response:        config.ProtoPath + m.ResponseType(),
			Codec:           m.CodecPath(),
			ClientStreaming: m.ClientStreaming(),
			ServerStreaming: m.ServerStreaming(),
		})
	}
	return data
}
