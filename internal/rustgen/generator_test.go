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

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMethod struct {
	name            string
	routeName       string
	request         string
	response        string
	codec           string
	clientStreaming bool
	serverStreaming bool
}

func (m *fakeMethod) Name() string          { return m.name }
func (m *fakeMethod) RouteName() string     { return m.routeName }
func (m *fakeMethod) RequestType() string   { return m.request }
func (m *fakeMethod) ResponseType() string  { return m.response }
func (m *fakeMethod) CodecPath() string     { return m.codec }
func (m *fakeMethod) ClientStreaming() bool { return m.clientStreaming }
func (m *fakeMethod) ServerStreaming() bool { return m.serverStreaming }

type fakeService struct {
	name    string
	pkg     string
	methods []Method
}

func (s *fakeService) Name() string      { return s.name }
func (s *fakeService) Package() string   { return s.pkg }
func (s *fakeService) Methods() []Method { return s.methods }

func defaultConfig() Config {
	return Config{
		ProtoPath:      "super",
		BuildClient:    true,
		BuildServer:    true,
		BuildTransport: true,
	}
}

// newStreamingService covers the four streaming shapes a method can take.
func newStreamingService() *fakeService {
	method := func(name, route string, clientStreaming, serverStreaming bool) *fakeMethod {
		return &fakeMethod{
			name:            name,
			routeName:       route,
			request:         "::testing::GetRequest",
			response:        "::testing::GetResponse",
			codec:           "::tonic_codec_protobuf::ProtobufCodecV3",
			clientStreaming: clientStreaming,
			serverStreaming: serverStreaming,
		}
	}
	return &fakeService{
		name: "Streaming",
		pkg:  "testing",
		methods: []Method{
			method("get_unary", "GetUnary", false, false),
			method("get_client_streaming", "GetClientStreaming", true, false),
			method("get_server_streaming", "GetServerStreaming", false, true),
			method("get_bidirectional_streaming", "GetBidirectionalStreaming", true, true),
		},
	}
}

func generate(t *testing.T, config Config, services ...Service) string {
	g := NewServiceGenerator(config)
	for _, svc := range services {
		require.NoError(t, g.Generate(svc))
	}
	var buf bytes.Buffer
	g.Finalize(&buf)
	return buf.String()
}

func TestGenerateCallShapes(t *testing.T) {
	out := generate(t, defaultConfig(), newStreamingService())

	t.Run("client calls", func(t *testing.T) {
		assert.Contains(t, out, "self.inner.unary(request.into_request(), path, codec).await")
		assert.Contains(t, out, "self.inner.client_streaming(request.into_streaming_request(), path, codec).await")
		assert.Contains(t, out, "self.inner.server_streaming(request.into_request(), path, codec).await")
		assert.Contains(t, out, "self.inner.streaming(request.into_streaming_request(), path, codec).await")
	})

	t.Run("client signatures", func(t *testing.T) {
		assert.Contains(t, out, "request: impl tonic::IntoRequest<super::testing::GetRequest>,")
		assert.Contains(t, out, "request: impl tonic::IntoStreamingRequest<Message = super::testing::GetRequest>,")
		assert.Contains(t, out, ") -> Result<tonic::Response<super::testing::GetResponse>, tonic::Status> {")
		assert.Contains(t, out, ") -> Result<tonic::Response<tonic::codec::Streaming<super::testing::GetResponse>>, tonic::Status> {")
	})

	t.Run("server dispatch", func(t *testing.T) {
		assert.Contains(t, out, "tonic::server::UnaryService<super::testing::GetRequest> for GetUnarySvc<T>")
		assert.Contains(t, out, "tonic::server::ClientStreamingService<super::testing::GetRequest> for GetClientStreamingSvc<T>")
		assert.Contains(t, out, "tonic::server::ServerStreamingService<super::testing::GetRequest> for GetServerStreamingSvc<T>")
		assert.Contains(t, out, "tonic::server::StreamingService<super::testing::GetRequest> for GetBidirectionalStreamingSvc<T>")
		assert.Contains(t, out, "let res = grpc.unary(method, req).await;")
		assert.Contains(t, out, "let res = grpc.client_streaming(method, req).await;")
		assert.Contains(t, out, "let res = grpc.server_streaming(method, req).await;")
		assert.Contains(t, out, "let res = grpc.streaming(method, req).await;")
	})

	t.Run("server trait", func(t *testing.T) {
		assert.Contains(t, out, "pub trait Streaming: Send + Sync + 'static {")
		assert.Contains(t, out, "request: tonic::Request<tonic::Streaming<super::testing::GetRequest>>,")
		assert.Contains(t, out, "type GetServerStreamingStream: Stream<Item = Result<super::testing::GetResponse, tonic::Status>> + Send + 'static;")
		assert.Contains(t, out, "type GetBidirectionalStreamingStream: Stream<Item = Result<super::testing::GetResponse, tonic::Status>> + Send + 'static;")
		assert.Contains(t, out, ") -> Result<tonic::Response<Self::GetServerStreamingStream>, tonic::Status>;")
		assert.Contains(t, out, "type ResponseStream = T::GetBidirectionalStreamingStream;")
	})

	t.Run("routes verbatim", func(t *testing.T) {
		assert.Contains(t, out, `http::uri::PathAndQuery::from_static("/testing.Streaming/GetUnary");`)
		assert.Contains(t, out, `http::uri::PathAndQuery::from_static("/testing.Streaming/GetBidirectionalStreaming");`)
		assert.Contains(t, out, `"/testing.Streaming/GetServerStreaming" => {`)
		assert.Contains(t, out, `const NAME: &'static str = "testing.Streaming";`)
	})

	t.Run("codec verbatim", func(t *testing.T) {
		assert.Contains(t, out, "let codec = ::tonic_codec_protobuf::ProtobufCodecV3::default();")
	})
}

func TestGenerateModuleLayout(t *testing.T) {
	out := generate(t, defaultConfig(), newStreamingService())

	clientIdx := strings.Index(out, "pub mod streaming_client {")
	serverIdx := strings.Index(out, "pub mod streaming_server {")
	require.True(t, clientIdx >= 0, "missing client module")
	require.True(t, serverIdx >= 0, "missing server module")
	assert.True(t, clientIdx < serverIdx, "client module must precede server module")
}

func TestGenerateBatchGroupsClientsBeforeServers(t *testing.T) {
	method := &fakeMethod{
		name:      "send",
		routeName: "Send",
		request:   "::pkg::Req",
		response:  "::pkg::Res",
		codec:     "::tonic_codec_protobuf::ProtobufCodecV3",
	}
	alpha := &fakeService{name: "Alpha", pkg: "pkg", methods: []Method{method}}
	beta := &fakeService{name: "Beta", pkg: "pkg", methods: []Method{method}}

	out := generate(t, defaultConfig(), alpha, beta)

	idx := func(s string) int { return strings.Index(out, s) }
	alphaClient := idx("pub mod alpha_client {")
	betaClient := idx("pub mod beta_client {")
	alphaServer := idx("pub mod alpha_server {")
	betaServer := idx("pub mod beta_server {")
	require.True(t, alphaClient >= 0 && betaClient >= 0 && alphaServer >= 0 && betaServer >= 0)
	assert.True(t, alphaClient < betaClient)
	assert.True(t, betaClient < alphaServer)
	assert.True(t, alphaServer < betaServer)
}

func TestFinalizeResets(t *testing.T) {
	g := NewServiceGenerator(defaultConfig())
	require.NoError(t, g.Generate(newStreamingService()))

	var first bytes.Buffer
	g.Finalize(&first)
	require.NotEmpty(t, first.String())

	var second bytes.Buffer
	g.Finalize(&second)
	assert.Empty(t, second.String(), "fragments must flush exactly once")

	// The generator is reusable after a flush.
	require.NoError(t, g.Generate(newStreamingService()))
	var third bytes.Buffer
	g.Finalize(&third)
	assert.Equal(t, first.String(), third.String())
}

func TestGenerateBuildFlags(t *testing.T) {
	tests := []struct {
		desc       string
		config     Config
		wantClient bool
		wantServer bool
	}{
		{
			desc:       "clients only",
			config:     Config{ProtoPath: "super", BuildClient: true},
			wantClient: true,
		},
		{
			desc:       "servers only",
			config:     Config{ProtoPath: "super", BuildServer: true},
			wantServer: true,
		},
		{
			desc:   "neither",
			config: Config{ProtoPath: "super"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			out := generate(t, tt.config, newStreamingService())
			assert.Equal(t, tt.wantClient, strings.Contains(out, "pub mod streaming_client {"))
			assert.Equal(t, tt.wantServer, strings.Contains(out, "pub mod streaming_server {"))
		})
	}
}

func TestGenerateTransportGatesConnect(t *testing.T) {
	withTransport := generate(t, defaultConfig(), newStreamingService())
	assert.Contains(t, withTransport, "pub async fn connect<D>(dst: D) -> Result<Self, tonic::transport::Error>")

	config := defaultConfig()
	config.BuildTransport = false
	withoutTransport := generate(t, config, newStreamingService())
	assert.NotContains(t, withoutTransport, "pub async fn connect")
	assert.NotContains(t, withoutTransport, "tonic::transport::Channel")
}

func TestGenerateZeroMethodService(t *testing.T) {
	svc := &fakeService{name: "Empty", pkg: "testing"}
	out := generate(t, defaultConfig(), svc)

	// No client: there is nothing to call. The server module still renders
	// so that the type can be registered; every route falls through to the
	// unimplemented arm.
	assert.NotContains(t, out, "pub mod empty_client")
	assert.Contains(t, out, "pub mod empty_server {")
	assert.Contains(t, out, "pub trait Empty: Send + Sync + 'static {")
	assert.Contains(t, out, `.header("grpc-status", "12")`)
	assert.NotContains(t, out, "Svc<T: Empty>")
}

func TestGenerateEmptyPackageRoutes(t *testing.T) {
	svc := &fakeService{
		name: "Ping",
		pkg:  "",
		methods: []Method{
			&fakeMethod{
				name:      "send",
				routeName: "Send",
				request:   "::SendRequest",
				response:  "::SendResponse",
				codec:     "::tonic_codec_protobuf::ProtobufCodecV3",
			},
		},
	}
	out := generate(t, defaultConfig(), svc)

	assert.Contains(t, out, `http::uri::PathAndQuery::from_static("/Ping/Send");`)
	assert.Contains(t, out, `"/Ping/Send" => {`)
	assert.Contains(t, out, `const NAME: &'static str = "Ping";`)
}

func TestGenerateServerGolden(t *testing.T) {
	svc := &fakeService{
		name: "Ping",
		pkg:  "foo",
		methods: []Method{
			&fakeMethod{
				name:      "send",
				routeName: "Send",
				request:   "::foo::SendRequest",
				response:  "::foo::SendResponse",
				codec:     "::tonic_codec_protobuf::ProtobufCodecV3",
			},
		},
	}
	out := generate(t, Config{ProtoPath: "super", BuildServer: true}, svc)
	assert.Equal(t, _pingServer, out)
}

const _pingServer = `/// Generated server implementations.
pub mod ping_server {
    #![allow(unused_variables, dead_code, missing_docs, clippy::let_unit_value)]
    use tonic::codegen::*;

    /// Generated trait containing gRPC methods that should be implemented for use with PingServer.
    #[async_trait]
    pub trait Ping: Send + Sync + 'static {
        async fn send(
            &self,
            request: tonic::Request<super::foo::SendRequest>,
        ) -> Result<tonic::Response<super::foo::SendResponse>, tonic::Status>;
    }

    #[derive(Debug)]
    pub struct PingServer<T: Ping> {
        inner: Arc<T>,
    }

    impl<T: Ping> PingServer<T> {
        pub fn new(inner: T) -> Self {
            Self::from_arc(Arc::new(inner))
        }

        pub fn from_arc(inner: Arc<T>) -> Self {
            Self { inner }
        }
    }

    impl<T, B> tonic::codegen::Service<http::Request<B>> for PingServer<T>
    where
        T: Ping,
        B: Body + Send + 'static,
        B::Error: Into<StdError> + Send + 'static,
    {
        type Response = http::Response<tonic::body::BoxBody>;
        type Error = std::convert::Infallible;
        type Future = BoxFuture<Self::Response, Self::Error>;

        fn poll_ready(&mut self, _cx: &mut Context<'_>) -> Poll<Result<(), Self::Error>> {
            Poll::Ready(Ok(()))
        }

        fn call(&mut self, req: http::Request<B>) -> Self::Future {
            match req.uri().path() {
                "/foo.Ping/Send" => {
                    struct SendSvc<T: Ping>(pub Arc<T>);
                    impl<T: Ping> tonic::server::UnaryService<super::foo::SendRequest> for SendSvc<T> {
                        type Response = super::foo::SendResponse;
                        type Future = BoxFuture<tonic::Response<Self::Response>, tonic::Status>;
                        fn call(&mut self, request: tonic::Request<super::foo::SendRequest>) -> Self::Future {
                            let inner = self.0.clone();
                            let fut = async move { inner.send(request).await };
                            Box::pin(fut)
                        }
                    }
                    let inner = self.inner.clone();
                    let fut = async move {
                        let method = SendSvc(inner);
                        let codec = ::tonic_codec_protobuf::ProtobufCodecV3::default();
                        let mut grpc = tonic::server::Grpc::new(codec);
                        let res = grpc.unary(method, req).await;
                        Ok(res)
                    };
                    Box::pin(fut)
                }
                _ => Box::pin(async move {
                    Ok(http::Response::builder()
                        .status(200)
                        .header("grpc-status", "12")
                        .header("content-type", "application/grpc")
                        .body(empty_body())
                        .unwrap())
                }),
            }
        }
    }

    impl<T: Ping> Clone for PingServer<T> {
        fn clone(&self) -> Self {
            Self { inner: self.inner.clone() }
        }
    }

    impl<T: Ping> tonic::server::NamedService for PingServer<T> {
        const NAME: &'static str = "foo.Ping";
    }
}
`
