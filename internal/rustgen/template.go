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
	"fmt"
	"text/template"
)

var _tmpl = template.Must(parseTemplates(clientTemplate, serverTemplate))

func parseTemplates(templates ...string) (*template.Template, error) {
	t := template.New("rustgen").Funcs(
		template.FuncMap{
			"grpcCall":       grpcCall,
			"serverService":  serverService,
			"clientParam":    clientParam,
			"clientResponse": clientResponse,
			"intoRequest":    intoRequest,
			"serverParam":    serverParam,
			"serverResponse": serverResponse,
		},
	)
	for _, tmpl := range templates {
		if _, err := t.Parse(tmpl); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// grpcCall returns the tonic call used for the method's streaming mode, on
// both the client (tonic::client::Grpc) and server (tonic::server::Grpc)
// sides. The two flags select among four shapes independently.
func grpcCall(m *methodData) string {
	switch {
	case m.ClientStreaming && m.ServerStreaming:
		return "streaming"
	case m.ClientStreaming:
		return "client_streaming"
	case m.ServerStreaming:
		return "server_streaming"
	default:
		return "unary"
	}
}

// serverService returns the tonic::server trait the per-method dispatch
// struct implements.
func serverService(m *methodData) string {
	switch {
	case m.ClientStreaming && m.ServerStreaming:
		return "StreamingService"
	case m.ClientStreaming:
		return "ClientStreamingService"
	case m.ServerStreaming:
		return "ServerStreamingService"
	default:
		return "UnaryService"
	}
}

// clientParam returns the argument type a generated client method accepts.
func clientParam(m *methodData) string {
	if m.ClientStreaming {
		return fmt.Sprintf("impl tonic::IntoStreamingRequest<Message = %s>", m.Request)
	}
	return fmt.Sprintf("impl tonic::IntoRequest<%s>", m.Request)
}

// clientResponse returns the type a generated client method resolves to
// inside tonic::Response.
func clientResponse(m *methodData) string {
	if m.ServerStreaming {
		return fmt.Sprintf("tonic::codec::Streaming<%s>", m.Response)
	}
	return m.Response
}

func intoRequest(m *methodData) string {
	if m.ClientStreaming {
		return "into_streaming_request()"
	}
	return "into_request()"
}

// serverParam returns the type a server method receives inside
// tonic::Request.
func serverParam(m *methodData) string {
	if m.ClientStreaming {
		return fmt.Sprintf("tonic::Streaming<%s>", m.Request)
	}
	return m.Request
}

// serverResponse returns the type a server method resolves to inside
// tonic::Response.
func serverResponse(m *methodData) string {
	if m.ServerStreaming {
		return "Self::" + m.StreamType
	}
	return m.Response
}

const clientTemplate = `{{define "client" -}}
/// Generated client implementations.
pub mod {{.ClientMod}} {
    #![allow(unused_variables, dead_code, missing_docs, clippy::let_unit_value)]
    use tonic::codegen::*;

    #[derive(Debug, Clone)]
    pub struct {{.Type}}Client<T> {
        inner: tonic::client::Grpc<T>,
    }
{{- if .Transport}}

    impl {{.Type}}Client<tonic::transport::Channel> {
        /// Attempt to create a new client by connecting to a given endpoint.
        pub async fn connect<D>(dst: D) -> Result<Self, tonic::transport::Error>
        where
            D: std::convert::TryInto<tonic::transport::Endpoint>,
            D::Error: Into<StdError>,
        {
            let conn = tonic::transport::Endpoint::new(dst)?.connect().await?;
            Ok(Self::new(conn))
        }
    }
{{- end}}

    impl<T> {{.Type}}Client<T>
    where
        T: tonic::client::GrpcService<tonic::body::BoxBody>,
        T::Error: Into<StdError>,
        T::ResponseBody: Body<Data = Bytes> + Send + 'static,
        <T::ResponseBody as Body>::Error: Into<StdError> + Send,
    {
        pub fn new(inner: T) -> Self {
            let inner = tonic::client::Grpc::new(inner);
            Self { inner }
        }
{{range .Methods}}
        pub async fn {{.Name}}(
            &mut self,
            request: {{clientParam .}},
        ) -> Result<tonic::Response<{{clientResponse .}}>, tonic::Status> {
            self.inner.ready().await.map_err(|e| {
                tonic::Status::new(
                    tonic::Code::Unknown,
                    format!("Service was not ready: {}", e.into()),
                )
            })?;
            let codec = {{.Codec}}::default();
            let path = http::uri::PathAndQuery::from_static("{{.Route}}");
            self.inner.{{grpcCall .}}(request.{{intoRequest .}}, path, codec).await
        }
{{end}}    }
}
{{end}}`

const serverTemplate = `{{define "server" -}}
/// Generated server implementations.
pub mod {{.ServerMod}} {
    #![allow(unused_variables, dead_code, missing_docs, clippy::let_unit_value)]
    use tonic::codegen::*;

    /// Generated trait containing gRPC methods that should be implemented for use with {{.Type}}Server.
    #[async_trait]
    pub trait {{.Type}}: Send + Sync + 'static {
{{- range .Methods}}
{{- if .ServerStreaming}}
        /// Server streaming response type for the {{.RouteName}} method.
        type {{.StreamType}}: Stream<Item = Result<{{.Response}}, tonic::Status>> + Send + 'static;
{{- end}}
        async fn {{.Name}}(
            &self,
            request: tonic::Request<{{serverParam .}}>,
        ) -> Result<tonic::Response<{{serverResponse .}}>, tonic::Status>;
{{- end}}
    }

    #[derive(Debug)]
    pub struct {{.Type}}Server<T: {{.Type}}> {
        inner: Arc<T>,
    }

    impl<T: {{.Type}}> {{.Type}}Server<T> {
        pub fn new(inner: T) -> Self {
            Self::from_arc(Arc::new(inner))
        }

        pub fn from_arc(inner: Arc<T>) -> Self {
            Self { inner }
        }
    }

    impl<T, B> tonic::codegen::Service<http::Request<B>> for {{.Type}}Server<T>
    where
        T: {{.Type}},
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
{{- range .Methods}}
                "{{.Route}}" => {
                    struct {{.SvcType}}<T: {{$.Type}}>(pub Arc<T>);
                    impl<T: {{$.Type}}> tonic::server::{{serverService .}}<{{.Request}}> for {{.SvcType}}<T> {
                        type Response = {{.Response}};
{{- if .ServerStreaming}}
                        type ResponseStream = T::{{.StreamType}};
                        type Future = BoxFuture<tonic::Response<Self::ResponseStream>, tonic::Status>;
{{- else}}
                        type Future = BoxFuture<tonic::Response<Self::Response>, tonic::Status>;
{{- end}}
                        fn call(&mut self, request: tonic::Request<{{serverParam .}}>) -> Self::Future {
                            let inner = self.0.clone();
                            let fut = async move { inner.{{.Name}}(request).await };
                            Box::pin(fut)
                        }
                    }
                    let inner = self.inner.clone();
                    let fut = async move {
                        let method = {{.SvcType}}(inner);
                        let codec = {{.Codec}}::default();
                        let mut grpc = tonic::server::Grpc::new(codec);
                        let res = grpc.{{grpcCall .}}(method, req).await;
                        Ok(res)
                    };
                    Box::pin(fut)
                }
{{- end}}
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

    impl<T: {{.Type}}> Clone for {{.Type}}Server<T> {
        fn clone(&self) -> Self {
            Self { inner: self.inner.clone() }
        }
    }

    impl<T: {{.Type}}> tonic::server::NamedService for {{.Type}}Server<T> {
        const NAME: &'static str = "{{.Route}}";
    }
}
{{end}}`
