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

package tonicgen

import (
	"fmt"

	"github.com/gogo/protobuf/protoc-gen-gogo/descriptor"
	"go.uber.org/tonicgen/internal/rustgen"
)

// service adapts one protobuf service descriptor to the shape the Rust
// generator consumes.
type service struct {
	name    string
	pkg     string
	methods []*method
}

var _ rustgen.Service = (*service)(nil)

func (s *service) Name() string    { return s.name }
func (s *service) Package() string { return s.pkg }

func (s *service) Methods() []rustgen.Method {
	methods := make([]rustgen.Method, len(s.methods))
	for i, m := range s.methods {
		methods[i] = m
	}
	return methods
}

type method struct {
	name            string
	routeName       string
	requestType     string
	responseType    string
	codecPath       string
	clientStreaming bool
	serverStreaming bool
}

var _ rustgen.Method = (*method)(nil)

func (m *method) Name() string          { return m.name }
func (m *method) RouteName() string     { return m.routeName }
func (m *method) RequestType() string   { return m.requestType }
func (m *method) ResponseType() string  { return m.responseType }
func (m *method) CodecPath() string     { return m.codecPath }
func (m *method) ClientStreaming() bool { return m.clientStreaming }
func (m *method) ServerStreaming() bool { return m.serverStreaming }

// buildServices extracts every service in fds, in declaration order, into
// generator models.
//
// Route names keep the descriptor spelling. Rust method names are the
// snake_case form of the descriptor name, escaped if the result collides
// with a Rust keyword. The streaming flags are read independently so that
// bidirectional methods set both.
func buildServices(fds *descriptor.FileDescriptorSet, codecPath string) ([]*service, error) {
	var services []*service
	for _, fd := range fds.GetFile() {
		pkg := moduleOf(fd.GetPackage())
		for _, sd := range fd.GetService() {
			svc := &service{
				name: sd.GetName(),
				pkg:  pkg,
			}
			for _, md := range sd.GetMethod() {
				requestType, err := rustTypePath(md.GetInputType())
				if err != nil {
					return nil, fmt.Errorf("service %s: method %s: %v", sd.GetName(), md.GetName(), err)
				}
				responseType, err := rustTypePath(md.GetOutputType())
				if err != nil {
					return nil, fmt.Errorf("service %s: method %s: %v", sd.GetName(), md.GetName(), err)
				}
				svc.methods = append(svc.methods, &method{
					name:            sanitizeIdent(identifierName(md.GetName())),
					routeName:       md.GetName(),
					requestType:     requestType,
					responseType:    responseType,
					codecPath:       codecPath,
					clientStreaming: md.GetClientStreaming(),
					serverStreaming: md.GetServerStreaming(),
				})
			}
			services = append(services, svc)
		}
	}
	return services, nil
}
