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
	"fmt"
)

// ServiceGenerator renders tonic-flavored Rust source for service models.
//
// Rendered client and server fragments accumulate in separate buffers across
// Generate calls so that a batch of services flushes as one block of client
// modules followed by one block of server modules. Finalize drains both
// buffers, after which the generator is ready for the next batch.
//
// A ServiceGenerator is not safe for concurrent use.
type ServiceGenerator struct {
	config  Config
	clients bytes.Buffer
	servers bytes.Buffer
}

// NewServiceGenerator returns a ServiceGenerator that renders services
// according to config.
func NewServiceGenerator(config Config) *ServiceGenerator {
	return &ServiceGenerator{config: config}
}

// Generate renders svc and appends the fragments to the pending output.
//
// The client module is skipped for services with no methods: a client
// without callable methods has no use. The server module is always rendered
// when servers are enabled; its dispatch falls through to the unimplemented
// arm for every route.
func (g *ServiceGenerator) Generate(svc Service) error {
	data := newServiceData(svc, g.config)
	if g.config.BuildClient && len(data.Methods) > 0 {
		if err := _tmpl.ExecuteTemplate(&g.clients, "client", data); err != nil {
			return fmt.Errorf("generate %s client: %v", svc.Name(), err)
		}
	}
	if g.config.BuildServer {
		if err := _tmpl.ExecuteTemplate(&g.servers, "server", data); err != nil {
			return fmt.Errorf("generate %s server: %v", svc.Name(), err)
		}
	}
	return nil
}

// Finalize writes every pending fragment to buf, clients before servers,
// and resets the generator. Fragments are written exactly once: a second
// Finalize with no intervening Generate writes nothing.
func (g *ServiceGenerator) Finalize(buf *bytes.Buffer) {
	buf.Write(g.clients.Bytes())
	buf.Write(g.servers.Bytes())
	g.clients.Reset()
	g.servers.Reset()
}
