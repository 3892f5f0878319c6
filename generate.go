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
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/protoc-gen-gogo/descriptor"
	"go.uber.org/tonicgen/internal/rustgen"
	"go.uber.org/zap"
)

// Generator compiles protobuf service descriptors into tonic-style Rust
// sources, one file per service.
type Generator struct {
	options *options
}

// New builds a Generator.
func New(opts ...Option) *Generator {
	return &Generator{options: newOptions(opts)}
}

// Compile generates Rust sources for every service in fds and writes them
// under the configured output directory. Services compile in declaration
// order, each to its own file; a module index covering all of them is
// written afterwards if configured.
func (g *Generator) Compile(fds *descriptor.FileDescriptorSet) error {
	outDir := g.options.outDir
	if outDir == "" {
		outDir = os.Getenv("OUT_DIR")
	}
	if outDir == "" {
		return errors.New("no output directory: set OutDir or the OUT_DIR environment variable")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	services, err := buildServices(fds, g.options.codecPath)
	if err != nil {
		return err
	}

	logger := g.options.logger
	writer := newOutputWriter(outDir, logger)
	generator := rustgen.NewServiceGenerator(rustgen.Config{
		ProtoPath:      g.options.protoPath,
		BuildClient:    g.options.buildClient,
		BuildServer:    g.options.buildServer,
		BuildTransport: g.options.buildTransport,
	})

	var (
		buf     bytes.Buffer
		modules []string
	)
	for _, svc := range services {
		if err := generator.Generate(svc); err != nil {
			return err
		}
		buf.Reset()
		generator.Finalize(&buf)

		module, err := writer.writeService(g.options.fileName(svc.Package(), svc.Name()), buf.Bytes())
		if err != nil {
			return err
		}
		modules = append(modules, module)
		logger.Debug("compiled service",
			zap.String("service", svc.Name()),
			zap.String("package", svc.Package()),
			zap.Int("methods", len(svc.methods)),
		)
	}

	if g.options.moduleIndex {
		if _, err := writer.writeModuleIndex(modules); err != nil {
			return err
		}
	}

	logger.Info("compiled services",
		zap.Int("services", len(services)),
		zap.String("outDir", outDir),
	)
	return nil
}

// CompileFile reads a serialized FileDescriptorSet from path, typically
// produced by protoc --descriptor_set_out, and compiles it.
func (g *Generator) CompileFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	fds := &descriptor.FileDescriptorSet{}
	if err := proto.Unmarshal(data, fds); err != nil {
		return fmt.Errorf("parse descriptor set %s: %v", path, err)
	}
	return g.Compile(fds)
}
