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

package codec

import (
	"github.com/gogo/protobuf/proto"
	"github.com/gogo/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
)

// Name is the payload format the codec registers as. It matches the gRPC
// default so that processes using this package interoperate with stock
// protobuf peers, including the generated Rust services.
const Name = "proto"

// grpcCodec adapts the pooled protobuf marshaling to grpc-go's encoding
// registry.
type grpcCodec struct{}

var _ encoding.Codec = grpcCodec{}

// Register installs the codec in grpc-go's global encoding registry,
// replacing the stock protobuf codec for every client and server in the
// process. The registry is not synchronized; call Register before serving,
// typically from an init function.
func Register() {
	encoding.RegisterCodec(grpcCodec{})
}

func (grpcCodec) Marshal(v interface{}) ([]byte, error) {
	message, ok := v.(proto.Message)
	if !ok {
		return nil, status.Errorf(codes.Internal, "expected proto.Message, got %T", v)
	}
	protoBuffer := getBuffer()
	defer putBuffer(protoBuffer)
	if err := protoBuffer.Marshal(message); err != nil {
		return nil, err
	}
	// The pooled buffer is reused after return; hand back a copy.
	data := protoBuffer.Bytes()
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (grpcCodec) Unmarshal(data []byte, v interface{}) error {
	message, ok := v.(proto.Message)
	if !ok {
		return status.Errorf(codes.Internal, "expected proto.Message, got %T", v)
	}
	if err := proto.Unmarshal(data, message); err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	return nil
}

func (grpcCodec) Name() string {
	return Name
}
