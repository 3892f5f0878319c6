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

// Package codec implements the message encoding the generated services
// speak on the wire: plain protobuf frame bodies, with a JSON variant for
// services that favor debuggability over size.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/gogo/protobuf/jsonpb"
	"github.com/gogo/protobuf/proto"
	"github.com/gogo/status"
	"google.golang.org/grpc/codes"
)

var (
	_jsonMarshaler   = &jsonpb.Marshaler{}
	_jsonUnmarshaler = &jsonpb.Unmarshaler{AllowUnknownFields: true}
	_bufferPool      = sync.Pool{
		New: func() interface{} {
			return proto.NewBuffer(make([]byte, 1024))
		},
	}
)

// Codec translates one message type between its in-memory and wire forms.
//
// Construct with New or NewJSON; the zero value is not usable.
type Codec struct {
	newMessage func() proto.Message
	json       bool
}

// New returns a Codec for the message type produced by newMessage.
func New(newMessage func() proto.Message) *Codec {
	return &Codec{newMessage: newMessage}
}

// NewJSON returns a Codec speaking the JSON mapping of the message type
// produced by newMessage. Unknown fields are tolerated on decode, so peers
// built against newer schemas stay readable.
func NewJSON(newMessage func() proto.Message) *Codec {
	return &Codec{newMessage: newMessage, json: true}
}

// Encode appends the wire form of message to buf.
//
// Marshaling a well-formed message fails only when the process is out of
// memory; a failure panics.
func (c *Codec) Encode(message proto.Message, buf *bytes.Buffer) {
	if c.json {
		if err := _jsonMarshaler.Marshal(buf, message); err != nil {
			panic(fmt.Sprintf("failed to encode json message: %v", err))
		}
		return
	}
	protoBuffer := getBuffer()
	defer putBuffer(protoBuffer)
	if err := protoBuffer.Marshal(message); err != nil {
		panic(fmt.Sprintf("failed to encode protobuf message: %v", err))
	}
	buf.Write(protoBuffer.Bytes())
}

// Decode converts one frame's bytes back into a message. Every frame
// decodes into a fresh message, so streamed frames never alias.
//
// A nil slice means the transport produced no frame and maps to io.EOF. An
// empty non-nil slice is the valid wire form of the empty message.
// Malformed bytes surface as a gRPC Internal status.
func (c *Codec) Decode(data []byte) (proto.Message, error) {
	if data == nil {
		return nil, io.EOF
	}
	message := c.newMessage()
	if len(data) == 0 {
		return message, nil
	}
	if c.json {
		if err := _jsonUnmarshaler.Unmarshal(bytes.NewReader(data), message); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return message, nil
	}
	if err := proto.Unmarshal(data, message); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return message, nil
}

func getBuffer() *proto.Buffer {
	buf := _bufferPool.Get().(*proto.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *proto.Buffer) {
	_bufferPool.Put(buf)
}
