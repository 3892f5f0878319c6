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
	"github.com/gogo/googleapis/google/rpc"
	"github.com/gogo/protobuf/proto"
	"github.com/gogo/status"
	"go.uber.org/multierr"
	"google.golang.org/grpc/codes"
)

// NewError returns an error carrying a gRPC status code, a message, and any
// number of protobuf detail messages, matching what a tonic server encodes
// into grpc-status-details-bin.
//
// If code is codes.OK, NewError returns nil.
func NewError(code codes.Code, message string, details ...proto.Message) error {
	if code == codes.OK {
		return nil
	}
	st, err := status.New(code, message).WithDetails(details...)
	if err != nil {
		return err
	}
	return st.Err()
}

// ErrorCode returns the status code carried by err. Errors without a
// status map to codes.Unknown; nil maps to codes.OK.
func ErrorCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	st, _ := status.FromError(err)
	return st.Code()
}

// ToStatusProto converts err to the wire form of its status.
func ToStatusProto(err error) *rpc.Status {
	if err == nil {
		return &rpc.Status{Code: int32(codes.OK)}
	}
	st, _ := status.FromError(err)
	return st.Proto()
}

// FromStatusProto converts a wire status back into an error. A status with
// code OK yields nil.
func FromStatusProto(st *rpc.Status) error {
	return status.ErrorProto(st)
}

// ErrorDetails returns the protobuf detail messages attached to err.
// Details whose type is not linked into the binary cannot be decoded; their
// failures are combined into the returned error while the decodable
// details are still returned.
func ErrorDetails(err error) ([]proto.Message, error) {
	if err == nil {
		return nil, nil
	}
	st, _ := status.FromError(err)

	var (
		messages  []proto.Message
		decodeErr error
	)
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case proto.Message:
			messages = append(messages, d)
		case error:
			decodeErr = multierr.Append(decodeErr, d)
		}
	}
	return messages, decodeErr
}
