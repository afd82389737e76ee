// Package rosnode provides a façade over the node core: the framing,
// registry, dispatch, time-sync and parameter-fetch machinery live in
// package node; this package re-exports the pieces an application needs
// and wires in the right hal.SerialPort implementation for the current
// build target.
//
// The platform-specific constructor is split across build-tag files:
//   - constructors_host.go     (!tinygo && !baremetal, backed by hal/stubport)
//   - constructors_embedded.go (tinygo || baremetal, backed by hal/uartport)
package rosnode

import (
	"github.com/kestrelrobotics/rosnode/msg"
	"github.com/kestrelrobotics/rosnode/node"
)

// Re-export the non-generic types for a single import path. The generic
// endpoint types (Publisher, Subscriber, ServiceServer) are used via the
// constructor functions below, which already return the node package's
// types directly — Go's type system has no generic type alias in the
// language version this module targets, so there is nothing to gain by
// wrapping them again.
type (
	Node   = node.Node
	Config = node.Config
)

// Log levels, re-exported from msg for callers that only import this
// package.
const (
	LogDebug = msg.LogDebug
	LogInfo  = msg.LogInfo
	LogWarn  = msg.LogWarn
	LogError = msg.LogError
	LogFatal = msg.LogFatal
)

// NewPublisher constructs a Publisher for topic carrying messages of type T.
func NewPublisher[T msg.Msg](topic string, sample T) *node.Publisher[T] {
	return node.NewPublisher(topic, sample)
}

// NewSubscriber constructs a Subscriber for topic, invoking cb with each
// decoded message.
func NewSubscriber[T msg.Msg](topic string, decodeBuf T, cb func(T)) *node.Subscriber[T] {
	return node.NewSubscriber(topic, decodeBuf, cb)
}

// NewServiceServer constructs a ServiceServer for topic.
func NewServiceServer[Req, Resp msg.Msg](topic string, reqBuf Req, respSample Resp, handler func(Req) Resp) *node.ServiceServer[Req, Resp] {
	return node.NewServiceServer(topic, reqBuf, respSample, handler)
}
