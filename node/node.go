// Package node implements the node core: the frame parser, endpoint
// registry, output encoder, dispatcher, time sync, and parameter fetch,
// orchestrated by Node behind a single-threaded, non-blocking poll loop.
package node

import (
	"github.com/Masterminds/semver"
	"github.com/golang/glog"

	"github.com/kestrelrobotics/rosnode/hal"
	"github.com/kestrelrobotics/rosnode/msg"
)

// ProtocolVersion is the semver string this build of the node core
// advertises during negotiation.
const ProtocolVersion = "1.0.0"

// Config sizes the node's fixed-capacity buffers and tables. All fields
// have the defaults an embedded rosserial-compatible node has shipped
// with; zero-value fields are replaced by those defaults in New.
type Config struct {
	MaxPublishers  int
	MaxSubscribers int
	InputSize      int
	OutputSize     int

	// BridgeVersionConstraint, if non-nil, is checked against the
	// bridge-reported version during negotiation. A mismatch does not
	// fail the link; it is logged and surfaced through
	// Node.VersionMismatch.
	BridgeVersionConstraint *semver.Constraints
}

func (c Config) withDefaults() Config {
	if c.MaxPublishers == 0 {
		c.MaxPublishers = 25
	}
	if c.MaxSubscribers == 0 {
		c.MaxSubscribers = 25
	}
	if c.InputSize == 0 {
		c.InputSize = 512
	}
	if c.OutputSize == 0 {
		c.OutputSize = 512
	}
	return c
}

// Node is component I: it owns the hardware port, the parser, the
// encoder, and the registry, and exposes the small set of operations an
// application's main loop drives.
type Node struct {
	port hal.SerialPort
	cfg  Config

	parser   *Parser
	enc      *encoder
	registry *registry

	configured bool

	secOffset, nsecOffset int64
	remoteTimeAtRequest   uint32
	lastSyncTime          uint32
	lastSyncReceiveTime   uint32

	paramReceived        bool
	pendingParamResponse msg.RequestParamResponse
	inCallback           bool

	protocolVersion string
	versionMismatch bool
}

// New constructs a Node over port with the given configuration. It does
// not touch the hardware; call Init before the first SpinOnce.
func New(port hal.SerialPort, cfg Config) *Node {
	cfg = cfg.withDefaults()
	return &Node{
		port:            port,
		cfg:             cfg,
		parser:          NewParser(cfg.InputSize),
		enc:             newEncoder(port, cfg.OutputSize),
		registry:        newRegistry(cfg.MaxPublishers, cfg.MaxSubscribers),
		protocolVersion: ProtocolVersion,
	}
}

// Init initializes the hardware port and resets the parser. It must be
// called exactly once before SpinOnce.
func (n *Node) Init() error {
	if err := n.port.Init(); err != nil {
		return err
	}
	n.parser.reset()
	return nil
}

// Advertise registers a publisher, assigning it a stable id. It returns
// false once the publisher table is full.
func (n *Node) Advertise(p publisherRef) bool {
	return n.registry.advertise(p, n.enc)
}

// Subscribe registers a receiver (a Subscriber or a ServiceServer's
// request side), assigning it a stable id. It returns false once the
// receiver table is full.
func (n *Node) Subscribe(r receiver) bool {
	return n.registry.subscribe(r)
}

// serviceServer is satisfied by ServiceServer[Req, Resp] for any Req, Resp,
// letting AdvertiseService register both of its sides without a type
// parameter on Node itself.
type serviceServer interface {
	receiver
	responsePublisher() publisherRef
}

// AdvertiseService registers both sides of a service: the request as a
// receiver, the response as a publisher. It returns false if either table
// is full; on partial failure, whatever succeeded stays registered, since
// slots are never reclaimed.
func (n *Node) AdvertiseService(s serviceServer) bool {
	okReq := n.registry.subscribe(s)
	okResp := n.registry.advertise(s.responsePublisher(), n.enc)
	return okReq && okResp
}

// SpinOnce performs one bounded unit of work: it resets a stalled
// in-progress frame, drains every byte currently available from the
// hardware port through the parser and dispatcher, then runs the
// liveness/resync schedule. It returns once the port has no more bytes
// ready.
func (n *Node) SpinOnce() {
	now := n.port.Millis()
	n.parser.CheckTimeout(now)

	for {
		b := n.port.Read()
		if b < 0 {
			break
		}
		result := n.parser.Feed(byte(b), n.port.Millis())
		if result.Delivered {
			n.dispatch(result.TopicID, result.Payload)
		}
	}

	n.runLivenessSchedule(n.port.Millis())
}

// Connected reports whether the node has had bidirectional contact with
// the host recently enough to still be considered configured.
func (n *Node) Connected() bool { return n.configured }

// VersionMismatch reports whether the last negotiation observed a
// bridge-reported version outside BridgeVersionConstraint. It never fails
// the link by itself.
func (n *Node) VersionMismatch() bool { return n.versionMismatch }

func (n *Node) handleVersionAck(payload []byte) {
	if n.cfg.BridgeVersionConstraint == nil {
		return
	}
	var v msg.Version
	v.Deserialize(payload)
	sv, err := semver.NewVersion(v.Semver)
	if err != nil {
		glog.Warningf("node: bridge reported unparseable version %q: %v", v.Semver, err)
		n.versionMismatch = true
		return
	}
	n.versionMismatch = !n.cfg.BridgeVersionConstraint.Check(sv)
	if n.versionMismatch {
		glog.Warningf("node: bridge version %s does not satisfy %v", v.Semver, n.cfg.BridgeVersionConstraint)
	}
}
