package node

import "github.com/kestrelrobotics/rosnode/msg"

// ServiceServer is the other receiver arm: it decodes an inbound request,
// calls handler, and publishes the response on the id assigned to its
// response-side publisher, which differs from the request-side ID. It
// occupies one slot in each of the registry's two tables — one as the
// request-side receiver, one as the response-side publisher — since a
// service is symmetric in both directions.
type ServiceServer[Req, Resp msg.Msg] struct {
	topic      string
	reqType    string
	assignedID uint16
	reqBuf     Req
	handler    func(Req) Resp
	respPub    *Publisher[Resp]
}

// NewServiceServer constructs a ServiceServer for topic. reqBuf is reused
// across deliveries the same way Subscriber reuses its decode buffer.
func NewServiceServer[Req, Resp msg.Msg](topic string, reqBuf Req, respSample Resp, handler func(Req) Resp) *ServiceServer[Req, Resp] {
	return &ServiceServer[Req, Resp]{
		topic:   topic,
		reqType: reqBuf.TypeName(),
		reqBuf:  reqBuf,
		handler: handler,
		respPub: NewPublisher[Resp](topic, respSample),
	}
}

// ID reports the request-side id assigned at registration.
func (s *ServiceServer[Req, Resp]) ID() uint16 { return s.assignedID }

func (s *ServiceServer[Req, Resp]) topicName() string   { return s.topic }
func (s *ServiceServer[Req, Resp]) messageType() string { return s.reqType }
func (s *ServiceServer[Req, Resp]) setID(id uint16)     { s.assignedID = id }
func (s *ServiceServer[Req, Resp]) id() uint16          { return s.assignedID }

func (s *ServiceServer[Req, Resp]) deliver(payload []byte) {
	s.reqBuf.Deserialize(payload)
	resp := s.handler(s.reqBuf)
	s.respPub.Publish(resp)
}

// responsePublisher exposes the internal response-side publisher so
// Node.AdvertiseService can register it in the publisher table alongside
// the request-side receiver registration.
func (s *ServiceServer[Req, Resp]) responsePublisher() publisherRef {
	return s.respPub
}
