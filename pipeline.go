package httpkit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// execState tracks where a request currently is in its lifecycle:
//
//	created → request phase → dispatched → response phase → completed
//
// with aborted reachable from the request phase (middleware failure,
// cancellation), the dispatch (transport failure), and the response phase.
type execState int

const (
	stateCreated execState = iota
	stateRequestPhase
	stateDispatched
	stateResponsePhase
	stateCompleted
	stateAborted
)

func (s execState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateRequestPhase:
		return "request_phase"
	case stateDispatched:
		return "dispatched"
	case stateResponsePhase:
		return "response_phase"
	case stateCompleted:
		return "completed"
	case stateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// pipeline owns the ordered middleware sequence and the execution contract
// around dispatch. It is assembled once during client construction and
// read-only afterwards, so concurrent requests share it without locking.
type pipeline struct {
	middlewares []Middleware
	log         zerolog.Logger
}

// execute runs one request through the full lifecycle. The response phase
// deliberately runs in the same registration order as the request phase, not
// reversed; the pipeline is a straight line, not an onion.
func (p *pipeline) execute(ctx context.Context, req *Request, transport Transport) (*Response, error) {
	state := stateCreated
	p.trace(req, state)

	state = stateRequestPhase
	p.trace(req, state)
	for _, mw := range p.middlewares {
		if err := ctx.Err(); err != nil {
			p.trace(req, stateAborted)
			return nil, err
		}
		if err := mw.ProcessRequest(ctx, req); err != nil {
			p.trace(req, stateAborted)
			return nil, &MiddlewareError{Name: mw.Name(), Err: err}
		}
	}

	state = stateDispatched
	p.trace(req, state)
	start := time.Now()
	resp, err := transport.Do(ctx, req)
	if err != nil {
		p.trace(req, stateAborted)
		return nil, classifyTransportError(err)
	}
	resp.Request = req
	resp.Duration = time.Since(start)

	state = stateResponsePhase
	p.trace(req, state)
	for _, mw := range p.middlewares {
		if err := ctx.Err(); err != nil {
			p.trace(req, stateAborted)
			return nil, err
		}
		if err := mw.ProcessResponse(ctx, resp); err != nil {
			// The caller never sees a partially-processed response.
			p.trace(req, stateAborted)
			return nil, &MiddlewareError{Name: mw.Name(), Err: err}
		}
	}

	state = stateCompleted
	p.trace(req, state)
	return resp, nil
}

func (p *pipeline) trace(req *Request, state execState) {
	p.log.Trace().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("state", state.String()).
		Send()
}
