package httpkit

import "context"

// GetJSON sends a GET request and decodes the response body into out.
// A non-2xx status fails with a [ResponseError] carrying the status code
// and the raw body; a body that does not decode fails with a
// [SerializationError]. A nil out skips decoding but keeps the status
// check.
func (c *Client) GetJSON(ctx context.Context, target string, out any, opts ...RequestOption) error {
	resp, err := c.Get(ctx, target, opts...)
	if err != nil {
		return err
	}
	return c.decodeResponse(resp, out)
}

// PostJSON encodes body with the client's codec, sends it as a POST
// request, and decodes the response into out with the same semantics as
// [Client.GetJSON]. A nil body sends no payload.
func (c *Client) PostJSON(ctx context.Context, target string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, "POST", target, body, out, opts...)
}

// PutJSON is [Client.PostJSON] with the PUT method.
func (c *Client) PutJSON(ctx context.Context, target string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, "PUT", target, body, out, opts...)
}

// PatchJSON is [Client.PostJSON] with the PATCH method.
func (c *Client) PatchJSON(ctx context.Context, target string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, "PATCH", target, body, out, opts...)
}

// DeleteJSON sends a DELETE request and decodes the response into out with
// the same semantics as [Client.GetJSON].
func (c *Client) DeleteJSON(ctx context.Context, target string, out any, opts ...RequestOption) error {
	resp, err := c.Delete(ctx, target, opts...)
	if err != nil {
		return err
	}
	return c.decodeResponse(resp, out)
}

func (c *Client) doJSON(ctx context.Context, method, target string, body, out any, opts ...RequestOption) error {
	if body != nil {
		encoded, contentType, err := c.codec.Encode(body)
		if err != nil {
			return &SerializationError{Err: err}
		}
		opts = append(opts, WithBody(encoded, contentType))
	}

	resp, err := c.Do(ctx, method, target, opts...)
	if err != nil {
		return err
	}
	return c.decodeResponse(resp, out)
}

func (c *Client) decodeResponse(resp *Response, out any) error {
	if !resp.IsSuccess() {
		return &ResponseError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := c.codec.Decode(resp.Body, out); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}
